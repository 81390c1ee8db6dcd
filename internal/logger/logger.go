package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger with additional functionality
type Logger struct {
	logger zerolog.Logger
	sink   io.Closer
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	File       string // log file path
	Console    bool   // enable console output
	Pretty     bool   // pretty format for console
	MaxSizeMB  int    // rotate the log file past this size; 0 disables rotation
	MaxAgeDays int    // prune rotated files older than this; 0 keeps them
	Compress   bool   // gzip rotated files
}

// New creates a new logger. Console output goes to stderr: stdout carries the
// MCP stdio protocol and must stay clean. All output passes through the
// credential redactor.
func New(cfg Config) (*Logger, error) {
	// Parse log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	redactor := NewRedactor()

	// Create writers
	var writers []io.Writer

	// Console writer
	if cfg.Console {
		var consoleWriter io.Writer = os.Stderr
		if cfg.Pretty {
			consoleWriter = zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			}
		}
		writers = append(writers, redactor.Wrap(consoleWriter))
	}

	// File writer
	var sink io.Closer
	if cfg.File != "" {
		var fileWriter io.Writer
		if cfg.MaxSizeMB > 0 {
			rw, err := NewRotatingWriter(cfg.File, cfg.MaxSizeMB, cfg.MaxAgeDays, cfg.Compress)
			if err != nil {
				return nil, err
			}
			fileWriter, sink = rw, rw
		} else {
			// Ensure directory exists
			dir := filepath.Dir(cfg.File)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}

			file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			fileWriter, sink = file, file
		}

		writers = append(writers, redactor.Wrap(fileWriter))
	}

	// Create multi-writer
	var writer io.Writer
	if len(writers) == 0 {
		writer = redactor.Wrap(os.Stderr)
	} else if len(writers) == 1 {
		writer = writers[0]
	} else {
		writer = io.MultiWriter(writers...)
	}

	// Create logger
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Set global logger
	log.Logger = logger

	return &Logger{
		logger: logger,
		sink:   sink,
	}, nil
}

// Close closes the logger and any open files
func (l *Logger) Close() error {
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}

// Debug logs a debug message
func (l *Logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

// Info logs an info message
func (l *Logger) Info() *zerolog.Event {
	return l.logger.Info()
}

// Warn logs a warning message
func (l *Logger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

// Error logs an error message
func (l *Logger) Error() *zerolog.Event {
	return l.logger.Error()
}

// With creates a child logger with additional context
func (l *Logger) With() zerolog.Context {
	return l.logger.With()
}

// GetZerolog returns the underlying zerolog.Logger
func (l *Logger) GetZerolog() zerolog.Logger {
	return l.logger
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Console: true,
		Pretty:  false,
	}
}
