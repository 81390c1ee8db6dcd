package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Wizard provides an interactive configuration wizard
type Wizard struct {
	reader *bufio.Reader
}

// NewWizard creates a new configuration wizard
func NewWizard() *Wizard {
	return &Wizard{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run runs the interactive configuration wizard
func (w *Wizard) Run() (*Config, error) {
	fmt.Println("=== mcp-twitter Configuration Wizard ===")
	fmt.Println()

	cfg := DefaultConfig()
	validator := NewValidator()

	// Credentials
	fmt.Println("Twitter credentials (only needed until a session is persisted;")
	fmt.Println("press Enter to skip and configure them via environment variables):")
	fmt.Println()

	fmt.Print("Username: ")
	username, err := w.readLine()
	if err != nil {
		return nil, err
	}
	cfg.Twitter.Username = username

	if username != "" {
		for {
			fmt.Print("Email: ")
			email, err := w.readLine()
			if err != nil {
				return nil, err
			}
			if email == "" {
				fmt.Println("Error: email is required when a username is set")
				continue
			}
			cfg.Twitter.Email = email
			break
		}

		for {
			fmt.Print("Password: ")
			password, err := w.readLine()
			if err != nil {
				return nil, err
			}
			if password == "" {
				fmt.Println("Error: password is required when a username is set")
				continue
			}
			cfg.Twitter.Password = password
			break
		}
	}

	if err := validator.ValidateCredentials(cfg.Twitter); err != nil {
		return nil, err
	}

	fmt.Println()

	// User agent
	fmt.Print("User agent override (press Enter for the client default): ")
	userAgent, err := w.readLine()
	if err != nil {
		return nil, err
	}
	cfg.Twitter.UserAgent = userAgent

	fmt.Println()

	// Log Level
	fmt.Println("Logging:")
	fmt.Print("Log level (debug/info/warn/error) [info]: ")
	level, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if level != "" {
		if err := validator.ValidateLogLevel(level); err != nil {
			fmt.Printf("Warning: %v, using default (info)\n", err)
		} else {
			cfg.Logging.Level = level
		}
	}

	fmt.Println()
	fmt.Println("Configuration complete!")

	return cfg, nil
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
