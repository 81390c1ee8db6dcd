package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/mcp-twitter/internal/config"
	"github.com/harun/mcp-twitter/internal/logger"
	"github.com/harun/mcp-twitter/pkg/scraper"
	"github.com/harun/mcp-twitter/pkg/session"
	"github.com/harun/mcp-twitter/pkg/tools"
	"github.com/harun/mcp-twitter/pkg/twitter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	Long: `Serve the Model Context Protocol over stdin/stdout.
This is the command an MCP client runs; all diagnostics go to stderr and the
log file so stdout stays reserved for the protocol.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lg, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		Console:    cfg.Logging.Console,
		Pretty:     cfg.Logging.Pretty,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer lg.Close()

	server := tools.NewServer(newProvider(cfg), version)
	return server.ServeStdio()
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newProvider(cfg *config.Config) *session.Provider {
	creds := twitter.Credentials{
		Username: cfg.Twitter.Username,
		Email:    cfg.Twitter.Email,
		Password: cfg.Twitter.Password,
	}
	return session.NewProvider(creds, cfg.Twitter.UserAgent, cfg.CookiesPath, scraper.Factory())
}
