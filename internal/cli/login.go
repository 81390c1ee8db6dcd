package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/mcp-twitter/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist a session",
	Long: `Log in with the configured credentials and persist the session
artifact, so later serve runs reuse it without touching the credentials.
If an artifact already exists it is reused; delete the cookie file to force
a fresh login.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider := newProvider(cfg)
	if provider.HasSession() {
		fmt.Printf("Session already exists at %s\n", provider.CookiesPath())
		return nil
	}

	if err := config.NewValidator().RequireCredentials(cfg.Twitter); err != nil {
		return err
	}

	if _, err := provider.Acquire(cmd.Context()); err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	fmt.Printf("Session persisted to %s\n", provider.CookiesPath())
	return nil
}
