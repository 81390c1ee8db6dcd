package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/mcp-twitter/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and session status",
	Long:  `Show the resolved configuration paths and whether a session artifact exists.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s\n", config.NewLoader(cfgFile).GetConfigPath())
	fmt.Printf("Data dir: %s\n", cfg.DataDir)
	fmt.Printf("Cookies path: %s\n", cfg.CookiesPath)

	provider := newProvider(cfg)
	if provider.HasSession() {
		fmt.Println("Session: present")
	} else {
		fmt.Println("Session: absent")
	}

	if cfg.HasCredentials() {
		fmt.Println("Credentials: configured")
	} else {
		fmt.Println("Credentials: missing")
	}

	return nil
}
