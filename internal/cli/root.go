package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcp-twitter",
	Short: "mcp-twitter - MCP server for Twitter",
	Long: `mcp-twitter is a Model Context Protocol server that exposes Twitter
actions (search, timelines, tweeting, likes, follows, DMs, trends) as tools
over stdio. It authenticates with a persisted cookie session and falls back
to a credential login when no session exists yet.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mcp-twitter/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	// Version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// loadDotEnv pulls in a .env file from the working directory so credentials
// can sit next to the MCP client configuration. A missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
