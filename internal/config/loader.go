package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variable names. These are fixed, unprefixed names so the server
// drops into existing MCP client configurations unchanged.
const (
	EnvUsername  = "TWITTER_USERNAME"
	EnvEmail     = "TWITTER_EMAIL"
	EnvPassword  = "TWITTER_PASSWORD"
	EnvUserAgent = "USER_AGENT"
)

// Loader handles configuration loading
type Loader struct {
	configPath string
}

// NewLoader creates a new config loader
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load loads the configuration: defaults, then the optional JSON config
// file, then environment variables (which always win).
func (l *Loader) Load() (*Config, error) {
	configPath := l.configPath
	if configPath == "" {
		configPath = l.defaultConfigPath()
		if configPath == "" {
			return nil, fmt.Errorf("failed to get home directory")
		}
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		v := viper.New()
		v.SetConfigFile(configPath)
		v.SetConfigType("json")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnv(cfg)

	// Set data directory if not specified
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".mcp-twitter")
	}

	// Session artifact lives in the data directory unless overridden
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = filepath.Join(cfg.DataDir, "cookies.json")
	}

	// Set logging file path if not specified
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.DataDir, "mcp-twitter.log")
	}

	return cfg, nil
}

// applyEnv overlays the fixed environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Twitter.Username = v
	}
	if v := os.Getenv(EnvEmail); v != "" {
		cfg.Twitter.Email = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.Twitter.Password = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.Twitter.UserAgent = v
	}
}

// Save writes the configuration as JSON to the loader's config path.
func (l *Loader) Save(cfg *Config) error {
	configPath := l.configPath
	if configPath == "" {
		configPath = l.defaultConfigPath()
		if configPath == "" {
			return fmt.Errorf("failed to get home directory")
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	v.Set("twitter", cfg.Twitter)
	v.Set("cookies_path", cfg.CookiesPath)
	v.Set("data_dir", cfg.DataDir)
	v.Set("logging", cfg.Logging)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the config file path
func (l *Loader) GetConfigPath() string {
	if l.configPath != "" {
		return l.configPath
	}
	return l.defaultConfigPath()
}

func (l *Loader) defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mcp-twitter", "config.json")
}

// Load is a convenience function that creates a loader and loads the config
func Load(configPath string) (*Config, error) {
	loader := NewLoader(configPath)
	return loader.Load()
}
