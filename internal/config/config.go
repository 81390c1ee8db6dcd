package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the mcp-twitter configuration
type Config struct {
	// Twitter account credentials and client settings
	Twitter TwitterConfig `json:"twitter" mapstructure:"twitter"`

	// Session artifact (cookie file) path
	CookiesPath string `json:"cookies_path" mapstructure:"cookies_path"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// TwitterConfig holds account credentials and the optional user agent
// override. Credentials are only needed when no session artifact exists yet.
type TwitterConfig struct {
	Username  string `json:"username" mapstructure:"username"`
	Email     string `json:"email" mapstructure:"email"`
	Password  string `json:"password" mapstructure:"password"`
	UserAgent string `json:"user_agent" mapstructure:"user_agent"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file" mapstructure:"file"`
	Console    bool   `json:"console" mapstructure:"console"`
	Pretty     bool   `json:"pretty" mapstructure:"pretty"`
	MaxSizeMB  int    `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxAgeDays int    `json:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  false,
		},
	}
}

// String returns a JSON representation of the config with the password elided
func (c *Config) String() string {
	clone := *c
	if clone.Twitter.Password != "" {
		clone.Twitter.Password = "[redacted]"
	}
	data, _ := json.MarshalIndent(&clone, "", "  ")
	return string(data)
}

// HasCredentials reports whether all three login values are set.
func (c *Config) HasCredentials() bool {
	return c.Twitter.Username != "" && c.Twitter.Email != "" && c.Twitter.Password != ""
}

// Validate checks the settings every command needs. Credential completeness
// is deliberately not checked here: a persisted session serves fine without
// any credentials, so that check belongs to the login path.
func (c *Config) Validate() error {
	if c.CookiesPath == "" {
		return fmt.Errorf("cookies path is required")
	}

	v := NewValidator()
	if err := v.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return v.ValidateRotation(c.Logging)
}
