package config

import (
	"fmt"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (must be one of: %s)", level, strings.Join(validLevels, ", "))
}

// ValidateCredentials checks the login triple. Credentials are optional (a
// persisted session needs none), but a partial set can never log in, so any
// one of them set requires all three.
func (v *Validator) ValidateCredentials(tw TwitterConfig) error {
	if tw.Username == "" && tw.Email == "" && tw.Password == "" {
		return nil
	}
	var missing []string
	if tw.Username == "" {
		missing = append(missing, "username")
	}
	if tw.Email == "" {
		missing = append(missing, "email")
	}
	if tw.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete credentials: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// RequireCredentials demands the full login triple and names the environment
// variable for each missing value. Unlike ValidateCredentials it also rejects
// the all-empty set: callers use it when a login is about to happen.
func (v *Validator) RequireCredentials(tw TwitterConfig) error {
	var missing []string
	if tw.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if tw.Email == "" {
		missing = append(missing, EnvEmail)
	}
	if tw.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: set %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateRotation validates log rotation settings
func (v *Validator) ValidateRotation(lg LoggingConfig) error {
	if lg.MaxSizeMB < 0 {
		return fmt.Errorf("logging max_size_mb must be >= 0, got %d", lg.MaxSizeMB)
	}
	if lg.MaxAgeDays < 0 {
		return fmt.Errorf("logging max_age_days must be >= 0, got %d", lg.MaxAgeDays)
	}
	return nil
}

// ValidateConfig performs comprehensive validation. The cookies path is not
// required here; it is defaulted at load time.
func (v *Validator) ValidateConfig(cfg *Config) []error {
	var errors []error

	if err := v.ValidateCredentials(cfg.Twitter); err != nil {
		errors = append(errors, err)
	}

	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		errors = append(errors, err)
	}

	if err := v.ValidateRotation(cfg.Logging); err != nil {
		errors = append(errors, err)
	}

	return errors
}
