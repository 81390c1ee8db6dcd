package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Twitter.Username)
	assert.Empty(t, cfg.CookiesPath)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CookiesPath = "/tmp/cookies.json"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing cookies path", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.Validate())
	})
}

func TestHasCredentials(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.HasCredentials())

	cfg.Twitter.Username = "user"
	cfg.Twitter.Email = "user@example.com"
	assert.False(t, cfg.HasCredentials())

	cfg.Twitter.Password = "hunter2"
	assert.True(t, cfg.HasCredentials())
}

func TestConfigStringRedactsPassword(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Twitter.Password = "hunter2"

	out := cfg.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "[redacted]")

	// String must not mutate the config itself.
	assert.Equal(t, "hunter2", cfg.Twitter.Password)
}
