// Package session produces authenticated Twitter clients. A persisted cookie
// file is reused as-is when present; otherwise a credential login runs once
// and its session state is written back for the next invocation.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/harun/mcp-twitter/pkg/twitter"
)

// Factory builds a fresh, unauthenticated client. The user agent may be
// empty, in which case the client uses its default.
type Factory func(userAgent string) twitter.Client

// Provider acquires authenticated clients. Each Acquire call derives a new
// client from the session artifact or a fresh login; clients are never cached
// across invocations.
type Provider struct {
	creds       twitter.Credentials
	userAgent   string
	cookiesPath string
	factory     Factory
}

// NewProvider creates a session provider. cookiesPath is the fixed location
// of the session artifact.
func NewProvider(creds twitter.Credentials, userAgent, cookiesPath string, factory Factory) *Provider {
	return &Provider{
		creds:       creds,
		userAgent:   userAgent,
		cookiesPath: cookiesPath,
		factory:     factory,
	}
}

// CookiesPath returns the session artifact location.
func (p *Provider) CookiesPath() string {
	return p.cookiesPath
}

// HasSession reports whether a session artifact exists on disk.
func (p *Provider) HasSession() bool {
	_, err := os.Stat(p.cookiesPath)
	return err == nil
}

// Acquire returns a ready client. If the session artifact exists it is
// restored without any validity check; an expired session surfaces later as
// an operation failure, not here. If the artifact is absent, Acquire logs in
// with the configured credentials and persists the resulting session state.
//
// Concurrent first-time acquisitions race on the artifact file; the last
// writer wins. Login failures are logged and returned as *AuthError.
func (p *Provider) Acquire(ctx context.Context) (twitter.Client, error) {
	client := p.factory(p.userAgent)

	data, err := os.ReadFile(p.cookiesPath)
	if err == nil {
		if err := client.RestoreSession(data); err != nil {
			return nil, fmt.Errorf("failed to restore session from %s: %w", p.cookiesPath, err)
		}
		return client, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read session artifact: %w", err)
	}

	if err := client.Login(ctx, p.creds); err != nil {
		log.Error().Err(err).Msg("Failed to login")
		return nil, &AuthError{Err: err}
	}

	if err := p.persist(client); err != nil {
		return nil, err
	}

	return client, nil
}

func (p *Provider) persist(client twitter.Client) error {
	blob, err := client.ExportSession()
	if err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.cookiesPath), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(p.cookiesPath, blob, 0600); err != nil {
		return fmt.Errorf("failed to write session artifact: %w", err)
	}

	log.Info().Str("path", p.cookiesPath).Msg("Session persisted")
	return nil
}
