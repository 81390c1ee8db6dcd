// Package tools exposes the Twitter action surface as MCP tools. Every tool
// acquires a session, performs one primary client call (plus a username
// resolution where needed) and renders the result as plain text. Failures
// become "Failed to <action>: ..." text results, never protocol errors.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/harun/mcp-twitter/pkg/session"
)

// Server wires the tool registry to a session provider.
type Server struct {
	mcp      *server.MCPServer
	sessions *session.Provider
}

// NewServer creates the MCP server and registers all tools.
func NewServer(sessions *session.Provider, version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"mcp-twitter",
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
		sessions: sessions,
	}
	s.registerTools()
	return s
}

// ServeStdio serves MCP over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	log.Info().Msg("Serving MCP on stdio")
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server, used by tests to call tools
// in-process.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// failure logs an operation failure and converts it into a plain-text tool
// result. Callers cannot receive protocol-level errors from tool bodies.
func failure(action string, err error) *mcp.CallToolResult {
	log.Error().Err(err).Str("action", action).Msg("Tool call failed")
	return mcp.NewToolResultText(fmt.Sprintf("Failed to %s: %v", action, err))
}
