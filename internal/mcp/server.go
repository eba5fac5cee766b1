// Package mcp exposes the comparison registry to AI agents over the
// Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes comparison lookup tools.
type Server struct {
	registry *comparison.Registry
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server around the given registry.
func NewServer(registry *comparison.Registry) *Server {
	s := &Server{registry: registry}

	s.mcp = server.NewMCPServer(
		"langhub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(listLanguagesTool, s.handleListLanguages)
	s.mcp.AddTool(getComparisonTool, s.handleGetComparison)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
