// Package mcp implements the Model Context Protocol server, exposing svglint
// to LLMs. An assistant can lint a tree, read the rule tables and read the
// guide without shelling out to the CLI.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio. Tools from every registered
// extension are served alongside the built-in lint tool.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if extCtx == nil {
		extCtx = extension.NewContext(nil)
	}
	s := newServer(extCtx)

	slog.Info("svglint MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func newServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		"svglint",
		version.Short(),
		server.WithToolCapabilities(true),
	)

	h := &handlers{ctx: extCtx}
	registerTools(s, h)

	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, bind(extCtx, t.Handler))
			slog.Debug("registered tool", "extension", ext.Name(), "tool", t.Tool.Name)
		}
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
func bind(extCtx extension.Context, fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, extCtx, req)
	}
}

// handlers provides MCP request handlers with access to config and rules.
type handlers struct {
	ctx extension.Context
}

// registerTools exposes the lint operation as an MCP tool.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("svglint_lint",
			mcp.WithDescription("Lint every SVG file under a directory, or a single file. Returns whether the tree is valid and one diagnostic per invalid file."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory or file to lint")),
			mcp.WithString("extensions", mcp.Description("Comma-separated extensions to lint, without dots (default: svg or lint.extensions from config)")),
			mcp.WithString("ignore", mcp.Description("Comma-separated directory names or globs to skip (default: .git,node_modules or lint.ignore from config)")),
		),
		h.lint,
	)
}
