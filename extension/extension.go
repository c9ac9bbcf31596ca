// Package extension provides the plugin architecture for svglint. Extensions
// bundle related functionality (commands, MCP tools) and register at init
// time, so a new command never has to touch the root command's wiring.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for svglint extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
