// serve.go implements the "svglint serve" command for MCP server operation.
//
// Separated from extension.go because serve blocks handling MCP requests
// over stdio instead of running and exiting.

package core

import (
	"github.com/jpl-au/svglint/cmd"
	"github.com/jpl-au/svglint/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio so an LLM client
can lint trees and read the rules and guide.

Config is read once at startup, exactly as for a lint run.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.Context())
		},
	}
}
