// Package rules provides the rule table inspection extension.
// Registers the "rules" command and the svglint_rules MCP tool.
package rules

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/svglint/cmd"
	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/internal/format"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the rules extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "rules".
func (e *Extension) Name() string { return "rules" }

// Init keeps the shared context so the printed tables reflect config.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the rules command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newRulesCmd()}
}

// MCPTools returns svglint_rules.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{{
		Tool: mcp.NewTool("svglint_rules",
			mcp.WithDescription("List the rules every SVG file is checked against, in check order, and the file extensions linted."),
		),
		Handler: getRules,
	}}
}

func (e *Extension) newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the rules files are checked against",
		Long: `Show the rule tables in the order they are checked.

The extension list reflects lint.extensions from config; --ext on a lint run
overrides it for that run only.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r := e.ctx.Rules()
			if cmd.JSON() {
				return cmd.PrintJSON(r)
			}
			return format.Rules(cmd.Out(), r)
		},
	}
}

func getRules(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(extCtx.Rules(), "", "  ")
	log.Event("mcp:svglint_rules", "list").Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
