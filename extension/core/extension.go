// Package core provides the core extension for svglint.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/svglint/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the commands that support linting rather than lint.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool()}
}
