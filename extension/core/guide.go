// guide.go implements the "svglint guide" command and its MCP equivalent.
//
// Separated from extension.go to isolate documentation rendering logic
// including terminal detection and glamour markdown formatting.
//
// Design: Guides are embedded in the binary via the guide package. Terminal
// output gets glamour rendering; pipe/redirect gets raw markdown.

package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/svglint/cmd"
	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/guide"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the svglint usage guide",
		Long: `Outputs the svglint guide.

  svglint guide           # main guide
  svglint guide rules     # what is checked
  svglint guide config    # config files and keys`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("svglint_guide",
			mcp.WithDescription("Read the svglint guide. Topics: rules, config, serve."),
			mcp.WithString("topic", mcp.Description("Guide topic (default: main guide)")),
		),
		Handler: getGuide,
	}
}

func getGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := ""
	if v, err := req.RequireString("topic"); err == nil {
		topic = v
	}

	content, err := guide.Get(topic)
	log.Event("mcp:svglint_guide", "read").Detail("topic", topic).Write(err)
	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s", topic, strings.Join(topics, ", "))), nil
	}
	return mcp.NewToolResultText(content), nil
}
