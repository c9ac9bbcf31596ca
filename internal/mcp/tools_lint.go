// tools_lint.go implements the MCP tool that lints a tree.

package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jpl-au/svglint/internal/config"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/jpl-au/svglint/internal/walk"
	"github.com/mark3labs/mcp-go/mcp"
)

// lint handles svglint_lint tool calls. An invalid tree is a successful
// call with valid=false; only bad arguments and cancellation are errors.
func (h *handlers) lint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	opts := walk.Options{
		Rules:  h.ctx.Rules(),
		Ignore: h.ctx.Config().Ignore(),
	}

	var args config.Config
	if exts := getList(req, "extensions"); exts != nil {
		args.Lint.Extensions = exts
		opts.Extensions = exts
	}
	if ignore := getList(req, "ignore"); ignore != nil {
		args.Lint.Ignore = ignore
		opts.Ignore = ignore
	}
	if err := args.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if abs, err := filepath.Abs(path); err == nil {
		log.SetProject(abs)
	}

	res, err := walk.Run(ctx, nil, path, opts)
	if err == nil && !res.Valid {
		err = fmt.Errorf("%d invalid", res.Invalid)
	}
	log.Event("mcp:svglint_lint", "lint").
		Path(path).
		Detail("files", res.Files).
		Detail("invalid", res.Invalid).
		Write(err)

	if ctx.Err() != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lint interrupted: %v", ctx.Err())), nil
	}
	return jsonResult(res)
}
