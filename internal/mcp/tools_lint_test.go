package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/internal/config"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/jpl-au/svglint/internal/walk"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validSVG  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="1" height="1"/></svg>`
	styledSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect style="fill:red"/></svg>`
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func callLint(t *testing.T, h *handlers, args map[string]any) (walk.Result, *mcp.CallToolResult) {
	t.Helper()
	res, err := h.lint(context.Background(), request(args))
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out walk.Result
	if !res.IsError {
		require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	}
	return out, res
}

func TestLint(t *testing.T) {
	h := &handlers{ctx: extension.NewContext(nil)}

	t.Run("valid tree", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.svg", validSVG)
		writeFile(t, dir, "sub/b.svg", validSVG)

		out, _ := callLint(t, h, map[string]any{"path": dir})
		assert.True(t, out.Valid)
		assert.Equal(t, 2, out.Files)
		assert.Empty(t, out.Diagnostics)
	})

	t.Run("invalid tree is not a tool error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.svg", validSVG)
		writeFile(t, dir, "b.svg", styledSVG)

		out, res := callLint(t, h, map[string]any{"path": dir})
		assert.False(t, res.IsError)
		assert.False(t, out.Valid)
		assert.Equal(t, 1, out.Invalid)
		require.Len(t, out.Diagnostics, 1)
		assert.Equal(t, "b.svg", out.Diagnostics[0].File)
		assert.Equal(t, "<rect> has invalid attribute, 'style'", out.Diagnostics[0].Message)
	})

	t.Run("extensions as comma list", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.svg", validSVG)
		writeFile(t, dir, "b.xml", styledSVG)

		out, _ := callLint(t, h, map[string]any{"path": dir, "extensions": "svg, xml"})
		assert.False(t, out.Valid)
		assert.Equal(t, 2, out.Files)
	})

	t.Run("ignore as array", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.svg", validSVG)
		writeFile(t, dir, "dist/b.svg", styledSVG)

		out, _ := callLint(t, h, map[string]any{"path": dir, "ignore": []any{"dist"}})
		assert.True(t, out.Valid)
		assert.Equal(t, 1, out.Files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, res := callLint(t, h, map[string]any{})
		assert.True(t, res.IsError)
	})

	t.Run("bad extension", func(t *testing.T) {
		_, res := callLint(t, h, map[string]any{"path": t.TempDir(), "extensions": ".svg"})
		assert.True(t, res.IsError)
	})

	t.Run("nonexistent path", func(t *testing.T) {
		out, res := callLint(t, h, map[string]any{"path": filepath.Join(t.TempDir(), "nope")})
		assert.False(t, res.IsError)
		assert.False(t, out.Valid)
		require.Len(t, out.Diagnostics, 1)
		assert.Equal(t, walk.KindAccess, out.Diagnostics[0].Kind)
	})
}

func TestLint_ConfigDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Lint.Ignore = []string{"vendor"}
	h := &handlers{ctx: extension.NewContext(cfg)}

	dir := t.TempDir()
	writeFile(t, dir, "vendor/bad.svg", styledSVG)
	writeFile(t, dir, "node_modules/bad.svg", styledSVG)

	out, _ := callLint(t, h, map[string]any{"path": dir})
	// Configured ignore replaces the default list.
	assert.False(t, out.Valid)
	require.Len(t, out.Diagnostics, 1)
	assert.Contains(t, out.Diagnostics[0].Path, "node_modules")
}

func TestLint_Cancelled(t *testing.T) {
	h := &handlers{ctx: extension.NewContext(nil)}
	dir := t.TempDir()
	writeFile(t, dir, "a.svg", validSVG)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := h.lint(ctx, request(map[string]any{"path": dir}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetList(t *testing.T) {
	assert.Nil(t, getList(request(map[string]any{}), "x"))
	assert.Nil(t, getList(request(map[string]any{"x": "  "}), "x"))
	assert.Equal(t, []string{"a", "b"}, getList(request(map[string]any{"x": "a,,b "}), "x"))
	assert.Equal(t, []string{"a"}, getList(request(map[string]any{"x": []any{"a", 1}}), "x"))
}

func TestBind(t *testing.T) {
	extCtx := extension.NewContext(nil)
	var got extension.Context
	fn := bind(extCtx, func(_ context.Context, c extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		got = c
		return mcp.NewToolResultText("ok"), nil
	})

	res, err := fn(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Same(t, extCtx, got)
	assert.False(t, res.IsError)
}

func TestLint_SetsAuditProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))
	require.NoError(t, log.Open())
	t.Cleanup(log.Close)

	h := &handlers{ctx: extension.NewContext(nil)}
	a := t.TempDir()
	b := t.TempDir()
	writeFile(t, a, "a.svg", validSVG)
	writeFile(t, b, "b.svg", validSVG)

	callLint(t, h, map[string]any{"path": a})
	projectA := log.Project()
	assert.NotEmpty(t, projectA)

	callLint(t, h, map[string]any{"path": b})
	assert.NotEqual(t, projectA, log.Project())

	callLint(t, h, map[string]any{"path": a})
	assert.Equal(t, projectA, log.Project())
}
