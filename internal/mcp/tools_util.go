// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map.
//
// Design: Extraction is permissive (return default on error) rather than
// strict. An LLM omitting an optional parameter should get the default
// behaviour, not a type error.

package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getStrings extracts a string array parameter. Non-string elements are
// skipped. Returns nil when the parameter is absent or not an array.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// getList extracts a list parameter given either as a JSON array or as a
// comma-separated string. Returns nil when absent or blank, so the caller's
// default applies.
func getList(req mcp.CallToolRequest, name string) []string {
	if arr := getStrings(req, name); arr != nil {
		return arr
	}
	s := strings.TrimSpace(getString(req, name, ""))
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// jsonResult serialises v as indented JSON and wraps it in an MCP text
// result. Marshalling failures become MCP error results so every failure
// reaches the client the same way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
