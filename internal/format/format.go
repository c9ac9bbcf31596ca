// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so command implementations focus on running
// the lint; diagnostics themselves render through walk.Diagnostic.String
// because their shape is part of the output contract.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/svglint/internal/validate"
)

// Rules prints the rule tables in check order.
func Rules(w io.Writer, r *validate.Rules) error {
	fmt.Fprintf(w, "Root element:         <%s>\n", r.RootTag)
	fmt.Fprintf(w, "Required attributes:  %s\n", list(r.Required))

	attrs := make([]string, len(r.ForbiddenAttrs))
	for i, a := range r.ForbiddenAttrs {
		attrs[i] = a.String()
	}
	fmt.Fprintf(w, "Forbidden attributes: %s\n", list(attrs))

	tags := make([]string, len(r.ForbiddenTags))
	for i, t := range r.ForbiddenTags {
		tags[i] = "<" + t + ">"
	}
	fmt.Fprintf(w, "Forbidden elements:   %s\n", list(tags))
	_, err := fmt.Fprintf(w, "Extensions:           %s\n", list(r.Extensions))
	return err
}

// list joins items for display, "(none)" when empty.
func list(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
