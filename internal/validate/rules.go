// rules.go defines the rule tables the engine checks against.
//
// Design: tables are ordered slices, not sets, because check order decides
// which violation is reported. DefaultRules returns a fresh copy on every
// call so no caller can mutate another caller's tables.

package validate

import (
	"slices"
	"strings"
)

// Attr identifies an attribute in a rule table.
//
// A plain entry (Space == "") matches an attribute by qualified name, the
// way it is written in the source. A namespaced entry matches by namespace
// URI and local name regardless of prefix.
type Attr struct {
	Space string `json:"namespace,omitempty"`
	Local string `json:"name"`
}

// Namespaced reports whether the entry matches by namespace.
func (a Attr) Namespaced() bool {
	return a.Space != ""
}

func (a Attr) String() string {
	if a.Space == "" {
		return a.Local
	}
	return a.Space + ":" + a.Local
}

// Rules holds the tables a document is validated against.
// Rules must not be modified once validation has started.
type Rules struct {
	RootTag        string   `json:"root_tag"`
	Required       []string `json:"required_root_attributes"`
	ForbiddenAttrs []Attr   `json:"forbidden_attributes"`
	ForbiddenTags  []string `json:"forbidden_tags"`
	Extensions     []string `json:"watched_extensions"`
}

// InkscapeNS is the namespace of Inkscape's editor metadata attributes.
const InkscapeNS = "http://www.inkscape.org/namespaces/inkscape"

// DefaultRules returns the built-in rule tables.
func DefaultRules() *Rules {
	return &Rules{
		RootTag:  "svg",
		Required: []string{"viewBox"},
		ForbiddenAttrs: []Attr{
			{Local: "style"},
			{Space: InkscapeNS, Local: "version"},
		},
		ForbiddenTags: []string{"image"},
		Extensions:    []string{"svg"},
	}
}

// Watches reports whether files with extension ext (no leading dot) are
// validated under these rules. Matching is case-sensitive.
func (r *Rules) Watches(ext string) bool {
	return slices.Contains(r.Extensions, strings.TrimPrefix(ext, "."))
}
