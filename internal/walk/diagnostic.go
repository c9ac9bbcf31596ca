// diagnostic.go defines the per-entry failure record.
//
// The text form is svglint's output contract: "<reason> in '<file>'" for
// rule violations and access failures, "<reason> in <file>" (unquoted) for
// markup that could not be parsed.

package walk

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	KindParse     Kind = "parse"     // file is not well-formed markup
	KindViolation Kind = "violation" // file parsed but broke a rule
	KindAccess    Kind = "access"    // entry could not be read
)

// Diagnostic reports why one entry failed.
type Diagnostic struct {
	Path    string `json:"path"`
	File    string `json:"file"` // base name of Path
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (d Diagnostic) String() string {
	if d.Kind == KindParse {
		return fmt.Sprintf("%s in %s", d.Message, d.File)
	}
	return fmt.Sprintf("%s in '%s'", d.Message, d.File)
}
