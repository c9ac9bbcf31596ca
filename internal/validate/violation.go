// violation.go implements the typed error returned for a failed check.
//
// Design: the message text is part of svglint's output contract
// ("Missing 'viewBox' attribute in 'icon.svg'"), so Error renders it from
// the violation's fields rather than from the sentinel.

package validate

import "fmt"

// Violation describes why a document or element failed validation.
type Violation struct {
	Kind error  // one of the Err* sentinels
	Tag  string // element tag the violation was found on
	Attr Attr   // offending or missing attribute, when Kind concerns one
}

func (v *Violation) Error() string {
	switch v.Kind {
	case ErrNotRootElement:
		return "Not a valid SVG"
	case ErrMissingRequiredAttribute:
		return fmt.Sprintf("Missing '%s' attribute", v.Attr)
	case ErrForbiddenTag:
		return fmt.Sprintf("Invalid element <%s>", v.Tag)
	case ErrForbiddenAttribute, ErrForbiddenNamespacedAttribute:
		return fmt.Sprintf("<%s> has invalid attribute, '%s'", v.Tag, v.Attr)
	default:
		return fmt.Sprintf("<%s>: %v", v.Tag, v.Kind)
	}
}

func (v *Violation) Unwrap() error {
	return v.Kind
}
