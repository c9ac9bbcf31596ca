// errors.go defines sentinel errors for rule violations.
//
// Separated to centralise the violation categories. Each *Violation unwraps
// to exactly one of these, so callers can branch with errors.Is without
// parsing the human-readable message.

package validate

import "errors"

var (
	ErrNotRootElement               = errors.New("not root element")
	ErrMissingRequiredAttribute     = errors.New("missing required attribute")
	ErrForbiddenTag                 = errors.New("forbidden tag")
	ErrForbiddenAttribute           = errors.New("forbidden attribute")
	ErrForbiddenNamespacedAttribute = errors.New("forbidden namespaced attribute")
)
