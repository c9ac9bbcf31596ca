// errors.go defines sentinel errors for parse failures.
//
// Every error returned by Parse and ParseFile wraps ErrParse, except the
// error from opening the file, which is returned as-is so callers can tell
// "could not read" apart from "not well-formed".

package svg

import "errors"

var (
	ErrParse         = errors.New("malformed markup")
	ErrNoRoot        = errors.New("no root element")
	ErrExtraContent  = errors.New("content outside the root element")
	ErrUnclosed      = errors.New("premature end of data")
	ErrMismatchedTag = errors.New("mismatched end tag")
)
