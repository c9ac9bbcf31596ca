// Package validate is svglint's rule engine.
//
// It decides whether a parsed SVG document conforms to a fixed rule set and,
// when it does not, reports the single violation that was found first. The
// engine is pure: it reads a *svg.Document and an immutable *Rules and
// returns an error value, nothing else.
//
// # Check Order
//
// Document checks run in three stages and stop at the first failure:
//
//  1. The root element's tag must be Rules.RootTag.
//  2. The root must carry every Rules.Required attribute, in table order.
//  3. Every element, root included, depth-first in document order, must
//     pass Element.
//
// Element checks forbidden tags before forbidden attributes, and forbidden
// attributes in table order. The first match is the reported violation.
//
// # Error Handling
//
// Every violation is a *Violation that unwraps to one of the sentinel errors
// in errors.go. Use errors.Is for the category and errors.As for details:
//
//	err := validate.Document(doc, rules)
//	if errors.Is(err, validate.ErrForbiddenTag) {
//	    // ...
//	}
package validate
