// Package svg parses SVG markup into a small namespace-aware element tree.
//
// The tree keeps what lint rules need and nothing else: each element's
// qualified tag, its resolved namespace, its attributes in source order and
// its child elements in document order. Text, comments and processing
// instructions are dropped after the parser has checked them for
// well-formedness.
//
// Namespace declarations (xmlns, xmlns:*) are consumed during parsing and are
// not reported as attributes.
package svg

// Name is a qualified XML name.
//
// Prefix is the prefix as written in the source ("" when unprefixed).
// Space is the namespace URI the prefix resolved to, or "" when the name is
// not in a namespace.
type Name struct {
	Prefix string
	Space  string
	Local  string
}

// Qualified returns the name as written in the source: "prefix:local" when
// prefixed, otherwise "local".
func (n Name) Qualified() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// Attr is a single attribute on an element.
type Attr struct {
	Name  Name
	Value string
}

// Element is one node of the document tree.
type Element struct {
	Name     Name
	Attrs    []Attr
	Children []*Element
}

// Document is a parsed SVG file.
type Document struct {
	Root *Element
}

// Tag returns the element's tag name as written in the source.
func (e *Element) Tag() string {
	return e.Name.Qualified()
}

// Attr returns the value of the attribute with the given qualified name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Qualified() == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the element carries an attribute with the given
// qualified name ("style", "xlink:href").
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// HasAttrNS reports whether the element carries an attribute with the given
// local name in the namespace identified by space. The prefix used in the
// source does not matter.
func (e *Element) HasAttrNS(space, local string) bool {
	for _, a := range e.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return true
		}
	}
	return false
}

// Walk calls fn for e and every descendant, depth-first in document order.
// Walking stops as soon as fn returns false; Walk reports whether it ran to
// completion.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
