// parse.go builds a Document from SVG bytes.
//
// Design: the decoder is driven with RawToken so that prefixes survive into
// the tree (a DOM tagName is "prefix:local", and rules match on it). Because
// RawToken neither checks end tags nor resolves namespaces, both are done
// here against an explicit element stack.

package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

const (
	xmlnsPrefix = "xmlns"
	xmlPrefix   = "xml"
	xmlURI      = "http://www.w3.org/XML/1998/namespace"
)

// frame is one open element plus the namespace bindings it declared.
type frame struct {
	el *Element
	ns map[string]string // prefix -> URI, "" key is the default namespace
}

type parser struct {
	stack []frame
	root  *Element
}

// ParseFile opens, parses and closes the file at path.
// Open errors are returned unwrapped; everything else wraps ErrParse.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a complete XML document from r.
// Non-UTF-8 documents are decoded according to their XML declaration.
func Parse(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	p := &parser{}
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if err := p.token(tok); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, line(d), err)
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1].el
		return nil, fmt.Errorf("%w: %w: <%s> not closed", ErrParse, ErrUnclosed, top.Tag())
	}
	if p.root == nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNoRoot)
	}
	return &Document{Root: p.root}, nil
}

func line(d *xml.Decoder) int {
	l, _ := d.InputPos()
	return l
}

func (p *parser) token(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		return p.start(t)
	case xml.EndElement:
		return p.end(t)
	case xml.CharData:
		if len(p.stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
			return ErrExtraContent
		}
	}
	// Comments, processing instructions and directives carry nothing a
	// rule looks at.
	return nil
}

func (p *parser) start(t xml.StartElement) error {
	if len(p.stack) == 0 && p.root != nil {
		return fmt.Errorf("%w: second root <%s>", ErrExtraContent, qualified(t.Name))
	}

	f := frame{el: &Element{}}
	var attrs []xml.Attr
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			f.bind("", a.Value)
		case a.Name.Space == xmlnsPrefix:
			f.bind(a.Name.Local, a.Value)
		default:
			attrs = append(attrs, a)
		}
	}
	p.stack = append(p.stack, f)

	f.el.Name = Name{Prefix: t.Name.Space, Space: p.resolve(t.Name.Space, true), Local: t.Name.Local}
	for _, a := range attrs {
		name := Name{Prefix: a.Name.Space, Local: a.Name.Local}
		// Unprefixed attributes are never in a namespace.
		if a.Name.Space != "" {
			name.Space = p.resolve(a.Name.Space, false)
		}
		f.el.Attrs = append(f.el.Attrs, Attr{Name: name, Value: a.Value})
	}

	if len(p.stack) == 1 {
		p.root = f.el
	} else {
		parent := p.stack[len(p.stack)-2].el
		parent.Children = append(parent.Children, f.el)
	}
	return nil
}

func (p *parser) end(t xml.EndElement) error {
	if len(p.stack) == 0 {
		return fmt.Errorf("%w: </%s> without open element", ErrMismatchedTag, qualified(t.Name))
	}
	top := p.stack[len(p.stack)-1].el
	if top.Name.Prefix != t.Name.Space || top.Name.Local != t.Name.Local {
		return fmt.Errorf("%w: <%s> closed by </%s>", ErrMismatchedTag, top.Tag(), qualified(t.Name))
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// resolve maps a prefix to its namespace URI using the innermost binding.
// Unbound prefixes resolve to "" and the prefix is still kept on the name.
func (p *parser) resolve(prefix string, element bool) string {
	if prefix == xmlPrefix {
		return xmlURI
	}
	if prefix == "" && !element {
		return ""
	}
	for i := len(p.stack) - 1; i >= 0; i-- {
		if uri, ok := p.stack[i].ns[prefix]; ok {
			return uri
		}
	}
	return ""
}

func (f *frame) bind(prefix, uri string) {
	if f.ns == nil {
		f.ns = make(map[string]string)
	}
	f.ns[prefix] = uri
}

func qualified(n xml.Name) string {
	return Name{Prefix: n.Space, Local: n.Local}.Qualified()
}
