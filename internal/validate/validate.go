package validate

import (
	"slices"

	"github.com/jpl-au/svglint/internal/svg"
)

// Document validates a parsed document against rules.
// It returns nil when the document conforms, otherwise the first *Violation
// found in check order.
func Document(doc *svg.Document, rules *Rules) error {
	root := doc.Root
	if root == nil || root.Tag() != rules.RootTag {
		tag := ""
		if root != nil {
			tag = root.Tag()
		}
		return &Violation{Kind: ErrNotRootElement, Tag: tag}
	}

	for _, name := range rules.Required {
		if !root.HasAttr(name) {
			return &Violation{Kind: ErrMissingRequiredAttribute, Tag: root.Tag(), Attr: Attr{Local: name}}
		}
	}

	var err error
	root.Walk(func(el *svg.Element) bool {
		err = Element(el, rules)
		return err == nil
	})
	return err
}

// Element validates a single element, ignoring its children.
func Element(el *svg.Element, rules *Rules) error {
	tag := el.Tag()
	if slices.Contains(rules.ForbiddenTags, tag) {
		return &Violation{Kind: ErrForbiddenTag, Tag: tag}
	}

	for _, a := range rules.ForbiddenAttrs {
		if a.Namespaced() {
			if el.HasAttrNS(a.Space, a.Local) {
				return &Violation{Kind: ErrForbiddenNamespacedAttribute, Tag: tag, Attr: a}
			}
			continue
		}
		if el.HasAttr(a.Local) {
			return &Violation{Kind: ErrForbiddenAttribute, Tag: tag, Attr: a}
		}
	}
	return nil
}
