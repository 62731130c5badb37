// internal/browser/dom/inline_style.go
package dom

import (
	"github.com/xkilldash9x/axi/internal/browser/parser"
)

// InlineStyle reads and writes declarations in an element's style attribute.
// Property names may be given camel-cased ("backgroundColor") or hyphenated.
type InlineStyle struct {
	el Element
}

func newInlineStyle(el Element) *InlineStyle {
	return &InlineStyle{el: el}
}

// Declarations returns the parsed declarations in source order.
func (s *InlineStyle) Declarations() []parser.Declaration {
	raw, ok := s.el.Attr("style")
	if !ok {
		return nil
	}
	return parser.ParseInlineStyle(raw)
}

// Get returns the declared value or "" when the property is not set inline.
func (s *InlineStyle) Get(prop string) string {
	name := parser.Property(parser.CSSName(prop))
	for _, d := range s.Declarations() {
		if d.Property == name {
			return string(d.Value)
		}
	}
	return ""
}

// Has reports whether the property is declared inline.
func (s *InlineStyle) Has(prop string) bool {
	name := parser.Property(parser.CSSName(prop))
	for _, d := range s.Declarations() {
		if d.Property == name {
			return true
		}
	}
	return false
}

// Set writes one declaration, keeping the position of an existing one.
// An empty value removes the declaration, like assigning "" to a style property.
func (s *InlineStyle) Set(prop, value string) {
	if value == "" {
		s.Remove(prop)
		return
	}
	decls := parser.SetDeclaration(s.Declarations(), parser.Declaration{
		Property: parser.Property(parser.CSSName(prop)),
		Value:    parser.Value(value),
	})
	s.el.SetAttr("style", parser.SerializeInlineStyle(decls))
}

// Remove deletes the declaration. The style attribute is dropped once empty.
func (s *InlineStyle) Remove(prop string) {
	name := parser.Property(parser.CSSName(prop))
	decls := s.Declarations()
	kept := decls[:0]
	for _, d := range decls {
		if d.Property != name {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(decls) {
		return
	}
	if len(kept) == 0 {
		s.el.RemoveAttr("style")
		return
	}
	s.el.SetAttr("style", parser.SerializeInlineStyle(kept))
}
