// internal/browser/dom/element.go
package dom

import "strings"

// Attribute is a single name/value pair on an element. Namespaced attributes
// carry their prefix in Name ("xlink:href").
type Attribute struct {
	Name  string
	Value string
}

// Element is the host element model shared by the HTML and SVG backends.
// Implementations are owned by a Document, which hands out one stable value
// per underlying node so identity comparisons hold.
type Element interface {
	// TagName is the local name as written in the source ("circle", "linearGradient").
	TagName() string
	// IsSVG reports whether the element lives in the SVG namespace.
	IsSVG() bool

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	Attrs() []Attribute

	// Style is a live view over the style attribute.
	Style() *InlineStyle

	// Parent returns nil for the document element.
	Parent() Element
	PrevElementSibling() Element
	Children() []Element

	// Field and SetField read and write plain object fields on the element
	// (expando properties such as scrollTop) that are neither styles nor attributes.
	Field(name string) (any, bool)
	SetField(name string, value any)

	// Text concatenates the character data of direct children.
	Text() string
}

// fieldStore backs Field/SetField for both backends.
type fieldStore struct {
	fields map[string]any
}

func (f *fieldStore) Field(name string) (any, bool) {
	v, ok := f.fields[name]
	return v, ok
}

func (f *fieldStore) SetField(name string, value any) {
	if f.fields == nil {
		f.fields = make(map[string]any)
	}
	f.fields[name] = value
}

// HasClass reports whether the class attribute contains name.
func HasClass(el Element, name string) bool {
	v, ok := el.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// ID returns the id attribute or "".
func ID(el Element) string {
	v, _ := el.Attr("id")
	return v
}

// Walk visits el and its descendants in document order. Returning false from
// fn prunes the subtree.
func Walk(el Element, fn func(Element) bool) {
	if el == nil || !fn(el) {
		return
	}
	for _, c := range el.Children() {
		Walk(c, fn)
	}
}
