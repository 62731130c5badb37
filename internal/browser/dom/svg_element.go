// internal/browser/dom/svg_element.go
package dom

import (
	"strings"

	"github.com/beevik/etree"
)

// svgElement wraps an etree element from a standalone SVG/XML document.
// Every element of such a document is treated as SVG content.
type svgElement struct {
	fieldStore
	doc *Document
	el  *etree.Element
}

func (e *svgElement) TagName() string { return e.el.Tag }

func (e *svgElement) IsSVG() bool { return true }

func (e *svgElement) Attr(name string) (string, bool) {
	if a := e.el.SelectAttr(name); a != nil {
		return a.Value, true
	}
	return "", false
}

func (e *svgElement) SetAttr(name, value string) {
	e.el.CreateAttr(name, value)
}

func (e *svgElement) RemoveAttr(name string) {
	e.el.RemoveAttr(name)
}

func (e *svgElement) Attrs() []Attribute {
	out := make([]Attribute, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		out = append(out, Attribute{Name: a.FullKey(), Value: a.Value})
	}
	return out
}

func (e *svgElement) Style() *InlineStyle { return newInlineStyle(e) }

func (e *svgElement) Parent() Element {
	p := e.el.Parent()
	// The document itself is an etree element with an empty tag.
	if p == nil || p.Tag == "" {
		return nil
	}
	return e.doc.wrapSVG(p)
}

func (e *svgElement) PrevElementSibling() Element {
	p := e.el.Parent()
	if p == nil {
		return nil
	}
	var prev *etree.Element
	for _, c := range p.ChildElements() {
		if c == e.el {
			break
		}
		prev = c
	}
	if prev == nil {
		return nil
	}
	return e.doc.wrapSVG(prev)
}

func (e *svgElement) Children() []Element {
	kids := e.el.ChildElements()
	out := make([]Element, 0, len(kids))
	for _, c := range kids {
		out = append(out, e.doc.wrapSVG(c))
	}
	return out
}

func (e *svgElement) Text() string {
	var sb strings.Builder
	for _, t := range e.el.Child {
		if cd, ok := t.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}
