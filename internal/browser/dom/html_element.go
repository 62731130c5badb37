// internal/browser/dom/html_element.go
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlElement wraps an element node from golang.org/x/net/html. SVG content
// embedded in HTML is parsed as foreign content with Namespace "svg".
type htmlElement struct {
	fieldStore
	doc  *Document
	node *html.Node
}

func (e *htmlElement) TagName() string { return e.node.Data }

func (e *htmlElement) IsSVG() bool { return e.node.Namespace == "svg" }

func attrKey(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}

func (e *htmlElement) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if strings.EqualFold(attrKey(a), name) {
			return a.Val, true
		}
	}
	return "", false
}

func (e *htmlElement) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if strings.EqualFold(attrKey(a), name) {
			e.node.Attr[i].Val = value
			return
		}
	}
	attr := html.Attribute{Key: name, Val: value}
	if ns, key, ok := strings.Cut(name, ":"); ok && (ns == "xlink" || ns == "xml" || ns == "xmlns") {
		attr.Namespace, attr.Key = ns, key
	}
	e.node.Attr = append(e.node.Attr, attr)
}

func (e *htmlElement) RemoveAttr(name string) {
	for i, a := range e.node.Attr {
		if strings.EqualFold(attrKey(a), name) {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

func (e *htmlElement) Attrs() []Attribute {
	out := make([]Attribute, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		out = append(out, Attribute{Name: attrKey(a), Value: a.Val})
	}
	return out
}

func (e *htmlElement) Style() *InlineStyle { return newInlineStyle(e) }

func (e *htmlElement) Parent() Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.wrapHTML(p)
		}
	}
	return nil
}

func (e *htmlElement) PrevElementSibling() Element {
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return e.doc.wrapHTML(s)
		}
	}
	return nil
}

func (e *htmlElement) Children() []Element {
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrapHTML(c))
		}
	}
	return out
}

func (e *htmlElement) Text() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
