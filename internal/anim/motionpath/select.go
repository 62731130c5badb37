// internal/anim/motionpath/select.go
package motionpath

import (
	"strings"

	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/style"
)

// ShapeTags are the tags a motion path node may have.
var ShapeTags = []string{"path", "circle", "rect", "line", "polyline", "polygon"}

// IsMotionPathNode reports whether el is one of the ShapeTags.
func IsMotionPathNode(el dom.Element) bool {
	if el == nil {
		return false
	}
	tag := el.TagName()
	for _, s := range ShapeTags {
		if tag == s {
			return true
		}
	}
	return false
}

// Select resolves a motion path node. A string is evaluated against doc as a
// CSS selector, or as XPath when it starts with "/" or "(", and the first
// match in document order with a shape tag wins. An element is returned as
// is when it has a shape tag. Everything else fails with a NoValidNodeError.
func Select(doc *dom.Document, selectorOrElement any) (dom.Element, error) {
	switch v := selectorOrElement.(type) {
	case dom.Element:
		if IsMotionPathNode(v) {
			return v, nil
		}
		return nil, &NoValidNodeError{Tag: v.TagName()}
	case string:
		matches, err := query(doc, v)
		if err != nil {
			return nil, &NoValidNodeError{Query: v, Err: err}
		}
		for _, el := range matches {
			if IsMotionPathNode(el) {
				return el, nil
			}
		}
		return nil, &NoValidNodeError{Query: v}
	}
	return nil, &NoValidNodeError{}
}

func query(doc *dom.Document, q string) ([]dom.Element, error) {
	q = strings.TrimSpace(q)
	if strings.HasPrefix(q, "/") || strings.HasPrefix(q, "(") {
		return doc.XPath(q)
	}
	return style.QuerySelectorAll(doc, q)
}
