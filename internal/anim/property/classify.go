// internal/anim/property/classify.go
package property

import (
	"github.com/xkilldash9x/axi/internal/anim/transform"
	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/parser"
	"github.com/xkilldash9x/axi/internal/browser/style"
)

// StyleSource provides computed style for elements. *style.Engine implements it.
type StyleSource interface {
	ComputedValue(el dom.Element, prop string) string
}

var _ StyleSource = (*style.Engine)(nil)

// Classify picks the mechanism that governs prop on t. Object targets are
// always MechanismObject. On elements, transform-function names win over
// everything, then any property with a live style value, then attributes,
// and finally the element's own fields.
//
// host may be nil, in which case only inline style counts as a live read.
func Classify(host StyleSource, t *Target, prop string) Mechanism {
	if !t.IsElement() {
		return MechanismObject
	}
	if transform.IsFunction(prop) {
		return MechanismTransform
	}
	if prop != "transform" && readCSS(host, t.el, prop) != "" {
		return MechanismCSS
	}
	if _, ok := t.el.Attr(prop); ok {
		return MechanismAttribute
	}
	return MechanismObject
}

// GetCSSValue returns the inline value of prop on el, else its computed value,
// else "0". Properties the style engine does not recognize read as "0".
func GetCSSValue(host StyleSource, el dom.Element, prop string) string {
	if v := readCSS(host, el, prop); v != "" {
		return v
	}
	return "0"
}

func readCSS(host StyleSource, el dom.Element, prop string) string {
	name := parser.CSSName(prop)
	if !style.IsKnownProperty(name) {
		return ""
	}
	if v := el.Style().Get(name); v != "" {
		return v
	}
	if host == nil {
		return ""
	}
	return host.ComputedValue(el, name)
}
