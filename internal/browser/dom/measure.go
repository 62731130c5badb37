// internal/browser/dom/measure.go
package dom

import (
	"github.com/xkilldash9x/axi/internal/browser/geometry"
)

// PathMeasurer is the document's native total-length primitive. It measures
// <path> elements from their path data, flattening curves and arcs into
// Segments chords each (geometry.DefaultCurveSegments when zero).
type PathMeasurer struct {
	Segments int
}

// TotalLength returns the length of a <path> element. ok is false for any
// other element or when the path data cannot be parsed.
func (m PathMeasurer) TotalLength(el Element) (float64, bool) {
	if el == nil || el.TagName() != "path" {
		return 0, false
	}
	d, ok := el.Attr("d")
	if !ok {
		return 0, false
	}
	p, err := geometry.ParsePath(d, m.Segments)
	if err != nil {
		return 0, false
	}
	return p.Length(), true
}
