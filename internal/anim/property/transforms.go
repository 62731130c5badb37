// internal/anim/property/transforms.go
package property

import "github.com/xkilldash9x/axi/internal/anim/transform"

// ParseTransforms parses the inline transform of an element target. Object
// targets and elements without a transform yield an empty map.
func ParseTransforms(t *Target) *transform.Map {
	if !t.IsElement() {
		return transform.NewMap()
	}
	return transform.Parse(t.el.Style().Get("transform"))
}

// GetTransformValue returns the current argument of fn, or its default ("1"
// for the scale family, "0px" for translations, "0deg" for rotations).
func GetTransformValue(t *Target, fn string) string {
	if v, ok := ParseTransforms(t).Get(fn); ok {
		return v
	}
	return transform.Default(fn)
}

// SetTransformProgress sets fn in m and writes the whole map back as the
// element's transform in a single assignment. m must be the map shared by
// every transform writer of this element; a nil m is replaced by a fresh
// parse of the current transform.
func SetTransformProgress(t *Target, fn, value string, m *transform.Map) {
	if !t.IsElement() {
		return
	}
	if m == nil {
		m = ParseTransforms(t)
	}
	m.Set(fn, value)
	t.el.Style().Set("transform", m.String())
}
