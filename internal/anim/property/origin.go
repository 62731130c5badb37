// internal/anim/property/origin.go
package property

// OriginValue reads the value prop has on t right now through mechanism m.
// Transform, css and attribute reads return strings; object reads return the
// field value unchanged, or float64(0) when the field is absent or nil.
func OriginValue(host StyleSource, t *Target, prop string, m Mechanism) any {
	switch m {
	case MechanismTransform:
		return GetTransformValue(t, prop)
	case MechanismCSS:
		if !t.IsElement() {
			return "0"
		}
		return GetCSSValue(host, t.el, prop)
	case MechanismAttribute:
		if !t.IsElement() {
			return ""
		}
		v, _ := t.el.Attr(prop)
		return v
	}
	if v, ok := getField(t, prop); ok && v != nil {
		return v
	}
	return float64(0)
}
