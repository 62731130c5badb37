// internal/anim/transform/transform.go
package transform

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Functions is the set of transform functions that animate through the
// shared transform style, in the order they are usually documented.
var Functions = []string{
	"translateX", "translateY", "translateZ",
	"rotate", "rotateX", "rotateY", "rotateZ",
	"scale", "scaleX", "scaleY", "scaleZ",
	"skew", "skewX", "skewY",
	"perspective", "matrix", "matrix3d",
}

var functionSet = func() map[string]bool {
	m := make(map[string]bool, len(Functions))
	for _, fn := range Functions {
		m[fn] = true
	}
	return m
}()

// IsFunction reports whether name is a recognized transform function.
// Matching is case-sensitive, like style property names.
func IsFunction(name string) bool {
	return functionSet[name]
}

// Default returns the value a transform function has before anything sets
// it: "1" for the scale family, "0px" for translations and perspective,
// "0deg" for rotations and skews and "0" for anything else.
func Default(fn string) string {
	switch {
	case strings.Contains(fn, "scale"):
		return "1"
	case strings.Contains(fn, "translate"), fn == "perspective":
		return "0px"
	case strings.Contains(fn, "rotate"), strings.Contains(fn, "skew"):
		return "0deg"
	}
	return "0"
}

// Map is an ordered mapping from transform function name to its raw
// argument string. Overwriting a function keeps its original position.
// The zero value is an empty map ready for use.
type Map struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, string]()}
}

// Parse extracts every name(args) occurrence from a transform string, left
// to right. Arguments run to the first closing parenthesis. A function that
// appears twice keeps its first position and its last value.
func Parse(s string) *Map {
	m := NewMap()
	i := 0
	for i < len(s) {
		if !isWordChar(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isWordChar(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != '(' {
			i = j
			continue
		}
		end := strings.IndexByte(s[j+1:], ')')
		if end < 0 {
			break
		}
		m.Set(s[i:j], s[j+1:j+1+end])
		i = j + 1 + end + 1
	}
	return m
}

func isWordChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Get returns the raw argument string of fn.
func (m *Map) Get(fn string) (string, bool) {
	if m.entries == nil {
		return "", false
	}
	return m.entries.Get(fn)
}

// Set inserts or overwrites fn.
func (m *Map) Set(fn, value string) {
	if m.entries == nil {
		m.entries = orderedmap.New[string, string]()
	}
	m.entries.Set(fn, value)
}

// Keys returns the function names in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for pair := m.oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of functions.
func (m *Map) Len() int {
	if m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	c := NewMap()
	for pair := m.oldest(); pair != nil; pair = pair.Next() {
		c.entries.Set(pair.Key, pair.Value)
	}
	return c
}

func (m *Map) oldest() *orderedmap.Pair[string, string] {
	if m.entries == nil {
		return nil
	}
	return m.entries.Oldest()
}

// String serializes the map as "fn(value)" entries joined by single spaces.
func (m *Map) String() string {
	var sb strings.Builder
	for pair := m.oldest(); pair != nil; pair = pair.Next() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pair.Key)
		sb.WriteByte('(')
		sb.WriteString(pair.Value)
		sb.WriteByte(')')
	}
	return sb.String()
}
