package transform

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type entry struct{ Fn, Value string }

func entries(m *Map) []entry {
	var out []entry
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out = append(out, entry{k, v})
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entry
	}{
		{"Empty", "", nil},
		{"None keyword", "none", nil},
		{"Two functions in order", "translateX(10px) rotate(45deg)", []entry{{"translateX", "10px"}, {"rotate", "45deg"}}},
		{"No spaces", "scale(2)skewX(5deg)", []entry{{"scale", "2"}, {"skewX", "5deg"}}},
		{"Arguments keep commas", "matrix(1, 0, 0, 1, 10, 20)", []entry{{"matrix", "1, 0, 0, 1, 10, 20"}}},
		{"Duplicate keeps first position", "translateX(1px) scale(2) translateX(3px)", []entry{{"translateX", "3px"}, {"scale", "2"}}},
		{"Digits in name", "translate3d(1px, 2px, 3px)", []entry{{"translate3d", "1px, 2px, 3px"}}},
		{"Empty argument", "rotate()", []entry{{"rotate", ""}}},
		{"Unterminated", "rotate(45deg) scale(2", []entry{{"rotate", "45deg"}}},
		{"Nested parentheses stop at first close", "translateX(calc(1px)) scale(2)", []entry{{"translateX", "calc(1px"}, {"scale", "2"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, entries(Parse(tt.input))); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSetPreservesOrderAndAppends(t *testing.T) {
	m := Parse("translateX(10px) rotate(45deg)")
	m.Set("scale", "2")
	assert.Equal(t, "translateX(10px) rotate(45deg) scale(2)", m.String())

	m.Set("translateX", "20px")
	assert.Equal(t, "translateX(20px) rotate(45deg) scale(2)", m.String())
	assert.Equal(t, 3, m.Len())
}

func TestKeysFollowFirstInsertion(t *testing.T) {
	m := NewMap()
	for _, fn := range []string{"skewY", "scale", "translateX", "scale", "rotate", "skewY"} {
		m.Set(fn, fn)
	}
	assert.Equal(t, []string{"skewY", "scale", "translateX", "rotate"}, m.Keys())
	assert.Equal(t, 4, m.Len())
}

func TestZeroValueMap(t *testing.T) {
	var m Map
	assert.Equal(t, "", m.String())
	_, ok := m.Get("scale")
	assert.False(t, ok)
	m.Set("scale", "1.5")
	assert.Equal(t, "scale(1.5)", m.String())
}

func TestCloneIsIndependent(t *testing.T) {
	m := Parse("rotate(1deg)")
	c := m.Clone()
	c.Set("rotate", "2deg")
	c.Set("scale", "3")
	assert.Equal(t, "rotate(1deg)", m.String())
	assert.Equal(t, "rotate(2deg) scale(3)", c.String())
}

func TestDefault(t *testing.T) {
	tests := map[string]string{
		"scale":       "1",
		"scaleX":      "1",
		"scaleZ":      "1",
		"translateX":  "0px",
		"translateZ":  "0px",
		"perspective": "0px",
		"rotate":      "0deg",
		"rotateY":     "0deg",
		"skew":        "0deg",
		"skewY":       "0deg",
		"matrix":      "0",
		"matrix3d":    "0",
	}
	for fn, want := range tests {
		assert.Equal(t, want, Default(fn), fn)
	}
}

func TestIsFunction(t *testing.T) {
	for _, fn := range Functions {
		assert.True(t, IsFunction(fn), fn)
	}
	assert.False(t, IsFunction("transform"))
	assert.False(t, IsFunction("translatex"))
	assert.False(t, IsFunction("opacity"))
}

// Serializing a parsed map and parsing it again is a fixed point.
func FuzzParseSerialize(f *testing.F) {
	for _, seed := range []string{"translateX(10px) rotate(45deg)", "scale(2)skew(1deg, 2deg)", "a(b(c)) d()", "(((", ""} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		consumer := fuzz.NewConsumer(data)
		input, err := consumer.GetString()
		if err != nil {
			return
		}
		first := Parse(input).String()
		second := Parse(first).String()
		if first != second {
			t.Fatalf("serialization is not stable for %q: %q then %q", input, first, second)
		}
	})
}
