package motionpath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/axi/internal/anim/motionpath"
	"github.com/xkilldash9x/axi/internal/browser/dom"
)

const shapes = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<g id="group"/>
	<circle id="c" cx="50" cy="50" r="5"/>
	<rect id="r" width="3" height="4"/>
	<line id="l" x1="0" y1="0" x2="3" y2="4"/>
	<line id="vertical" x1="2" y1="1" x2="2" y2="9"/>
	<polyline id="pl" points="0,0 4,0 4,3"/>
	<polygon id="pg" points="0,0 4,0 4,3"/>
	<polygon id="odd" points="0,0 4"/>
	<circle id="bad" r="five"/>
	<path id="p" d="M0 0 H10 V10"/>
	<ellipse id="e" rx="3" ry="2"/>
</svg>`

func byID(t *testing.T, doc *dom.Document, id string) dom.Element {
	t.Helper()
	for _, el := range doc.Elements() {
		if dom.ID(el) == id {
			return el
		}
	}
	t.Fatalf("no element with id %q", id)
	return nil
}

func parseShapes(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(shapes, dom.FormatSVG)
	require.NoError(t, err)
	return doc
}

func TestTotalLength(t *testing.T) {
	doc := parseShapes(t)
	calc := motionpath.NewCalculator(nil, zaptest.NewLogger(t))

	tests := []struct {
		id   string
		want float64
	}{
		{"c", 10 * math.Pi},
		{"r", 14},
		{"l", 5},
		{"vertical", 8},
		{"pl", 7},
		{"pg", 12},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := calc.TotalLength(byID(t, doc, tt.id))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestTotalLengthErrors(t *testing.T) {
	doc := parseShapes(t)
	calc := motionpath.NewCalculator(nil, nil)

	_, err := calc.TotalLength(byID(t, doc, "e"))
	assert.ErrorIs(t, err, motionpath.ErrUnsupportedShape)

	_, err = calc.TotalLength(byID(t, doc, "p"))
	assert.ErrorIs(t, err, motionpath.ErrUnsupportedShape, "path data needs a native measurer")

	_, err = calc.TotalLength(nil)
	assert.ErrorIs(t, err, motionpath.ErrUnsupportedShape)

	_, err = calc.TotalLength(byID(t, doc, "odd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon")

	_, err = calc.TotalLength(byID(t, doc, "bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `r="five"`)
}

type fixedMeasurer struct {
	length float64
	calls  int
}

func (m *fixedMeasurer) TotalLength(el dom.Element) (float64, bool) {
	m.calls++
	return m.length, el.TagName() == "circle"
}

func TestTotalLengthPrefersNative(t *testing.T) {
	doc := parseShapes(t)
	native := &fixedMeasurer{length: 99}
	calc := motionpath.NewCalculator(native, nil)

	got, err := calc.TotalLength(byID(t, doc, "c"))
	require.NoError(t, err)
	assert.Equal(t, 99.0, got)

	got, err = calc.TotalLength(byID(t, doc, "r"))
	require.NoError(t, err)
	assert.Equal(t, 14.0, got, "falls back when the native primitive declines")
	assert.Equal(t, 2, native.calls)
}

func TestTotalLengthPathMeasurer(t *testing.T) {
	doc := parseShapes(t)
	calc := motionpath.NewCalculator(dom.PathMeasurer{}, nil)

	got, err := calc.TotalLength(byID(t, doc, "p"))
	require.NoError(t, err)
	assert.InDelta(t, 20, got, 1e-9)

	got, err = calc.TotalLength(byID(t, doc, "c"))
	require.NoError(t, err)
	assert.InDelta(t, 10*math.Pi, got, 1e-6)
}

const mixed = `<!DOCTYPE html>
<html><body>
	<div class="target"></div>
	<svg><circle class="target" r="5"/><rect class="target" width="1" height="1"/></svg>
	<p id="para"></p>
</body></html>`

func TestSelect(t *testing.T) {
	doc, err := dom.ParseString(mixed, dom.FormatHTML)
	require.NoError(t, err)

	el, err := motionpath.Select(doc, ".target")
	require.NoError(t, err)
	assert.Equal(t, "circle", el.TagName())

	el, err = motionpath.Select(doc, "//*[@class='target']")
	require.NoError(t, err)
	assert.Equal(t, "circle", el.TagName())

	el, err = motionpath.Select(doc, "svg rect")
	require.NoError(t, err)
	assert.Equal(t, "rect", el.TagName())

	direct, err := motionpath.Select(doc, el)
	require.NoError(t, err)
	assert.Same(t, el, direct)
}

func TestSelectErrors(t *testing.T) {
	doc, err := dom.ParseString(mixed, dom.FormatHTML)
	require.NoError(t, err)

	var div dom.Element
	for _, e := range doc.Elements() {
		if e.TagName() == "div" {
			div = e
		}
	}
	require.NotNil(t, div)

	_, err = motionpath.Select(doc, div)
	require.ErrorIs(t, err, motionpath.ErrNoValidMotionPathNode)
	var nv *motionpath.NoValidNodeError
	require.True(t, errors.As(err, &nv))
	assert.Equal(t, "div", nv.Tag)

	_, err = motionpath.Select(doc, "#para")
	assert.ErrorIs(t, err, motionpath.ErrNoValidMotionPathNode)

	_, err = motionpath.Select(doc, "//[")
	assert.ErrorIs(t, err, motionpath.ErrNoValidMotionPathNode)
	require.True(t, errors.As(err, &nv))
	assert.Error(t, nv.Unwrap())

	_, err = motionpath.Select(doc, 42)
	assert.ErrorIs(t, err, motionpath.ErrNoValidMotionPathNode)
}

func TestIsMotionPathNode(t *testing.T) {
	doc := parseShapes(t)
	assert.True(t, motionpath.IsMotionPathNode(byID(t, doc, "p")))
	assert.True(t, motionpath.IsMotionPathNode(byID(t, doc, "pg")))
	assert.False(t, motionpath.IsMotionPathNode(byID(t, doc, "e")))
	assert.False(t, motionpath.IsMotionPathNode(byID(t, doc, "group")))
	assert.False(t, motionpath.IsMotionPathNode(nil))
}
