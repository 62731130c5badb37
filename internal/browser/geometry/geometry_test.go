package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistUsesBothAxes(t *testing.T) {
	// A vertical delta computed from the x coordinates would give 3 here.
	assert.Equal(t, 5.0, Point{X: 0, Y: 0}.Dist(Point{X: 3, Y: 4}))
	assert.Equal(t, 4.0, Point{X: 2, Y: 1}.Dist(Point{X: 2, Y: 5}))
	assert.Equal(t, 0.0, Point{X: 7, Y: -2}.Dist(Point{X: 7, Y: -2}))
}

func TestPolylineLength(t *testing.T) {
	tri := []Point{{0, 0}, {4, 0}, {4, 3}}
	assert.Equal(t, 7.0, PolylineLength(tri, false))
	assert.Equal(t, 12.0, PolylineLength(tri, true))
	assert.Equal(t, 0.0, PolylineLength(tri[:1], true))
	assert.Equal(t, 0.0, PolylineLength(nil, false))
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Point
		wantErr  bool
	}{
		{"Commas and spaces", "0,0 4,0 4,3", []Point{{0, 0}, {4, 0}, {4, 3}}, false},
		{"Whitespace only", "0 0\n10 -5.5", []Point{{0, 0}, {10, -5.5}}, false},
		{"Exponent", "1e1,2E0", []Point{{10, 2}}, false},
		{"Compact negatives", "1-2", []Point{{1, -2}}, false},
		{"Empty", "  ", []Point{}, false},
		{"Odd count", "0,0 4", nil, true},
		{"Garbage", "0,0 x,1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoints(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePathStraightSegments(t *testing.T) {
	tests := []struct {
		name     string
		d        string
		expected float64
	}{
		{"Empty", "", 0},
		{"Line", "M0 0 L3 4", 5},
		{"Implicit lineto after moveto", "M0 0 3 4", 5},
		{"Relative", "m10 10 l3 4 l-3 -4", 10},
		{"Horizontal and vertical", "M0 0 H10 V10 h-10 v-10", 40},
		{"Closed triangle", "M0,0 L4,0 L4,3 Z", 12},
		{"Two subpaths", "M0 0 L1 0 M5 5 L5 7", 3},
		{"Move only", "M5 5", 0},
		{"Drawing after close", "M0 0 L2 0 Z L0 3", 7},
		{"Zero radius arc is a line", "M0 0 A0 5 0 0 1 3 4", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(tt.d, 0)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, p.Length(), 1e-9)
		})
	}
}

func TestParsePathCurves(t *testing.T) {
	t.Run("Semicircle arc", func(t *testing.T) {
		p, err := ParsePath("M0 0 A5 5 0 0 1 10 0", 256)
		require.NoError(t, err)
		assert.InDelta(t, 5*math.Pi, p.Length(), 1e-2)
		last := p.Subpaths[0][len(p.Subpaths[0])-1]
		assert.InDelta(t, 10, last.X, 1e-9)
		assert.InDelta(t, 0, last.Y, 1e-9)
	})

	t.Run("Radii scaled up when too small", func(t *testing.T) {
		p, err := ParsePath("M0 0 A1 1 0 0 1 10 0", 256)
		require.NoError(t, err)
		assert.InDelta(t, 5*math.Pi, p.Length(), 1e-2)
	})

	t.Run("Full circle from two arcs", func(t *testing.T) {
		p, err := ParsePath("M-5 0 a5 5 0 1 0 10 0 a5 5 0 1 0 -10 0", 256)
		require.NoError(t, err)
		assert.InDelta(t, 10*math.Pi, p.Length(), 1e-2)
	})

	t.Run("Degenerate cubic is straight", func(t *testing.T) {
		p, err := ParsePath("M0 0 C1 0 2 0 3 0", 16)
		require.NoError(t, err)
		assert.InDelta(t, 3, p.Length(), 1e-9)
	})

	t.Run("Quadratic with smooth continuation", func(t *testing.T) {
		p, err := ParsePath("M0 0 Q5 10 10 0 T20 0", 512)
		require.NoError(t, err)
		q, err := ParsePath("M0 0 Q5 10 10 0", 512)
		require.NoError(t, err)
		// The reflected control point mirrors the first hump.
		assert.InDelta(t, 2*q.Length(), p.Length(), 1e-6)
	})

	t.Run("Smooth cubic", func(t *testing.T) {
		p, err := ParsePath("M0 0 C0 5 10 5 10 0 S20 -5 20 0", 512)
		require.NoError(t, err)
		c, err := ParsePath("M0 0 C0 5 10 5 10 0", 512)
		require.NoError(t, err)
		assert.InDelta(t, 2*c.Length(), p.Length(), 1e-6)
	})
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"L10 10",
		"M0 0 L10",
		"M0 0 X5 5",
		"M0 0 A5 5 0 2 1 10 0",
		"M0 0 L1 1 #",
	} {
		t.Run(d, func(t *testing.T) {
			_, err := ParsePath(d, 0)
			assert.Error(t, err)
		})
	}
}
