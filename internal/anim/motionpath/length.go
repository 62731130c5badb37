// internal/anim/motionpath/length.go
package motionpath

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/anim/units"
	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/geometry"
)

// NativeMeasurer is a host-provided total-length primitive. ok is false when
// the host cannot measure el. dom.PathMeasurer implements it.
type NativeMeasurer interface {
	TotalLength(el dom.Element) (length float64, ok bool)
}

var _ NativeMeasurer = dom.PathMeasurer{}

// Calculator measures motion path nodes.
type Calculator struct {
	native NativeMeasurer
	logger *zap.Logger
}

// NewCalculator creates a calculator that defers to native when it can
// measure a node. native and logger may be nil.
func NewCalculator(native NativeMeasurer, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{native: native, logger: logger.Named("motionpath")}
}

// TotalLength returns the length of el. Shapes the native measurer cannot
// handle are computed from their geometry attributes; absent attributes count
// as 0. Anything that is not a circle, rect, line, polyline or polygon fails
// with ErrUnsupportedShape.
func (c *Calculator) TotalLength(el dom.Element) (float64, error) {
	if el == nil {
		return 0, fmt.Errorf("%w: nil element", ErrUnsupportedShape)
	}
	if c.native != nil {
		if l, ok := c.native.TotalLength(el); ok {
			c.logger.Debug("Measured with native primitive.", zap.String("tag", el.TagName()), zap.Float64("length", l))
			return l, nil
		}
	}

	switch el.TagName() {
	case "circle":
		r, err := number(el, "r")
		if err != nil {
			return 0, err
		}
		return 2 * math.Pi * r, nil
	case "rect":
		w, err := number(el, "width")
		if err != nil {
			return 0, err
		}
		h, err := number(el, "height")
		if err != nil {
			return 0, err
		}
		return 2 * (w + h), nil
	case "line":
		var v [4]float64
		for i, name := range [4]string{"x1", "y1", "x2", "y2"} {
			n, err := number(el, name)
			if err != nil {
				return 0, err
			}
			v[i] = n
		}
		return geometry.Point{X: v[0], Y: v[1]}.Dist(geometry.Point{X: v[2], Y: v[3]}), nil
	case "polyline", "polygon":
		raw, _ := el.Attr("points")
		pts, err := geometry.ParsePoints(raw)
		if err != nil {
			return 0, fmt.Errorf("<%s> points: %w", el.TagName(), err)
		}
		return geometry.PolylineLength(pts, el.TagName() == "polygon"), nil
	}

	c.logger.Debug("Cannot measure element.", zap.String("tag", el.TagName()))
	return 0, fmt.Errorf("%w: <%s>", ErrUnsupportedShape, el.TagName())
}

// number reads a unitless or px geometry attribute.
func number(el dom.Element, name string) (float64, error) {
	raw, ok := el.Attr(name)
	if !ok {
		return 0, nil
	}
	v, unit, ok := units.Split(raw)
	if !ok || (unit != "" && unit != "px") {
		return 0, fmt.Errorf("<%s> %s=%q: not a length", el.TagName(), name, raw)
	}
	return v, nil
}
