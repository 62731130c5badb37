// internal/anim/interp/interp.go
package interp

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/xkilldash9x/axi/internal/anim/color"
	"github.com/xkilldash9x/axi/internal/anim/units"
)

var (
	// ErrNotInterpolable is returned for values that are neither numeric nor colors.
	ErrNotInterpolable = errors.New("value is not interpolable")
	// ErrKindMismatch is returned when interpolating a number towards a color or back.
	ErrKindMismatch = errors.New("cannot interpolate between a number and a color")
)

// Kind tells numeric values from colors.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindColor
)

// Value is a decomposed animatable value: a magnitude with its unit, or a color.
type Value struct {
	Kind   Kind
	Number float64
	Unit   string
	Color  color.Color
}

// String renders the value the way it is written back to a target.
func (v Value) String() string {
	if v.Kind == KindColor {
		return v.Color.String()
	}
	return units.Format(v.Number, v.Unit)
}

// Decompose splits v into a Value. Go numbers are unitless; strings are
// either colors (hex, hsl(a), rgb(a)) or a number with an optional unit.
func Decompose(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		if color.IsColor(x) {
			c, err := color.Parse(x)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindColor, Color: c}, nil
		}
		n, unit, ok := units.Split(x)
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrNotInterpolable, x)
		}
		return Value{Kind: KindNumber, Number: n, Unit: unit}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return Value{Kind: KindNumber, Number: rv.Float()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{Kind: KindNumber, Number: float64(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{Kind: KindNumber, Number: float64(rv.Uint())}, nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrNotInterpolable, v)
}

// At interpolates linearly between from and to at progress p. Numbers carry
// the unit of to, or of from when to is unitless. Colors mix channel-wise.
// p is not clamped.
func At(from, to Value, p float64) (Value, error) {
	if from.Kind != to.Kind {
		return Value{}, ErrKindMismatch
	}
	if from.Kind == KindColor {
		return Value{Kind: KindColor, Color: color.Lerp(from.Color, to.Color, p)}, nil
	}
	unit := to.Unit
	if unit == "" {
		unit = from.Unit
	}
	return Value{
		Kind:   KindNumber,
		Number: from.Number + (to.Number-from.Number)*p,
		Unit:   unit,
	}, nil
}

// Between decomposes both ends and interpolates them.
func Between(from, to any, p float64) (string, error) {
	a, err := Decompose(from)
	if err != nil {
		return "", fmt.Errorf("from: %w", err)
	}
	b, err := Decompose(to)
	if err != nil {
		return "", fmt.Errorf("to: %w", err)
	}
	v, err := At(a, b, p)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// MergeParams returns a copy of base in which every key also present in
// overrides takes the override value. Keys unknown to base are ignored.
func MergeParams(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		if o, ok := overrides[k]; ok {
			v = o
		}
		out[k] = v
	}
	return out
}
