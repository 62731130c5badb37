// internal/anim/color/color.go
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/xkilldash9x/axi/internal/anim/units"
)

// ErrInvalidFormat is matched by every InvalidFormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid color format")

// InvalidFormatError is returned when a string matches none of the accepted
// color grammars.
type InvalidFormatError struct {
	Input string
}

// Error implements the error interface by formatting the message on the fly.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid color format %q: expected hex (#RGB, #RRGGBB), hsl(h, s%%, l%%), hsla(h, s%%, l%%, a), rgb(r, g, b) or rgba(r, g, b, a)", e.Input)
}

// Is makes errors.Is(err, ErrInvalidFormat) hold.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewInvalidFormatError creates a new InvalidFormatError.
func NewInvalidFormatError(input string) *InvalidFormatError {
	return &InvalidFormatError{Input: input}
}

// Color is the canonical form every grammar normalizes to. Channels are not
// rounded so hsl conversions stay value-preserving.
type Color struct {
	R, G, B float64 // 0..255
	A       float64 // 0..1
}

// String renders the canonical "rgba(r, g, b, a)" form.
func (c Color) String() string {
	var sb strings.Builder
	sb.Grow(24)
	sb.WriteString("rgba(")
	sb.WriteString(formatChannel(c.R))
	sb.WriteString(", ")
	sb.WriteString(formatChannel(c.G))
	sb.WriteString(", ")
	sb.WriteString(formatChannel(c.B))
	sb.WriteString(", ")
	sb.WriteString(formatChannel(c.A))
	sb.WriteByte(')')
	return sb.String()
}

// formatChannel rounds to six decimals so conversions that land a hair off
// an integer render the same text as the equivalent hex color.
func formatChannel(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ToRGBA converts a hex, hsl(a) or rgb(a) color into "rgba(r, g, b, a)".
// rgb(a) sources always come back with alpha 1: an rgba alpha is not
// preserved.
func ToRGBA(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// IsColor reports whether s looks like one of the accepted grammars: a full
// hex color or a string starting with "hsl" or "rgb". It does not validate
// the function arguments; Parse does.
func IsColor(s string) bool {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return true
	}
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "hsl") || strings.HasPrefix(lower, "rgb")
}

// Parse reads a color in any accepted grammar.
func Parse(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if isHex(trimmed) {
		return parseHex(trimmed), nil
	}

	name, args, ok := splitFunction(trimmed)
	if !ok {
		return Color{}, NewInvalidFormatError(s)
	}
	var (
		c   Color
		err error
	)
	switch name {
	case "hsl", "hsla":
		c, err = parseHSL(args)
	case "rgb", "rgba":
		c, err = parseRGB(args)
	default:
		err = errInvalidArgs
	}
	if err != nil {
		return Color{}, NewInvalidFormatError(s)
	}
	return c, nil
}

var errInvalidArgs = errors.New("invalid color arguments")

func isHex(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if hexDigit(s[i]) < 0 {
			return false
		}
	}
	return true
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// parseHex expects a string already validated by isHex. Shorthand digits are doubled.
func parseHex(s string) Color {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	channel := func(i int) float64 {
		return float64(hexDigit(h[i])<<4 | hexDigit(h[i+1]))
	}
	return Color{R: channel(0), G: channel(2), B: channel(4), A: 1}
}

// splitFunction splits "name(a, b, c)" into the lowercased name and trimmed arguments.
func splitFunction(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.ToLower(strings.TrimSpace(s[:open]))
	inner := s[open+1 : len(s)-1]
	if strings.ContainsAny(inner, "()") {
		return "", nil, false
	}
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return name, args, true
}

func parseHSL(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, errInvalidArgs
	}
	h, unit, ok := units.Split(args[0])
	if !ok {
		return Color{}, errInvalidArgs
	}
	switch unit {
	case "", "deg":
	case "turn":
		h *= 360
	case "rad":
		h *= 180 / math.Pi
	default:
		return Color{}, errInvalidArgs
	}
	sat, ok := percentage(args[1])
	if !ok {
		return Color{}, errInvalidArgs
	}
	light, ok := percentage(args[2])
	if !ok {
		return Color{}, errInvalidArgs
	}
	alpha := 1.0
	if len(args) == 4 {
		if alpha, ok = alphaValue(args[3]); !ok {
			return Color{}, errInvalidArgs
		}
	}

	// Hue wraps into [0, 360); saturation and lightness clamp to [0, 1].
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	rgb := colorful.Hsl(h, clamp01(sat), clamp01(light))
	return Color{R: rgb.R * 255, G: rgb.G * 255, B: rgb.B * 255, A: alpha}, nil
}

// parseRGB passes the channels through unchanged and narrows alpha to 1.
func parseRGB(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, errInvalidArgs
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, unit, ok := units.Split(args[i])
		if !ok || unit != "" {
			return Color{}, errInvalidArgs
		}
		ch[i] = v
	}
	if len(args) == 4 {
		if _, ok := alphaValue(args[3]); !ok {
			return Color{}, errInvalidArgs
		}
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
}

func percentage(s string) (float64, bool) {
	v, unit, ok := units.Split(s)
	if !ok || unit != "%" {
		return 0, false
	}
	return v / 100, true
}

func alphaValue(s string) (float64, bool) {
	v, unit, ok := units.Split(s)
	if !ok {
		return 0, false
	}
	switch unit {
	case "":
	case "%":
		v /= 100
	default:
		return 0, false
	}
	return clamp01(v), true
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Lerp interpolates every channel linearly; t is not clamped.
func Lerp(a, b Color, t float64) Color {
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
