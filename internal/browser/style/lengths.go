// internal/browser/style/lengths.go
package style

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseLengthWithUnits converts a CSS length to pixels. Percentages resolve
// against referenceDimension; unparseable values and keywords yield 0.
func ParseLengthWithUnits(value string, parentFontSize, rootFontSize, referenceDimension, viewportWidth, viewportHeight float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "auto" || value == "normal" {
		return 0.0
	}

	num, n := parseNumberPrefix(value)
	if n == 0 {
		return 0.0
	}

	switch strings.ToLower(value[n:]) {
	case "", "px":
		return num
	case "%":
		return referenceDimension * (num / 100.0)
	case "rem":
		return num * rootFontSize
	case "em":
		return num * parentFontSize
	case "vw":
		return viewportWidth * (num / 100.0)
	case "vh":
		return viewportHeight * (num / 100.0)
	case "vmin":
		return min(viewportWidth, viewportHeight) * (num / 100.0)
	case "vmax":
		return max(viewportWidth, viewportHeight) * (num / 100.0)
	case "pt":
		return num * 96.0 / 72.0
	case "pc":
		return num * 16.0
	case "in":
		return num * 96.0
	case "cm":
		return num * 96.0 / 2.54
	case "mm":
		return num * 96.0 / 25.4
	}
	return 0.0
}

// ParseAbsoluteLength converts a length that needs no context (px, pt, in...).
func ParseAbsoluteLength(value string) float64 {
	return ParseLengthWithUnits(value, 0, 0, 0, 0, 0)
}

// parseNumberPrefix scans the leading CSS number of s and reports how many
// bytes it used.
func parseNumberPrefix(s string) (float64, int) {
	return strconv.ParseFloat([]byte(s))
}
