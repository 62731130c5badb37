// internal/anim/units/units.go
package units

import (
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Known lists the recognized unit suffixes, longest first so that "vmin"
// is tried before "in" and "rem" before "em".
var Known = []string{
	"vmin", "vmax", "turn",
	"rem", "deg", "rad",
	"px", "pt", "em", "in", "cm", "mm", "ex", "ch", "pc", "vw", "vh",
	"%",
}

// Parse returns the unit suffix of a numeric CSS value such as "250px" or
// "1.5rem". Numbers, unitless numeric strings and non-string values (maps,
// structs, nil) yield "". The unit must directly follow a digit at the end
// of the string.
func Parse(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	for _, u := range Known {
		if len(s) > len(u) && strings.HasSuffix(s, u) {
			if c := s[len(s)-len(u)-1]; c >= '0' && c <= '9' {
				return u
			}
		}
	}
	return ""
}

// Split decomposes a complete numeric value ("-1.5rem", "30", "1e3px") into
// its magnitude and unit. ok is false unless the whole trimmed string is a
// number followed by an optional recognized unit.
func Split(s string) (float64, string, bool) {
	s = strings.TrimSpace(s)
	num, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 || math.IsInf(num, 0) || math.IsNaN(num) {
		return 0, "", false
	}
	rest := s[n:]
	if rest == "" {
		return num, "", true
	}
	for _, u := range Known {
		if rest == u {
			return num, u, true
		}
	}
	return 0, "", false
}

// Format renders a magnitude with its unit using the shortest representation.
func Format(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
