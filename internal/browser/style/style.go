// internal/browser/style/style.go
package style

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/parser"
)

// -- Constants and Configuration --

const (
	BaseFontSize      = 16.0 // Default root font size.
	DefaultLineHeight = 1.2  // Default multiplier for 'line-height: normal'.
)

// DefaultUserAgentCSS is a minimal stylesheet compatible with the current parser capabilities.
const DefaultUserAgentCSS = `
/* Basic Resets and Defaults */
div, p, h1, h2, h3, h4, h5, h6, body, html, ul, ol, li, form, header, footer, section, article, nav, main, figure {
    display: block;
    margin: 0;
    padding: 0;
}

head, style, script, title, defs, symbol, clipPath, mask, marker, linearGradient, radialGradient {
    display: none;
}

body {
    margin: 8px;
}

/* Typography (Simplified) */
h1 { font-size: 2em; margin: 0.67em 0; }
h2 { font-size: 1.5em; margin: 0.83em 0; }
p { margin: 1em 0; }

/* Lists */
ul, ol { padding-left: 40px; }
li { display: list-item; }

/* Links (using 'a' as pseudo-classes :link/:visited are unsupported) */
a {
    color: #0000EE;
    text-decoration: underline;
    cursor: pointer;
}

svg {
    overflow: hidden;
}
`

// -- Style Engine --

// Engine orchestrates the cascade and inheritance for one document. It holds
// no per-element caches; every read reflects the current attributes and
// inline style of the element and its ancestors.
type Engine struct {
	logger          *zap.Logger
	userAgentSheets []parser.StyleSheet
	authorSheets    []parser.StyleSheet
	viewportWidth   float64
	viewportHeight  float64
}

// NewEngine creates a styling engine with only the user agent sheet loaded.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := parser.NewParser(DefaultUserAgentCSS)
	uaSheet := p.Parse()

	return &Engine{
		logger:          logger.Named("style"),
		userAgentSheets: []parser.StyleSheet{uaSheet},
	}
}

// NewEngineForDocument creates an engine and loads every <style> element of
// the document as an author sheet, in document order.
func NewEngineForDocument(doc *dom.Document, logger *zap.Logger) *Engine {
	se := NewEngine(logger)
	for _, text := range doc.StyleSheetTexts() {
		sheet := parser.NewParser(text).Parse()
		se.AddAuthorSheet(sheet)
	}
	se.logger.Debug("Style engine initialized.", zap.Int("author_sheets", len(se.authorSheets)))
	return se
}

// AddAuthorSheet adds a stylesheet provided by the document author.
func (se *Engine) AddAuthorSheet(sheet parser.StyleSheet) {
	se.authorSheets = append(se.authorSheets, sheet)
}

// SetViewport sets the dimensions used for viewport-relative units.
func (se *Engine) SetViewport(width, height float64) {
	se.viewportWidth = width
	se.viewportHeight = height
}

// -- Cascade --

type StyleOrigin int

const (
	OriginUserAgent StyleOrigin = iota
	OriginPresentation
	OriginAuthor
	OriginInline
)

type DeclarationWithContext struct {
	Declaration parser.Declaration
	Specificity struct{ A, B, C int }
	Origin      StyleOrigin
	Order       int
}

// CalculateStyles returns the cascaded values declared for el itself:
// user agent rules, SVG presentation attributes, author rules and the inline
// style, ordered by origin, importance, specificity and source order.
func (se *Engine) CalculateStyles(el dom.Element) map[parser.Property]parser.Value {
	var declarations []DeclarationWithContext
	order := 0

	processSheets := func(sheets []parser.StyleSheet, origin StyleOrigin) {
		for _, sheet := range sheets {
			for _, rule := range sheet.Rules {
				for _, selectorGroup := range rule.SelectorGroups {
					if matchingComplexSelector, ok := matchGroup(el, selectorGroup); ok {
						a, b, c := matchingComplexSelector.CalculateSpecificity()
						for _, decl := range rule.Declarations {
							declarations = append(declarations, DeclarationWithContext{
								Declaration: decl,
								Specificity: struct{ A, B, C int }{a, b, c},
								Origin:      origin,
								Order:       order,
							})
							order++
						}
						break
					}
				}
			}
		}
	}

	processSheets(se.userAgentSheets, OriginUserAgent)

	for _, decl := range presentationalHints(el) {
		declarations = append(declarations, DeclarationWithContext{
			Declaration: decl,
			Origin:      OriginPresentation,
			Order:       order,
		})
		order++
	}

	processSheets(se.authorSheets, OriginAuthor)

	for _, decl := range el.Style().Declarations() {
		declarations = append(declarations, DeclarationWithContext{
			Declaration: decl,
			Specificity: struct{ A, B, C int }{1, 0, 0},
			Origin:      OriginInline,
			Order:       order,
		})
		order++
	}

	sort.SliceStable(declarations, func(i, j int) bool {
		d1, d2 := declarations[i], declarations[j]
		p1, p2 := calculateCascadePriority(d1), calculateCascadePriority(d2)
		if p1 != p2 {
			return p1 < p2
		}
		s1, s2 := d1.Specificity, d2.Specificity
		if s1.A != s2.A {
			return s1.A < s2.A
		}
		if s1.B != s2.B {
			return s1.B < s2.B
		}
		if s1.C != s2.C {
			return s1.C < s2.C
		}
		return d1.Order < d2.Order
	})

	styles := make(map[parser.Property]parser.Value)
	for _, declCtx := range declarations {
		styles[declCtx.Declaration.Property] = declCtx.Declaration.Value
		// A later longhand must win over an earlier shorthand and vice versa,
		// so shorthands are expanded in cascade order.
		expandShorthand(styles, declCtx.Declaration.Property)
	}
	return styles
}

// presentationalHints turns attributes that act as style into declarations:
// SVG presentation attributes, and width/height on elements that use them as
// dimensions. Unitless dimensions are read as pixels; values that are not
// lengths are ignored.
func presentationalHints(el dom.Element) []parser.Declaration {
	var hints []parser.Declaration
	svg := el.IsSVG()
	for _, attr := range el.Attrs() {
		value := strings.TrimSpace(attr.Value)
		switch {
		case svg && presentationAttributes[attr.Name]:
			hints = append(hints, parser.Declaration{Property: parser.Property(attr.Name), Value: parser.Value(value)})
		case dimensionAttributes[attr.Name] && usesDimensionAttributes(el):
			if length, ok := dimensionLength(value); ok {
				hints = append(hints, parser.Declaration{Property: parser.Property(attr.Name), Value: parser.Value(length)})
			}
		}
	}
	return hints
}

func usesDimensionAttributes(el dom.Element) bool {
	tag := strings.ToLower(el.TagName())
	if el.IsSVG() {
		return svgDimensionElements[tag]
	}
	return htmlDimensionElements[tag]
}

// dimensionLength normalizes "3" to "3px" and keeps "3em" or "50%".
func dimensionLength(value string) (string, bool) {
	num, n := parseNumberPrefix(value)
	if n == 0 || num < 0 {
		return "", false
	}
	unit := strings.ToLower(value[n:])
	switch unit {
	case "":
		return formatPx(num), true
	case "%", "px", "em", "rem", "ex", "ch", "pt", "pc", "in", "cm", "mm", "vw", "vh", "vmin", "vmax":
		return value, true
	}
	return "", false
}

func calculateCascadePriority(d DeclarationWithContext) int {
	isImportant := d.Declaration.Important
	switch d.Origin {
	case OriginUserAgent:
		if isImportant {
			return 7
		}
		return 1
	case OriginPresentation:
		return 2
	case OriginAuthor:
		if isImportant {
			return 5
		}
		return 3
	case OriginInline:
		if isImportant {
			return 6
		}
		return 4
	}
	return 0
}

var shorthands = map[parser.Property][4]parser.Property{
	"margin":       {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding":      {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"border-width": {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-color": {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
}

func expandShorthand(styles map[parser.Property]parser.Value, shorthand parser.Property) {
	sides, ok := shorthands[shorthand]
	if !ok {
		return
	}
	parts := splitTopLevel(string(styles[shorthand]))
	var v [4]string
	switch len(parts) {
	case 1:
		v = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		v = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		v = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		v = [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return
	}
	for i, side := range sides {
		styles[side] = parser.Value(v[i])
	}
}

// splitTopLevel splits on whitespace outside parentheses, so
// "rgb(0, 0, 0) red" yields two parts.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '(':
			depth++
		case ch == ')' && depth > 0:
			depth--
		case depth == 0 && (ch == ' ' || ch == '\t' || ch == '\n'):
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}

// -- Inheritance and computed values --

// ComputedStyle resolves the cascaded values of el against its ancestors:
// 'inherit' and inherited properties take the parent's computed value,
// 'initial' takes the property's initial value, and font-size and
// line-height are resolved to pixels.
func (se *Engine) ComputedStyle(el dom.Element) map[parser.Property]parser.Value {
	var parentStyles map[parser.Property]parser.Value
	if parent := el.Parent(); parent != nil {
		parentStyles = se.ComputedStyle(parent)
	}

	styles := se.CalculateStyles(el)
	for prop, val := range styles {
		switch strings.ToLower(string(val)) {
		case "inherit":
			if pv, ok := parentStyles[prop]; ok {
				styles[prop] = pv
			} else {
				delete(styles, prop)
			}
		case "initial":
			if iv := InitialValue(string(prop)); iv != "" {
				styles[prop] = parser.Value(iv)
			} else {
				delete(styles, prop)
			}
		}
	}

	for prop := range inheritedProperties {
		if _, exists := styles[prop]; !exists {
			if val, parentHas := parentStyles[prop]; parentHas {
				styles[prop] = val
			}
		}
	}

	se.resolveRelativeValues(styles, parentStyles)
	return styles
}

// ComputedValue returns the computed value of a recognized property for el,
// falling back to its initial value. Unrecognized properties yield "".
func (se *Engine) ComputedValue(el dom.Element, prop string) string {
	name := parser.CSSName(prop)
	if !IsKnownProperty(name) {
		return ""
	}
	if v, ok := se.ComputedStyle(el)[parser.Property(name)]; ok && v != "" {
		return string(v)
	}
	return InitialValue(name)
}

func (se *Engine) resolveRelativeValues(styles, parentStyles map[parser.Property]parser.Value) {
	parentFontSize := BaseFontSize
	if v, ok := parentStyles["font-size"]; ok {
		parentFontSize = ParseAbsoluteLength(string(v))
	}

	if fontSizeStr, ok := styles["font-size"]; ok {
		resolved := ParseLengthWithUnits(string(fontSizeStr), parentFontSize, BaseFontSize, parentFontSize, se.viewportWidth, se.viewportHeight)
		styles["font-size"] = parser.Value(formatPx(resolved))
	} else if parentStyles == nil {
		styles["font-size"] = parser.Value(formatPx(BaseFontSize))
	}

	currentFontSize := ParseAbsoluteLength(string(styles["font-size"]))
	if lineHeightStr, ok := styles["line-height"]; ok {
		if resolved, ok := se.resolveLineHeight(string(lineHeightStr), currentFontSize); ok {
			styles["line-height"] = parser.Value(formatPx(resolved))
		}
	}
}

// resolveLineHeight keeps 'normal' as a keyword, the way computed style reports it.
func (se *Engine) resolveLineHeight(value string, fontSize float64) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "normal" {
		return 0, false
	}
	if val, n := parseNumberPrefix(value); n == len(value) && n > 0 {
		return fontSize * val, true
	}
	return ParseLengthWithUnits(value, fontSize, BaseFontSize, fontSize, se.viewportWidth, se.viewportHeight), true
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
