// internal/browser/style/properties.go
package style

import "github.com/xkilldash9x/axi/internal/browser/parser"

// initialValues lists every property the engine recognizes together with the
// value computed style reports when nothing sets it.
var initialValues = map[string]string{
	// Box model
	"display":             "inline",
	"position":            "static",
	"width":               "auto",
	"height":              "auto",
	"min-width":           "0px",
	"min-height":          "0px",
	"max-width":           "none",
	"max-height":          "none",
	"top":                 "auto",
	"right":               "auto",
	"bottom":              "auto",
	"left":                "auto",
	"margin-top":          "0px",
	"margin-right":        "0px",
	"margin-bottom":       "0px",
	"margin-left":         "0px",
	"padding-top":         "0px",
	"padding-right":       "0px",
	"padding-bottom":      "0px",
	"padding-left":        "0px",
	"border-top-width":    "0px",
	"border-right-width":  "0px",
	"border-bottom-width": "0px",
	"border-left-width":   "0px",
	"border-top-color":    "rgb(0, 0, 0)",
	"border-right-color":  "rgb(0, 0, 0)",
	"border-bottom-color": "rgb(0, 0, 0)",
	"border-left-color":   "rgb(0, 0, 0)",
	"border-radius":       "0px",
	"box-sizing":          "content-box",
	"overflow":            "visible",
	"z-index":             "auto",
	"flex-grow":           "0",
	"flex-shrink":         "1",
	"flex-basis":          "auto",

	// Visual
	"opacity":             "1",
	"visibility":          "visible",
	"color":               "rgb(0, 0, 0)",
	"background-color":    "rgba(0, 0, 0, 0)",
	"background-position": "0% 0%",
	"outline-color":       "rgb(0, 0, 0)",
	"outline-width":       "0px",
	"outline-offset":      "0px",
	"box-shadow":          "none",
	"filter":              "none",
	"clip-path":           "none",
	"cursor":              "auto",
	"transform":           "none",
	"transform-origin":    "50% 50% 0px",
	"perspective":         "none",

	// Text
	"font-family":     "serif",
	"font-size":       "16px",
	"font-style":      "normal",
	"font-weight":     "400",
	"line-height":     "normal",
	"letter-spacing":  "normal",
	"word-spacing":    "0px",
	"text-align":      "start",
	"text-indent":     "0px",
	"text-shadow":     "none",
	"text-decoration": "none",

	// SVG painting
	"fill":              "rgb(0, 0, 0)",
	"fill-opacity":      "1",
	"fill-rule":         "nonzero",
	"stroke":            "none",
	"stroke-width":      "1px",
	"stroke-opacity":    "1",
	"stroke-dasharray":  "none",
	"stroke-dashoffset": "0px",
	"stroke-linecap":    "butt",
	"stroke-linejoin":   "miter",
	"stroke-miterlimit": "4",
	"stop-color":        "rgb(0, 0, 0)",
	"stop-opacity":      "1",
	"text-anchor":       "start",
}

// presentationAttributes are SVG attributes that feed the cascade below author rules.
var presentationAttributes = map[string]bool{
	"fill": true, "fill-opacity": true, "fill-rule": true,
	"stroke": true, "stroke-width": true, "stroke-opacity": true,
	"stroke-dasharray": true, "stroke-dashoffset": true, "stroke-linecap": true,
	"stroke-linejoin": true, "stroke-miterlimit": true,
	"opacity": true, "color": true, "display": true, "visibility": true,
	"font-size": true, "font-family": true, "font-weight": true, "font-style": true,
	"letter-spacing": true, "word-spacing": true, "text-anchor": true,
	"stop-color": true, "stop-opacity": true,
	"filter": true, "clip-path": true, "cursor": true, "overflow": true,
}

// dimensionAttributes map onto the width and height properties for the
// elements listed below.
var dimensionAttributes = map[string]bool{"width": true, "height": true}

// SVG elements whose width and height attributes are geometry properties.
var svgDimensionElements = map[string]bool{
	"svg": true, "rect": true, "image": true, "foreignobject": true, "use": true,
	"pattern": true, "mask": true, "filter": true,
}

// HTML elements whose width and height attributes are dimension hints.
var htmlDimensionElements = map[string]bool{
	"img": true, "canvas": true, "video": true, "iframe": true,
	"embed": true, "object": true, "input": true,
}

var inheritedProperties = map[parser.Property]bool{
	"color": true, "cursor": true, "visibility": true,
	"font-family": true, "font-size": true, "font-style": true, "font-weight": true,
	"line-height": true, "letter-spacing": true, "word-spacing": true,
	"text-align": true, "text-indent": true, "text-shadow": true, "text-anchor": true,
	"fill": true, "fill-opacity": true, "fill-rule": true,
	"stroke": true, "stroke-width": true, "stroke-opacity": true,
	"stroke-dasharray": true, "stroke-dashoffset": true, "stroke-linecap": true,
	"stroke-linejoin": true, "stroke-miterlimit": true,
}

// IsKnownProperty reports whether prop (camel-cased or hyphenated) is a style
// property this engine can compute. Custom properties ("--x") are never known.
func IsKnownProperty(prop string) bool {
	_, ok := initialValues[parser.CSSName(prop)]
	return ok
}

// InitialValue returns the initial computed value, or "" for unknown properties.
func InitialValue(prop string) string {
	return initialValues[parser.CSSName(prop)]
}
