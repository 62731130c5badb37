// internal/browser/dom/document.go
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Format selects the document backend.
type Format int

const (
	// FormatAuto sniffs the input: documents whose first element is <svg> are
	// read as XML, everything else as HTML.
	FormatAuto Format = iota
	FormatHTML
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatSVG:
		return "svg"
	default:
		return "auto"
	}
}

// ParseFormat maps a configuration string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "html":
		return FormatHTML, nil
	case "svg", "xml":
		return FormatSVG, nil
	}
	return FormatAuto, fmt.Errorf("unknown document format %q (want auto, html or svg)", s)
}

// Document is a parsed host document. It hands out one Element value per
// node; a Document must only be used from one goroutine at a time.
type Document struct {
	format  Format
	htmlDoc *html.Node
	xmlDoc  *etree.Document

	htmlCache map[*html.Node]*htmlElement
	svgCache  map[*etree.Element]*svgElement
}

// Parse reads a document in the given format.
func Parse(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if format == FormatAuto {
		format = sniffFormat(data)
	}

	doc := &Document{format: format}
	switch format {
	case FormatSVG:
		x := etree.NewDocument()
		if err := x.ReadFromBytes(data); err != nil {
			return nil, fmt.Errorf("failed to parse SVG document: %w", err)
		}
		if x.Root() == nil {
			return nil, fmt.Errorf("failed to parse SVG document: no root element")
		}
		doc.xmlDoc = x
		doc.svgCache = make(map[*etree.Element]*svgElement)
	default:
		n, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML document: %w", err)
		}
		doc.htmlDoc = n
		doc.htmlCache = make(map[*html.Node]*htmlElement)
	}
	return doc, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string, format Format) (*Document, error) {
	return Parse(strings.NewReader(s), format)
}

// sniffFormat skips the prolog (XML declaration, comments, doctype) and
// looks at the first tag name.
func sniffFormat(data []byte) Format {
	s := string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	for {
		s = strings.TrimLeft(s, " \t\r\n\f")
		switch {
		case strings.HasPrefix(s, "<?"):
			end := strings.Index(s, "?>")
			if end < 0 {
				return FormatHTML
			}
			s = s[end+2:]
		case strings.HasPrefix(s, "<!--"):
			end := strings.Index(s, "-->")
			if end < 0 {
				return FormatHTML
			}
			s = s[end+3:]
		case strings.HasPrefix(s, "<!"):
			end := strings.IndexByte(s, '>')
			if end < 0 {
				return FormatHTML
			}
			s = s[end+1:]
		case strings.HasPrefix(s, "<"):
			name := s[1:]
			if i := strings.IndexAny(name, " \t\r\n/>"); i >= 0 {
				name = name[:i]
			}
			if strings.EqualFold(name, "svg") || strings.HasSuffix(strings.ToLower(name), ":svg") {
				return FormatSVG
			}
			return FormatHTML
		default:
			return FormatHTML
		}
	}
}

// Format reports the backend the document was parsed with.
func (d *Document) Format() Format { return d.format }

// Root returns the document element (<html> or the outermost SVG element).
func (d *Document) Root() Element {
	if d.xmlDoc != nil {
		return d.wrapSVG(d.xmlDoc.Root())
	}
	for c := d.htmlDoc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrapHTML(c)
		}
	}
	return nil
}

// Elements lists every element in document order.
func (d *Document) Elements() []Element {
	var out []Element
	Walk(d.Root(), func(el Element) bool {
		out = append(out, el)
		return true
	})
	return out
}

// StyleSheetTexts returns the text of every <style> element in document order.
func (d *Document) StyleSheetTexts() []string {
	var out []string
	for _, el := range d.Elements() {
		if strings.EqualFold(el.TagName(), "style") {
			out = append(out, el.Text())
		}
	}
	return out
}

// Render writes the document back out in its source format.
func (d *Document) Render(w io.Writer) error {
	if d.xmlDoc != nil {
		_, err := d.xmlDoc.WriteTo(w)
		return err
	}
	return html.Render(w, d.htmlDoc)
}

// XPath evaluates an XPath expression and returns matching elements in
// document order. HTML documents support full XPath 1.0 through htmlquery;
// SVG documents support the etree path subset.
func (d *Document) XPath(expr string) ([]Element, error) {
	if d.xmlDoc != nil {
		path, err := etree.CompilePath(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", expr, err)
		}
		found := d.xmlDoc.FindElementsPath(path)
		out := make([]Element, 0, len(found))
		for _, el := range found {
			out = append(out, d.wrapSVG(el))
		}
		return out, nil
	}

	nodes, err := htmlquery.QueryAll(d.htmlDoc, expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	var out []Element
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			out = append(out, d.wrapHTML(n))
		}
	}
	return out, nil
}

func (d *Document) wrapHTML(n *html.Node) Element {
	if n == nil {
		return nil
	}
	if el, ok := d.htmlCache[n]; ok {
		return el
	}
	el := &htmlElement{doc: d, node: n}
	d.htmlCache[n] = el
	return el
}

func (d *Document) wrapSVG(e *etree.Element) Element {
	if e == nil {
		return nil
	}
	if el, ok := d.svgCache[e]; ok {
		return el
	}
	el := &svgElement{doc: d, el: e}
	d.svgCache[e] = el
	return el
}
