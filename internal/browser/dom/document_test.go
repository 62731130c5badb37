package dom_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/parser"
)

const animHTML = `<!DOCTYPE html>
<html>
<head><style>.box { opacity: 0.5; }</style></head>
<body>
	<div id="box" class="box big" style="transform: translateX(10px)">hello</div>
	<svg id="stage" viewBox="0 0 100 100">
		<style>circle { fill: red; }</style>
		<circle id="dot" cx="5" cy="5" r="5"/>
		<path id="track" d="M0 0 L30 40"/>
		<use xlink:href="#dot"/>
	</svg>
</body>
</html>`

func mustParse(t *testing.T, src string, f dom.Format) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(src, f)
	require.NoError(t, err)
	return doc
}

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

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]dom.Format{"": dom.FormatAuto, "auto": dom.FormatAuto, "HTML": dom.FormatHTML, "svg": dom.FormatSVG, "xml": dom.FormatSVG} {
		got, err := dom.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := dom.ParseFormat("pdf")
	assert.Error(t, err)
	assert.Equal(t, "svg", dom.FormatSVG.String())
}

func TestFormatSniffing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want dom.Format
	}{
		{"HTML doctype", animHTML, dom.FormatHTML},
		{"Bare SVG", `<svg xmlns="http://www.w3.org/2000/svg"><circle r="1"/></svg>`, dom.FormatSVG},
		{"XML prolog", "<?xml version=\"1.0\"?>\n<!-- drawn by hand -->\n<!DOCTYPE svg>\n<svg/>", dom.FormatSVG},
		{"Prefixed root", `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"/>`, dom.FormatSVG},
		{"Fragment", `<div>hi</div>`, dom.FormatHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.src, dom.FormatAuto).Format())
		})
	}
}

func TestParseInvalidSVG(t *testing.T) {
	_, err := dom.ParseString(`<svg><circle></svg>`, dom.FormatSVG)
	assert.Error(t, err)
}

func TestHTMLElementBasics(t *testing.T) {
	doc := mustParse(t, animHTML, dom.FormatAuto)

	box := byID(t, doc, "box")
	assert.Equal(t, "div", box.TagName())
	assert.False(t, box.IsSVG())
	assert.True(t, dom.HasClass(box, "big"))
	assert.False(t, dom.HasClass(box, "bi"))
	assert.Equal(t, "hello", box.Text())
	assert.Equal(t, "body", box.Parent().TagName())

	dot := byID(t, doc, "dot")
	assert.True(t, dot.IsSVG())
	assert.Equal(t, "style", dot.PrevElementSibling().TagName())
	assert.Same(t, byID(t, doc, "stage"), dot.Parent())

	use := doc.Elements()[len(doc.Elements())-1]
	href, ok := use.Attr("xlink:href")
	require.True(t, ok)
	assert.Equal(t, "#dot", href)

	assert.Nil(t, doc.Root().Parent())
	assert.Equal(t, []string{".box { opacity: 0.5; }", "circle { fill: red; }"}, doc.StyleSheetTexts())
}

func TestAttributeMutation(t *testing.T) {
	for _, f := range []dom.Format{dom.FormatHTML, dom.FormatSVG} {
		t.Run(f.String(), func(t *testing.T) {
			doc := mustParse(t, `<svg><circle id="c" r="5"/></svg>`, f)
			c := byID(t, doc, "c")

			c.SetAttr("r", "10")
			c.SetAttr("r", "10")
			c.SetAttr("fill", "blue")
			v, _ := c.Attr("r")
			assert.Equal(t, "10", v)

			want := []dom.Attribute{{Name: "id", Value: "c"}, {Name: "r", Value: "10"}, {Name: "fill", Value: "blue"}}
			if diff := cmp.Diff(want, c.Attrs()); diff != "" {
				t.Errorf("attrs mismatch (-want +got):\n%s", diff)
			}

			c.RemoveAttr("fill")
			_, ok := c.Attr("fill")
			assert.False(t, ok)
		})
	}
}

func TestInlineStyle(t *testing.T) {
	doc := mustParse(t, animHTML, dom.FormatHTML)
	box := byID(t, doc, "box")
	st := box.Style()

	assert.Equal(t, "translateX(10px)", st.Get("transform"))
	assert.False(t, st.Has("opacity"))

	st.Set("backgroundColor", "rgba(0, 0, 0, 1)")
	st.Set("transform", "translateX(20px) scale(2)")
	raw, _ := box.Attr("style")
	assert.Equal(t, "transform: translateX(20px) scale(2); background-color: rgba(0, 0, 0, 1);", raw)
	assert.Equal(t, "rgba(0, 0, 0, 1)", st.Get("background-color"))

	st.Set("transform", "")
	assert.False(t, st.Has("transform"))
	assert.Equal(t, []parser.Declaration{{Property: "background-color", Value: "rgba(0, 0, 0, 1)"}}, st.Declarations())

	st.Remove("backgroundColor")
	_, ok := box.Attr("style")
	assert.False(t, ok, "empty style attribute should be removed")
}

func TestFieldsAreStablePerElement(t *testing.T) {
	doc := mustParse(t, animHTML, dom.FormatHTML)
	box := byID(t, doc, "box")

	_, ok := box.Field("scrollTop")
	assert.False(t, ok)
	box.SetField("scrollTop", 120.0)

	again := byID(t, doc, "box")
	v, ok := again.Field("scrollTop")
	require.True(t, ok)
	assert.Equal(t, 120.0, v)
}

func TestRenderRoundTrip(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg"><circle id="c" r="5"/></svg>`, dom.FormatAuto)
	byID(t, doc, "c").Style().Set("opacity", "0.25")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `style="opacity: 0.25;"`)

	again := mustParse(t, buf.String(), dom.FormatAuto)
	assert.Equal(t, "0.25", byID(t, again, "c").Style().Get("opacity"))
}

func TestPathMeasurer(t *testing.T) {
	doc := mustParse(t, animHTML, dom.FormatHTML)
	m := dom.PathMeasurer{}

	l, ok := m.TotalLength(byID(t, doc, "track"))
	require.True(t, ok)
	assert.InDelta(t, 50.0, l, 1e-9)

	_, ok = m.TotalLength(byID(t, doc, "dot"))
	assert.False(t, ok, "only <path> is measured natively")

	bad := mustParse(t, `<svg><path id="p" d="Q"/></svg>`, dom.FormatSVG)
	_, ok = m.TotalLength(byID(t, bad, "p"))
	assert.False(t, ok)

	arc := mustParse(t, `<svg><path id="p" d="M0 0 A5 5 0 0 1 10 0"/></svg>`, dom.FormatSVG)
	l, ok = dom.PathMeasurer{Segments: 256}.TotalLength(byID(t, arc, "p"))
	require.True(t, ok)
	assert.InDelta(t, 5*math.Pi, l, 1e-2)
}

func TestWalkPrunes(t *testing.T) {
	doc := mustParse(t, animHTML, dom.FormatHTML)
	var tags []string
	dom.Walk(doc.Root(), func(el dom.Element) bool {
		tags = append(tags, el.TagName())
		return el.TagName() != "svg"
	})
	assert.Equal(t, "html head style body div svg", strings.Join(tags, " "))
}
