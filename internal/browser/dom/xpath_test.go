package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/axi/internal/browser/dom"
)

const testHTML = `
	<html>
	<body>
		<div id="header">
			<h1>Welcome</h1>
		</div>
		<div class="content">
			<p>P1</p><p>P2</p>
			<ul>
				<li>Item 1</li>
				<!-- comment -->
				<li>Item 2</li>
				<li id="special">Item 3</li>
			</ul>
		</div>
		<div class="content"><p>P3</p>
			<svg><circle r="5"/><circle r="6"/></svg>
		</div>
	</body>
	</html>
	`

func TestUniqueXPathHTML(t *testing.T) {
	doc, err := dom.ParseString(testHTML, dom.FormatHTML)
	require.NoError(t, err)

	tests := []struct {
		name          string
		targetXPath   string
		expectedXPath string
	}{
		{"Body", "//body", "/html[1]/body[1]"},
		{"Element with ID", "//div[@id='header']", `//*[@id='header']`},
		{"Child of ID element", "//h1", `//*[@id='header']/h1[1]`},
		{"Specific index", "(//p)[2]", "/html[1]/body[1]/div[2]/p[2]"},
		{"Ambiguous classes", "(//div[@class='content'])[2]/p", "/html[1]/body[1]/div[3]/p[1]"},
		{"List item skipping comments", "//ul/li[2]", "/html[1]/body[1]/div[2]/ul[1]/li[2]"},
		{"List item with ID", "//li[@id='special']", `//*[@id='special']`},
		{"Foreign SVG content", "(//circle)[2]", "/html[1]/body[1]/div[3]/svg[1]/circle[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := doc.XPath(tt.targetXPath)
			require.NoError(t, err)
			require.NotEmpty(t, found, "target not found with %s", tt.targetXPath)
			target := found[0]

			generated := dom.UniqueXPath(target)
			assert.Equal(t, tt.expectedXPath, generated)

			// The generated expression must select the original element.
			verify, err := doc.XPath(generated)
			require.NoError(t, err)
			require.Len(t, verify, 1)
			assert.Same(t, target, verify[0])
		})
	}
}

func TestUniqueXPathSVG(t *testing.T) {
	doc, err := dom.ParseString(`<svg xmlns="http://www.w3.org/2000/svg">
		<g id="layer"><rect/><circle/><circle/></g>
		<g><path d="M0 0"/><path d="M1 1"/></g>
	</svg>`, dom.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, dom.FormatSVG, doc.Format())

	found, err := doc.XPath("//g[2]/path[2]")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "/svg[1]/g[2]/path[2]", dom.UniqueXPath(found[0]))

	circles, err := doc.XPath("//circle")
	require.NoError(t, err)
	require.Len(t, circles, 2)
	xp := dom.UniqueXPath(circles[1])
	assert.Equal(t, `//*[@id='layer']/circle[2]`, xp)

	verify, err := doc.XPath(xp)
	require.NoError(t, err)
	require.Len(t, verify, 1)
	assert.Same(t, circles[1], verify[0])
}

func TestXPathInvalidExpression(t *testing.T) {
	doc, err := dom.ParseString(testHTML, dom.FormatHTML)
	require.NoError(t, err)
	_, err = doc.XPath("//div[")
	assert.Error(t, err)
}
