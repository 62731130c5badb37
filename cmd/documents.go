// File: cmd/documents.go
package cmd

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/style"
	"github.com/xkilldash9x/axi/internal/config"
)

// loadDocument parses the file at path in the configured document format.
func loadDocument(path string, cfg config.Interface) (*dom.Document, error) {
	format, err := dom.ParseFormat(cfg.Document().Format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// newStyleEngine loads the document's stylesheets and the configured viewport.
func newStyleEngine(doc *dom.Document, cfg config.Interface, logger *zap.Logger) *style.Engine {
	engine := style.NewEngineForDocument(doc, logger)
	engine.SetViewport(cfg.Document().ViewportWidth, cfg.Document().ViewportHeight)
	return engine
}

// queryElements evaluates a CSS selector, or XPath when the query starts
// with "/" or "(". An empty query selects every element.
func queryElements(doc *dom.Document, query string) ([]dom.Element, error) {
	query = strings.TrimSpace(query)
	switch {
	case query == "":
		return doc.Elements(), nil
	case strings.HasPrefix(query, "/"), strings.HasPrefix(query, "("):
		return doc.XPath(query)
	}
	return style.QuerySelectorAll(doc, query)
}
