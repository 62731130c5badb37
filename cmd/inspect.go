// File: cmd/inspect.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/axi/internal/anim/color"
	"github.com/xkilldash9x/axi/internal/anim/property"
	"github.com/xkilldash9x/axi/internal/anim/units"
	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/config"
	"github.com/xkilldash9x/axi/internal/observability"
)

type propertyReport struct {
	Name      string `json:"name"`
	Mechanism string `json:"mechanism"`
	Origin    any    `json:"origin"`
	Unit      string `json:"unit,omitempty"`
	RGBA      string `json:"rgba,omitempty"`
}

type elementReport struct {
	XPath      string           `json:"xpath"`
	Tag        string           `json:"tag"`
	Kind       string           `json:"kind"`
	Properties []propertyReport `json:"properties"`
}

type documentReport struct {
	File     string          `json:"file"`
	Format   string          `json:"format"`
	Elements []elementReport `json:"elements"`
}

func newInspectCmd() *cobra.Command {
	var (
		files    []string
		selector string
		props    []string
	)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Classify properties of matched elements and read their origin values",
		Long: `For every element matching the selector, reports which mechanism (transform,
css, attribute or object) governs each property and the value it has now.
Several documents are inspected concurrently; output is a JSON array in the
order the files were given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), cmd.OutOrStdout(), observability.GetLogger(), cfg, files, selector, props)
		},
	}

	inspectCmd.Flags().StringArrayVarP(&files, "file", "f", nil, "document to inspect (repeatable)")
	_ = inspectCmd.MarkFlagRequired("file")
	inspectCmd.Flags().StringVarP(&selector, "selector", "s", "", "CSS selector or XPath expression (default: every element)")
	inspectCmd.Flags().StringSliceVarP(&props, "props", "p", nil, "properties to inspect (comma separated)")
	_ = inspectCmd.MarkFlagRequired("props")

	return inspectCmd
}

// runInspect processes each file on its own goroutine. Documents are never
// shared between goroutines.
func runInspect(ctx context.Context, w io.Writer, logger *zap.Logger, cfg config.Interface, files []string, selector string, props []string) error {
	if len(files) == 0 {
		return errors.New("at least one --file is required")
	}

	reports := make([]documentReport, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := inspectDocument(file, selector, props, cfg, logger)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize inspection to JSON: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

func inspectDocument(file, selector string, props []string, cfg config.Interface, logger *zap.Logger) (*documentReport, error) {
	doc, err := loadDocument(file, cfg)
	if err != nil {
		return nil, err
	}
	elements, err := queryElements(doc, selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	resolver := property.NewResolver(newStyleEngine(doc, cfg, logger), logger)
	report := &documentReport{File: file, Format: doc.Format().String(), Elements: []elementReport{}}
	for _, el := range elements {
		report.Elements = append(report.Elements, inspectElement(resolver, el, props))
	}
	logger.Debug("Inspected document.", zap.String("file", file), zap.Int("elements", len(elements)))
	return report, nil
}

func inspectElement(resolver *property.Resolver, el dom.Element, props []string) elementReport {
	target, err := property.NewTarget(el)
	if err != nil {
		// Elements are always valid targets.
		panic(err)
	}
	er := elementReport{
		XPath:      dom.UniqueXPath(el),
		Tag:        el.TagName(),
		Kind:       target.Kind().String(),
		Properties: make([]propertyReport, 0, len(props)),
	}
	for _, prop := range props {
		m := resolver.Classify(target, prop)
		origin := resolver.Origin(target, prop, m)
		pr := propertyReport{
			Name:      prop,
			Mechanism: m.String(),
			Origin:    origin,
			Unit:      units.Parse(origin),
		}
		if s, ok := origin.(string); ok && color.IsColor(s) {
			if rgba, err := color.ToRGBA(s); err == nil {
				pr.RGBA = rgba
			}
		}
		er.Properties = append(er.Properties, pr)
	}
	return er
}
