// File: cmd/frames.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/anim/interp"
	"github.com/xkilldash9x/axi/internal/anim/property"
	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/config"
	"github.com/xkilldash9x/axi/internal/observability"
)

// framesOptions are the flags of the frames command.
type framesOptions struct {
	file     string
	selector string
	props    []string
	to       string
	ends     map[string]string
	frames   int
	outDir   string
}

func newFramesCmd() *cobra.Command {
	var opts framesOptions

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "Animate properties of matched elements and write every frame as a document",
		Long: `Binds one track per matched element and property, then interpolates each
track linearly from its origin value to --to (or its --end entry) and renders the document once
per frame into --out (frame-000.svg, frame-001.svg, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if opts.frames > 0 {
				cfg.SetAnimationFrames(opts.frames)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runFrames(cmd.Context(), cmd.OutOrStdout(), observability.GetLogger(), cfg, opts)
		},
	}

	framesCmd.Flags().StringVarP(&opts.file, "file", "f", "", "document to animate (required)")
	_ = framesCmd.MarkFlagRequired("file")
	framesCmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "CSS selector or XPath expression (required)")
	_ = framesCmd.MarkFlagRequired("selector")
	framesCmd.Flags().StringSliceVarP(&opts.props, "props", "p", nil, "properties to animate (required)")
	_ = framesCmd.MarkFlagRequired("props")
	framesCmd.Flags().StringVarP(&opts.to, "to", "t", "", "end value, a number with optional unit or a color (required)")
	_ = framesCmd.MarkFlagRequired("to")
	framesCmd.Flags().StringToStringVar(&opts.ends, "end", nil, "per-property end values, prop=value (overrides --to)")
	framesCmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "number of frames including both ends (overrides config/env)")
	framesCmd.Flags().StringVarP(&opts.outDir, "out", "o", "frames", "output directory")

	return framesCmd
}

func runFrames(ctx context.Context, w io.Writer, logger *zap.Logger, cfg config.Interface, opts framesOptions) error {
	doc, err := loadDocument(opts.file, cfg)
	if err != nil {
		return err
	}
	elements, err := queryElements(doc, opts.selector)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		return fmt.Errorf("selector %q matches no element", opts.selector)
	}

	ends := endValues(opts)
	session := property.NewSession(property.NewResolver(newStyleEngine(doc, cfg, logger), logger))
	for _, el := range elements {
		target, err := property.NewTarget(el)
		if err != nil {
			return err
		}
		for _, prop := range opts.props {
			track := session.Bind(target, prop)
			// Both ends are checked before anything is written.
			if _, err := interp.Between(track.Origin, ends[prop], 0); err != nil {
				return fmt.Errorf("%s %s: %w", dom.UniqueXPath(el), prop, err)
			}
		}
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	n := cfg.Animation().Frames
	ext := doc.Format().String()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress := interp.Clamp(float64(i)/float64(n-1), 0, 1)
		for _, track := range session.Tracks() {
			v, err := interp.Between(track.Origin, ends[track.Property], progress)
			if err != nil {
				return err
			}
			track.Apply(v)
		}

		path := filepath.Join(opts.outDir, fmt.Sprintf("frame-%03d.%s", i, ext))
		if err := writeFrame(doc, path); err != nil {
			return err
		}
		fmt.Fprintln(w, path)
	}

	logger.Info("Frames written.",
		zap.Int("frames", n),
		zap.Int("tracks", len(session.Tracks())),
		zap.String("dir", opts.outDir),
	)
	return nil
}

// endValues gives every animated property the --to value unless an --end
// entry names it. --end entries for properties not animated are ignored.
func endValues(opts framesOptions) map[string]any {
	base := make(map[string]any, len(opts.props))
	for _, prop := range opts.props {
		base[prop] = opts.to
	}
	overrides := make(map[string]any, len(opts.ends))
	for prop, v := range opts.ends {
		overrides[prop] = v
	}
	return interp.MergeParams(base, overrides)
}

func writeFrame(doc *dom.Document, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return doc.Render(f)
}
