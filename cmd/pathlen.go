// File: cmd/pathlen.go
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/anim/motionpath"
	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/config"
	"github.com/xkilldash9x/axi/internal/observability"
)

func newPathLenCmd() *cobra.Command {
	var file, selector string

	pathLenCmd := &cobra.Command{
		Use:   "pathlen",
		Short: "Select a motion path node and print its total length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return runPathLen(cmd.OutOrStdout(), observability.GetLogger(), cfg, file, selector)
		},
	}

	pathLenCmd.Flags().StringVarP(&file, "file", "f", "", "document containing the path (required)")
	_ = pathLenCmd.MarkFlagRequired("file")
	pathLenCmd.Flags().StringVarP(&selector, "selector", "s", "", "CSS selector or XPath expression (required)")
	_ = pathLenCmd.MarkFlagRequired("selector")

	return pathLenCmd
}

func runPathLen(w io.Writer, logger *zap.Logger, cfg config.Interface, file, selector string) error {
	doc, err := loadDocument(file, cfg)
	if err != nil {
		return err
	}
	node, err := motionpath.Select(doc, selector)
	if err != nil {
		return err
	}

	calc := motionpath.NewCalculator(dom.PathMeasurer{Segments: cfg.Animation().PathSegments}, logger)
	length, err := calc.TotalLength(node)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", dom.UniqueXPath(node), node.TagName(), strconv.FormatFloat(length, 'f', -1, 64))
	return nil
}
