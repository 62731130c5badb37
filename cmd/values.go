// File: cmd/values.go
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/axi/internal/anim/color"
	"github.com/xkilldash9x/axi/internal/anim/units"
)

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <color>...",
		Short: "Normalize hex, hsl(a) and rgb(a) colors to rgba()",
		Long: `Converts every argument to the canonical "rgba(r, g, b, a)" form used for
interpolation. Invalid colors are reported and make the command fail after
the valid ones have been printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColor(cmd.OutOrStdout(), args)
		},
	}
}

func runColor(w io.Writer, args []string) error {
	var errs []error
	for _, arg := range args {
		rgba, err := color.ToRGBA(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(w, rgba)
	}
	return errors.Join(errs...)
}

func newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit <value>...",
		Short: "Print the unit suffix of numeric CSS values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runUnit(cmd.OutOrStdout(), args)
			return nil
		},
	}
}

func runUnit(w io.Writer, args []string) {
	for _, arg := range args {
		fmt.Fprintf(w, "%s\t%s\n", arg, units.Parse(arg))
	}
}
