package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/phanxgames/xtween/easing"
	"github.com/phanxgames/xtween/scenario"
	"github.com/spf13/cobra"
)

func newCurvesCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "curves [NAME...]",
		Short: "Sample easing curves",
		Long: `Prints each curve sampled at evenly spaced ratios. Without arguments every
registered curve is listed. Names accept the same forms as scenario files,
including cubic-bezier(x1, y1, x2, y2) and path(...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCurves(cmd.OutOrStdout(), args, samples)
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 5, "Samples per curve (at least 2)")
	return cmd
}

func writeCurves(w io.Writer, names []string, samples int) error {
	samples = max(samples, 2)
	if len(names) == 0 {
		names = easing.Names()
	}

	fns := make([]easing.Func, len(names))
	for i, name := range names {
		fn, err := scenario.ParseEasing(name)
		if err != nil {
			return err
		}
		fns[i] = fn
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "name")
	for i := range samples {
		fmt.Fprintf(tw, "\t%.2f", ratioAt(i, samples))
	}
	fmt.Fprintln(tw)
	for i, name := range names {
		fmt.Fprint(tw, name)
		for j := range samples {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(fns[i](ratioAt(j, samples)), 'f', 3, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func ratioAt(i, samples int) float64 {
	return float64(i) / float64(samples-1)
}
