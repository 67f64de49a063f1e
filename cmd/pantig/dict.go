package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDictCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dict",
		Short: "Print dictionary build statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dict := root.dictionary()
			report := dict.Warm()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "entries\t%d\n", dict.Len())
			fmt.Fprintf(tw, "curated\t%d\n", report.Curated)
			fmt.Fprintf(tw, "generated\t%d\n", report.Generated)
			fmt.Fprintf(tw, "duplicates\t%d\n", report.Duplicates)
			fmt.Fprintf(tw, "skipped\t%d\n", report.Skipped)
			fmt.Fprintf(tw, "failures\t%d\n", len(report.Failures))
			fmt.Fprintf(tw, "build time\t%s\n", report.Duration)
			return tw.Flush()
		},
	}
}
