package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRadiiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "radii",
		Short: "Print the shell boundary radii of the case",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSURFACE\tMINOR RADIUS (cm)\tBOUNDARY")
			for _, s := range model.Geometry.Surfaces {
				fmt.Fprintf(tw, "%d\t%s\t%.6f\t%s\n", s.ID, s.Name, s.MinorRadius, s.Boundary)
			}
			return tw.Flush()
		},
	}
}
