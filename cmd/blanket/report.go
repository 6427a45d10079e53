package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/internal/presentation/tui"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarise the assembled case",
		Long:  `Prints a markdown summary of radii, materials, settings and tallies. Rendered when stdout is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Write(cmd.OutOrStdout(), tui.Report(model))
		},
	}
}
