package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/internal/presentation/graph"
)

func newGraphCmd(a *app) *cobra.Command {
	var highlight []string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the layer stack as a Mermaid diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			var overlay *graph.Overlay
			if len(highlight) > 0 {
				overlay = &graph.Overlay{Highlight: highlight}
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(model.Geometry, overlay))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "Cells to highlight")
	return cmd
}
