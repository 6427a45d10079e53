package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/pkg/tally"
)

func newTalliesCmd(a *app) *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:   "tallies",
		Short: "List the tally names in request order",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range model.Tallies {
				if shell != "" && !tally.CoversShell(model, t, shell) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Only list tallies of this cell")
	return cmd
}
