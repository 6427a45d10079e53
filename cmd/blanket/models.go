package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/internal/presentation/tui"
)

func newModelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect stored model snapshots",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored case names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.requireStore()
				if err != nil {
					return err
				}
				defer store.Close()

				names, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Print the report of a stored model",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.requireStore()
				if err != nil {
					return err
				}
				defer store.Close()

				model, err := store.Load(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("failed to load %q: %w", args[0], err)
				}
				return tui.Write(cmd.OutOrStdout(), tui.Report(model))
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Delete a stored model",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.requireStore()
				if err != nil {
					return err
				}
				defer store.Close()

				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
