package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/pkg/adapters/manifest"
	"github.com/aretw0/blanket/pkg/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Check the case, or a model manifest, for consistency",
		Long: `Without arguments, assembles the configured case and runs every model check.
With a path to a model manifest, loads it and checks the stored model instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				model, err := manifest.Load(args[0])
				if err != nil {
					return err
				}
				if err := validation.Model(model); err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Model %q is valid! ✅\n", model.Name)
				return nil
			}

			model, err := a.build(cmd.Context())
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Case %q is valid! ✅\n", model.Name)
			return nil
		},
	}
}
