package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/internal/metrics"
	"github.com/aretw0/blanket/pkg/domain"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		format   string
		out      string
		textfile string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the case and export the model",
		Long: `Assembles the configured case, writes it in the selected format and, when a
store backend is configured, saves a snapshot under the case name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if format == "" {
				format = a.cfg.Export.Format
			}
			if out == "" {
				out = a.cfg.Export.Dir
			}

			m := metrics.New()
			asm, reg, err := a.assembler(m)
			if err != nil {
				return err
			}
			exporter, err := a.exporter(format, out, reg)
			if err != nil {
				return err
			}

			model, buildErr := asm.BuildAndExport(ctx, a.cfg.Case, exporter)
			if textfile != "" {
				if err := m.WriteToTextfile(textfile); err != nil {
					a.logger.Warn("failed to write metrics textfile", "path", textfile, "error", err)
				}
			}
			if buildErr != nil {
				return buildErr
			}

			if err := a.snapshot(cmd, model); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s model %q to %s (%d cells, %d tallies)\n",
				format, model.Name, out, len(model.Geometry.Cells), len(model.Tallies))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: openmc or manifest (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&textfile, "metrics-textfile", "", "Write build metrics to this Prometheus textfile")
	return cmd
}

func (a *app) snapshot(cmd *cobra.Command, model *domain.Model) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	defer store.Close()

	if err := store.save(cmd.Context(), model); err != nil {
		return fmt.Errorf("failed to save model snapshot: %w", err)
	}
	a.logger.Info("saved model snapshot", "case", model.Name, "backend", a.cfg.Store.Backend)
	return nil
}
