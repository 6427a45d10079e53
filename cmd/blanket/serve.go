package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/blanket/internal/config"
	"github.com/aretw0/blanket/internal/metrics"
	"github.com/aretw0/blanket/internal/presentation/tui"
	httpAdapter "github.com/aretw0/blanket/pkg/adapters/http"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assembled model over HTTP",
		Long: `Assembles the case and exposes it as a read-only JSON API. On SIGHUP the
configuration is reloaded, the case rebuilt and the diff pushed to /events subscribers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			m := metrics.New()
			asm, _, err := a.assembler(m)
			if err != nil {
				return err
			}
			model, err := asm.Build(cmd.Context(), a.cfg.Case)
			if err != nil {
				return err
			}

			server := httpAdapter.NewServer(model,
				httpAdapter.WithMetrics(m.Handler()),
				httpAdapter.WithLogger(a.logger),
			)
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			if tui.IsTerminal(cmd.OutOrStdout()) {
				tui.PrintBanner(cmd.OutOrStdout())
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("starting server", "addr", srv.Addr, "case", model.Name)
				serverErrors <- srv.ListenAndServe()
			}()

			reload := make(chan os.Signal, 1)
			signal.Notify(reload, syscall.SIGHUP)
			defer signal.Stop(reload)

			for {
				select {
				case err := <-serverErrors:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return fmt.Errorf("server error: %w", err)

				case <-reload:
					a.rebuild(cmd.Context(), server, m)

				case <-cmd.Context().Done():
					a.logger.Info("shutting down server")

					// Give outstanding requests a deadline for completion.
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()

					if err := srv.Shutdown(ctx); err != nil {
						a.logger.Warn("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
						return srv.Close()
					}
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	return cmd
}

// rebuild reloads the configuration and swaps the served model. Failures
// keep the previous model.
func (a *app) rebuild(ctx context.Context, server *httpAdapter.Server, m *metrics.Metrics) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.logger.Error("reload failed", "error", err)
		return
	}
	a.cfg.Case = cfg.Case
	a.cfg.Groups = cfg.Groups

	asm, _, err := a.assembler(m)
	if err != nil {
		a.logger.Error("rebuild failed", "error", err)
		return
	}
	model, err := asm.Build(ctx, a.cfg.Case)
	if err != nil {
		a.logger.Error("rebuild failed", "error", err)
		return
	}
	if diff := server.Update(model); diff == nil {
		a.logger.Info("rebuild produced no changes", "case", model.Name)
	}
}
