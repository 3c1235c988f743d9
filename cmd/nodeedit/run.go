package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/metrics"
	"github.com/dd0wney/peacock/pkg/term"
	"github.com/dd0wney/peacock/pkg/ui"
)

func runCmd(s *session) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.graph()
			if err != nil {
				return err
			}

			reg := metrics.NewRegistry()
			m := ui.NewManager(s.cfg.Factory(), ui.WithLogger(s.logger), ui.WithRecorder(reg))
			if err := m.Rebuild(g); err != nil {
				return err
			}
			reg.UpdateGraphMetrics(g)

			addr := metricsAddr
			if addr == "" && s.cfg.Metrics.Enabled {
				addr = s.cfg.Metrics.Addr
			}
			if addr != "" {
				stop := serveMetrics(addr, reg, s.logger)
				defer stop()
			}

			arrange, err := s.cfg.Arrangement()
			if err != nil {
				return err
			}
			app := term.New(m, g, term.Options{
				CellWidth:  s.cfg.Terminal.CellWidth,
				CellHeight: s.cfg.Terminal.CellHeight,
				Tick:       s.cfg.Editor.TickInterval,
				Logger:     s.logger,
				Observer:   reg,
				Layout:     arrange,
			})
			p := tea.NewProgram(app,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			final := app.Graph()
			s.logger.Info("editor closed",
				logging.Int("nodes", len(final.Nodes)),
				logging.Int("connections", len(final.Connections)))
			return err
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

// serveMetrics exposes reg on addr/metrics until the returned func is called.
func serveMetrics(addr string, reg *metrics.Registry, logger logging.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", logging.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", logging.Error(err))
		}
	}
}
