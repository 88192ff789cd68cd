package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/server"
	"github.com/7D-codes/lifeos-core/internal/watch"
)

var (
	serveAddr  string
	serveWatch bool
)

// serveCmd runs the dashboard API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
	Long: `Serves the dashboard JSON API:

  GET   /api/data   full workspace snapshot with derived views
  PATCH /api/tasks  update one task's status or priority

Every GET re-reads the workspace from disk; there is no cache to go stale.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := openWorkspace()
	if err := ws.EnsureLayout(); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	if serveWatch {
		w, err := watch.New(ws, logger)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		go func() {
			for ev := range w.Events() {
				logger.Info("workspace changed",
					zap.String("path", ev.Path),
					zap.String("op", ev.Op))
			}
		}()
	}

	return server.New(ws, logger).Run(ctx, addr)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "log workspace changes while serving")
}
