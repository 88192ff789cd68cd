// Package server exposes the workspace over a JSON HTTP API. Every read
// request performs a full re-aggregation of the workspace; there is no
// in-process cache to invalidate.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/workspace"
)

// Server serves the dashboard API for one workspace.
type Server struct {
	ws  *workspace.Workspace
	log *zap.Logger
}

// New creates a Server. A nil logger is replaced with a no-op logger.
func New(ws *workspace.Workspace, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{ws: ws, log: log}
}

// Handler returns the routed HTTP handler with access logging attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", s.handleData)
	mux.HandleFunc("PATCH /api/tasks", s.handleTaskPatch)
	return s.withAccessLog(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dashboard listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// writeJSON marshals v with the given status. Encoding failures at this point
// can only be programming errors, so they are logged and the connection is
// left to die.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
