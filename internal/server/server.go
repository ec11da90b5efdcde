package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwebster45206/adventure-engine/internal/services"
)

// Server exposes health and Prometheus metrics for a running game.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the ops server. cache and narrator may be nil when the
// game runs without them.
func NewServer(addr string, narrator services.LLMService, cache services.Cache, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/health", NewHealthHandler(cache, narrator, logger))
	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves in the background. Listen errors other than a normal shutdown
// are logged; the game keeps running without its ops endpoint.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Ops server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Ops server failed", "error", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down ops server: %w", err)
	}
	return nil
}
