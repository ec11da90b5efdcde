package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/adventure-engine/internal/services"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
	statusDisabled  = "disabled"
)

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components"`
}

type HealthHandler struct {
	cache    services.Cache
	narrator services.LLMService
	logger   *slog.Logger
}

func NewHealthHandler(cache services.Cache, narrator services.LLMService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		cache:    cache,
		narrator: narrator,
		logger:   logger,
	}
}

// ServeHTTP reports each component. A missing narrator or cache only
// degrades the game, since fights fall back to fixed text.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	h.logger.Debug("Health check requested",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 6*time.Second)
	defer cancel()

	components := map[string]string{
		"engine":   statusHealthy,
		"cache":    statusDisabled,
		"narrator": statusDisabled,
	}
	overallStatus := statusHealthy

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.Warn("Cache health check failed", "error", err)
			components["cache"] = statusUnhealthy
			overallStatus = statusDegraded
		} else {
			components["cache"] = statusHealthy
		}
	}

	if h.narrator != nil {
		if h.narrator.IsAvailable(ctx) {
			components["narrator"] = statusHealthy
		} else {
			h.logger.Warn("Narrator health check failed")
			components["narrator"] = statusUnhealthy
			overallStatus = statusDegraded
		}
	}

	response := HealthResponse{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Service:    "adventure-engine",
		Components: components,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding health response",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
