package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/internal/services"
)

type downCache struct{}

func (downCache) Ping(ctx context.Context) error {
	return errors.New("connection failed")
}

func (downCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return nil
}

func (downCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (downCache) Close() error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name             string
		cache            services.Cache
		narrator         func() services.LLMService
		expectedHealth   string
		expectedCache    string
		expectedNarrator string
	}{
		{
			name:             "all healthy",
			cache:            services.NewMemoryCache(4, time.Minute),
			narrator:         func() services.LLMService { return services.NewMockLLM() },
			expectedHealth:   "healthy",
			expectedCache:    "healthy",
			expectedNarrator: "healthy",
		},
		{
			name:  "unhealthy cache",
			cache: downCache{},
			narrator: func() services.LLMService {
				return services.NewMockLLM()
			},
			expectedHealth:   "degraded",
			expectedCache:    "unhealthy",
			expectedNarrator: "healthy",
		},
		{
			name:  "narrator offline",
			cache: services.NewMemoryCache(4, time.Minute),
			narrator: func() services.LLMService {
				m := services.NewMockLLM()
				m.SetGenerateError(errors.New("connection refused"))
				return m
			},
			expectedHealth:   "degraded",
			expectedCache:    "healthy",
			expectedNarrator: "unhealthy",
		},
		{
			name:             "nothing configured",
			narrator:         func() services.LLMService { return nil },
			expectedHealth:   "healthy",
			expectedCache:    "disabled",
			expectedNarrator: "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(":0", tt.narrator(), tt.cache, testLogger())

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedHealth {
				t.Errorf("status = %q, want %q", resp.Status, tt.expectedHealth)
			}
			if resp.Components["cache"] != tt.expectedCache {
				t.Errorf("cache = %q, want %q", resp.Components["cache"], tt.expectedCache)
			}
			if resp.Components["narrator"] != tt.expectedNarrator {
				t.Errorf("narrator = %q, want %q", resp.Components["narrator"], tt.expectedNarrator)
			}
			if resp.Service != "adventure-engine" {
				t.Errorf("service = %q", resp.Service)
			}
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	metrics.CommandsTotal.WithLabelValues("look", metrics.OutcomeOK).Inc()
	srv := NewServer(":0", nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), metrics.MetricNameCommandsTotal) {
		t.Errorf("metrics output missing %s", metrics.MetricNameCommandsTotal)
	}
}

func TestServer_HealthRejectsPost(t *testing.T) {
	srv := NewServer(":0", nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
