package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/services"
)

func TestSetupNarrator(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("uncached by default", func(t *testing.T) {
		t.Setenv("NARRATION_CACHE", "")
		cfg := config.Load()

		narrator, cache := setupNarrator(cfg, log)
		assert.Nil(t, cache)
		_, ok := narrator.(*services.OllamaService)
		assert.True(t, ok, "expected the bare generator, got %T", narrator)
	})

	t.Run("memory cache on request", func(t *testing.T) {
		t.Setenv("NARRATION_CACHE", "memory")
		cfg := config.Load()

		narrator, cache := setupNarrator(cfg, log)
		require.NotNil(t, cache)
		defer func() {
			_ = cache.Close()
		}()
		_, ok := narrator.(*services.CachedLLM)
		assert.True(t, ok, "expected a cached generator, got %T", narrator)
	})
}
