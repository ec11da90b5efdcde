package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

const narrationKeyPrefix = "narration:"

// CachedLLM serves repeated identical prompts from a cache. Cache failures
// are logged and never prevent a call to the underlying service.
type CachedLLM struct {
	next   LLMService
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

var _ LLMService = (*CachedLLM)(nil)

// NewCachedLLM wraps next with cache.
func NewCachedLLM(next LLMService, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedLLM {
	return &CachedLLM{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedLLM) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	key := narrationKey(req)

	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Narration cache read failed", "error", err)
	} else if cached != "" {
		c.logger.Debug("Narration cache hit", "key", key)
		return cached, nil
	}

	text, err := c.next.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	if text != "" {
		if err := c.cache.Set(ctx, key, text, c.ttl); err != nil {
			c.logger.Warn("Narration cache write failed", "error", err)
		}
	}
	return text, nil
}

func (c *CachedLLM) IsAvailable(ctx context.Context) bool {
	return c.next.IsAvailable(ctx)
}

// Cache returns the cache backing this service.
func (c *CachedLLM) Cache() Cache {
	return c.cache
}

func narrationKey(req GenerateRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%.2f|%s", req.MaxTokens, req.Temperature, req.Prompt)))
	return narrationKeyPrefix + hex.EncodeToString(sum[:])
}
