package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCache struct{}

func (failingCache) Ping(ctx context.Context) error {
	return errors.New("down")
}

func (failingCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return errors.New("down")
}

func (failingCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("down")
}

func (failingCache) Close() error {
	return nil
}

func TestCachedLLM_ServesRepeatsFromCache(t *testing.T) {
	mock := NewMockLLM()
	mock.SetResponse("The troll stumbles into the river.")
	cache := NewMemoryCache(8, time.Minute)
	llm := NewCachedLLM(mock, cache, time.Minute, testLogger())

	req := GenerateRequest{Prompt: "fight the troll", MaxTokens: 150, Temperature: 0.7}

	first, err := llm.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := llm.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, mock.Calls(), 1)
	assert.Equal(t, 1, cache.Len())

	_, err = llm.Generate(context.Background(), GenerateRequest{Prompt: "fight the sprite", MaxTokens: 150, Temperature: 0.7})
	require.NoError(t, err)
	assert.Len(t, mock.Calls(), 2)
}

func TestCachedLLM_DoesNotCacheErrors(t *testing.T) {
	mock := NewMockLLM()
	mock.SetGenerateError(errors.New("connection refused"))
	cache := NewMemoryCache(8, time.Minute)
	llm := NewCachedLLM(mock, cache, time.Minute, testLogger())

	_, err := llm.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
	assert.False(t, llm.IsAvailable(context.Background()))
}

func TestCachedLLM_CacheFailureFallsThrough(t *testing.T) {
	mock := NewMockLLM()
	llm := NewCachedLLM(mock, failingCache{}, time.Minute, testLogger())

	text, err := llm.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response", text)
}

func TestCachedLLM_WithRedis(t *testing.T) {
	redisCache, mr := setupTestRedis(t, func(addr string) string { return addr })
	mock := NewMockLLM()
	llm := NewCachedLLM(mock, redisCache, 5*time.Minute, testLogger())

	req := GenerateRequest{Prompt: "fight", MaxTokens: 10}
	_, err := llm.Generate(context.Background(), req)
	require.NoError(t, err)
	_, err = llm.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, mock.Calls(), 1)
	assert.Equal(t, 5*time.Minute, mr.TTL(narrationKey(req)))
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache(2, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Ping(ctx))
	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))
	require.NoError(t, cache.Set(ctx, "c", "3", 0))

	got, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got, "oldest entry should be evicted")

	got, _ = cache.Get(ctx, "c")
	assert.Equal(t, "3", got)

	require.NoError(t, cache.Close())
	assert.Equal(t, 0, cache.Len())
}
