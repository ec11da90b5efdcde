package services

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache implements Cache with an in-process expirable LRU.
// Per-entry expirations are not supported; every entry lives for the TTL the
// cache was created with.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache holding at most size entries for ttl each.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.lru.Add(key, value)
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := c.lru.Get(key)
	if !ok {
		return "", nil
	}
	return value, nil
}

// Len returns the number of live entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}
