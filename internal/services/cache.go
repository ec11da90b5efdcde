package services

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Ping tests the cache connection
	Ping(ctx context.Context) error

	// Set stores a value. A zero expiration uses the cache's default.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a value by key. Missing keys return "" and no error.
	Get(ctx context.Context, key string) (string, error)

	// Close closes the cache connection
	Close() error
}
