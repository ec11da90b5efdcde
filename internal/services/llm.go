package services

import (
	"context"
)

// GenerateRequest is a single text-generation call.
type GenerateRequest struct {
	Prompt      string
	MaxTokens   int     // hint, not a hard limit
	Temperature float64 // sampling temperature
}

// LLMService defines the interface for the narrative text generator.
// Implementations return an error when the service is unavailable, times out
// or answers with a non-success status; callers decide what to show instead.
type LLMService interface {
	// Generate returns generated text for the request.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// IsAvailable reports whether the service answers at all.
	IsAvailable(ctx context.Context) bool
}
