package services

import (
	"context"
	"sync"
)

// MockLLM is a mock implementation of LLMService for testing
type MockLLM struct {
	GenerateFunc    func(ctx context.Context, req GenerateRequest) (string, error)
	IsAvailableFunc func(ctx context.Context) bool

	// Track calls for testing
	GenerateCalls    []GenerateRequest
	IsAvailableCalls int

	mu sync.Mutex // protects all fields above
}

var _ LLMService = (*MockLLM)(nil)

// NewMockLLM creates a new mock LLM service
func NewMockLLM() *MockLLM {
	return &MockLLM{
		GenerateCalls: make([]GenerateRequest, 0),
	}
}

// Generate mocks text generation
func (m *MockLLM) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateCalls = append(m.GenerateCalls, req)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}

	// Default behavior - canned narration
	return "Mock response", nil
}

// IsAvailable mocks the availability check
func (m *MockLLM) IsAvailable(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.IsAvailableCalls++

	if m.IsAvailableFunc != nil {
		return m.IsAvailableFunc(ctx)
	}
	return true
}

// SetResponse sets up the mock to return text from Generate
func (m *MockLLM) SetResponse(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateFunc = func(ctx context.Context, req GenerateRequest) (string, error) {
		return text, nil
	}
}

// SetGenerateError sets up the mock to return an error on Generate
func (m *MockLLM) SetGenerateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateFunc = func(ctx context.Context, req GenerateRequest) (string, error) {
		return "", err
	}
	m.IsAvailableFunc = func(ctx context.Context) bool {
		return false
	}
}

// Calls returns a copy of the recorded Generate requests
func (m *MockLLM) Calls() []GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]GenerateRequest, len(m.GenerateCalls))
	copy(calls, m.GenerateCalls)
	return calls
}

// Reset clears all call tracking
func (m *MockLLM) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateCalls = make([]GenerateRequest, 0)
	m.IsAvailableCalls = 0
}
