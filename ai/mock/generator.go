package mock

import (
	"context"

	"github.com/poiesic/hospitium/ai"
)

// MockGenerator is a test double for ai.ResponseGenerator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by GenerateResponse if set.
	// If nil, uses default canned behavior.
	GenerateFunc func(ctx context.Context, req ai.GenerationRequest) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default canned behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateResponse returns the injected function's reply, or a canned reply
// long enough to pass response acceptance checks.
func (m *MockGenerator) GenerateResponse(ctx context.Context, req ai.GenerationRequest) (string, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}

	return "I found some hospitals matching your request in our network.", nil
}

// CallCount returns the number of times GenerateResponse was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
