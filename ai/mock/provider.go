package mock

import "github.com/poiesic/hospitium/ai"

// MockProvider is a test double for ai.Provider backed by a MockGenerator.
type MockProvider struct {
	generator *MockGenerator
}

// NewMockProvider creates a provider whose generator is a fresh MockGenerator.
func NewMockProvider() *MockProvider {
	return &MockProvider{generator: NewMockGenerator()}
}

// Generator returns the underlying mock generator.
func (p *MockProvider) Generator() ai.ResponseGenerator {
	return p.generator
}

// GetMockGenerator returns the concrete mock for test assertions.
func (p *MockProvider) GetMockGenerator() *MockGenerator {
	return p.generator
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
