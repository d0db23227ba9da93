package ai

import "context"

// GenerationRequest carries one response-generation call to a model.
type GenerationRequest struct {
	// System is the system prompt framing the assistant's role.
	System string

	// Prompt is the fully assembled user prompt, including any conversation
	// context and search-result block.
	Prompt string
}

// ResponseGenerator produces a natural-language reply for a request.
type ResponseGenerator interface {
	// GenerateResponse returns the model's reply text.
	GenerateResponse(ctx context.Context, req GenerationRequest) (string, error)
}

// Transcriber converts spoken audio into text.
type Transcriber interface {
	// Transcribe returns the text heard in the audio payload.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer converts reply text into spoken audio.
type Synthesizer interface {
	// Synthesize returns an audio rendering of the text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Provider bundles the model services the assistant needs.
type Provider interface {
	// Generator returns the response generation service.
	Generator() ResponseGenerator

	// Close releases any resources held by the provider.
	Close() error
}
