package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "adds v1 suffix", host: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "strips trailing slash first", host: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "leaves canonical host alone", host: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
		{name: "empty host untouched", host: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ChatHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.ChatHost)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	cfg = NewConfig(WithChatHost(""))
	assert.Error(t, cfg.Validate())

	cfg = NewConfig(WithChatModel(""))
	assert.Error(t, cfg.Validate())

	cfg = NewConfig(WithTemperature(3.5))
	assert.Error(t, cfg.Validate())

	cfg = NewConfig(WithMaxTokens(0))
	assert.Error(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithChatHost("http://llm.internal:8000"),
		WithChatModel("qwen2.5:3b"),
		WithTemperature(0.2),
		WithMaxTokens(256),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://llm.internal:8000/v1", cfg.ChatHost)
	assert.Equal(t, "qwen2.5:3b", cfg.ChatModel)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 256, cfg.MaxTokens)
}
