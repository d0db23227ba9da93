package hospitium

import (
	"github.com/poiesic/hospitium/agent"
	"github.com/poiesic/hospitium/ai"
	"github.com/poiesic/hospitium/intent"
)

type config struct {
	cacheDir    string
	poolSize    int
	aiConfig    *ai.Config
	provider    ai.Provider
	lexicon     *intent.Lexicon
	policy      agent.RetryPolicy
	transcriber ai.Transcriber
	synthesizer ai.Synthesizer
}

func defaultConfig() config {
	return config{
		aiConfig: ai.DefaultConfig(),
		policy:   agent.DefaultRetryPolicy(),
	}
}

// Option configures an Assistant.
type Option func(*config)

// WithCacheDir enables the on-disk index snapshot cache at the given
// directory. Without it, the index is rebuilt on every startup.
func WithCacheDir(dir string) Option {
	return func(c *config) {
		c.cacheDir = dir
	}
}

// WithPoolSize sets the worker pool size used while fitting the index.
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithAIConfig sets the model service configuration used to build the
// default OpenAI-compatible provider.
func WithAIConfig(cfg *ai.Config) Option {
	return func(c *config) {
		if cfg != nil {
			c.aiConfig = cfg
		}
	}
}

// WithProvider supplies a ready-made model provider, bypassing the default
// OpenAI-compatible one. Useful for tests.
func WithProvider(provider ai.Provider) Option {
	return func(c *config) {
		c.provider = provider
	}
}

// WithLexicon replaces the built-in intent keyword vocabulary.
func WithLexicon(lexicon *intent.Lexicon) Option {
	return func(c *config) {
		if lexicon != nil {
			c.lexicon = lexicon
		}
	}
}

// WithRetryPolicy replaces the default generation retry policy.
func WithRetryPolicy(policy agent.RetryPolicy) Option {
	return func(c *config) {
		if policy.MaxAttempts > 0 {
			c.policy = policy
		}
	}
}

// WithTranscriber enables voice turns by supplying the speech-to-text
// service.
func WithTranscriber(t ai.Transcriber) Option {
	return func(c *config) {
		c.transcriber = t
	}
}

// WithSynthesizer enables voice turns by supplying the text-to-speech
// service.
func WithSynthesizer(s ai.Synthesizer) Option {
	return func(c *config) {
		c.synthesizer = s
	}
}
