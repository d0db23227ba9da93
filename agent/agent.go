package agent

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/hospitium/ai"
	"github.com/poiesic/hospitium/core"
	"github.com/poiesic/hospitium/intent"
	"github.com/poiesic/hospitium/memory"
)

// Retriever answers hospital lookups. A search.Searcher satisfies this.
type Retriever interface {
	Search(query string, k int) []core.SearchResult
	SearchByNameAndCity(name, city string, k int) []core.SearchResult
}

// Agent runs conversation turns for a single session. It is safe for
// concurrent use, though a session is normally driven by one caller.
type Agent struct {
	mu sync.Mutex

	retriever Retriever
	generator ai.ResponseGenerator
	lexicon   *intent.Lexicon
	extractor *intent.Extractor
	memory    *memory.Memory
	policy    RetryPolicy
	logger    *slog.Logger

	started bool
}

// Option configures an Agent.
type Option func(*Agent) error

// WithLexicon replaces the built-in keyword vocabulary.
func WithLexicon(lexicon *intent.Lexicon) Option {
	return func(a *Agent) error {
		if lexicon != nil {
			a.lexicon = lexicon
		}
		return nil
	}
}

// WithRetryPolicy replaces the default generation retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(a *Agent) error {
		if policy.MaxAttempts > 0 {
			a.policy = policy
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// New creates an agent over a retriever and a response generator.
func New(retriever Retriever, generator ai.ResponseGenerator, opts ...Option) (*Agent, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	a := &Agent{
		retriever: retriever,
		generator: generator,
		lexicon:   intent.DefaultLexicon(),
		policy:    DefaultRetryPolicy(),
		logger:    slog.Default().With("component", "agent"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	a.extractor = intent.NewExtractor(a.lexicon)
	a.memory = memory.New(memory.WithClassifier(a.extractor.ClassifyType))
	return a, nil
}

// Handle runs one conversation turn and returns the reply together with the
// hospitals it is grounded on. It never returns an error: failed generation
// degrades to a deterministic fallback sentence.
func (a *Agent) Handle(ctx context.Context, utterance string) (string, []core.SearchResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var intro string
	if !a.started {
		a.started = true
		if a.lexicon.IsGreeting(utterance) {
			return greetingMessage, nil
		}
		// First substantive query gets a short introduction.
		intro = introPrefix
	}

	if !a.lexicon.IsDomainRelated(utterance) {
		a.logger.Debug("utterance outside domain", "utterance", utterance)
		return refusalMessage, nil
	}

	it := a.extractor.Extract(utterance, a.memory)
	a.logger.Debug("intent extracted",
		"type", it.Type.String(),
		"city", it.City,
		"hospital", it.HospitalName,
		"count", it.Count)

	var results []core.SearchResult
	if it.Type == core.IntentConfirmation && it.HospitalName != "" {
		results = a.retriever.SearchByNameAndCity(it.HospitalName, it.City, it.Count)
	} else {
		results = a.retriever.Search(utterance, it.Count)
	}
	a.logger.Debug("hospitals retrieved", "count", len(results))

	answer := a.generate(ctx, utterance, results)
	a.memory.AddInteraction(utterance, answer, results)

	return intro + answer, results
}

// generate asks the model for a reply under the retry policy and falls back
// to a deterministic sentence when no attempt yields an acceptable one.
func (a *Agent) generate(ctx context.Context, utterance string, results []core.SearchResult) string {
	req := ai.GenerationRequest{
		System: systemPrompt,
		Prompt: buildPrompt(utterance, buildContextBlock(results), a.memory.ContextSummary()),
	}

	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		attemptCtx := ctx
		var cancel context.CancelFunc
		if a.policy.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, a.policy.AttemptTimeout)
		}

		answer, err := a.generator.GenerateResponse(attemptCtx, req)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			a.logger.Warn("generation attempt failed", "attempt", attempt, "err", err)
			continue
		}

		answer = strings.Join(strings.Fields(answer), " ")
		if AcceptResponse(answer) {
			return answer
		}
		a.logger.Warn("generated response rejected", "attempt", attempt, "len", len(answer))
	}

	a.logger.Info("falling back to deterministic response", "results", len(results))
	return FallbackSentence(results)
}

// Memory exposes the session's conversation memory.
func (a *Agent) Memory() *memory.Memory {
	return a.memory
}

// Reset clears the conversation state, returning the session to its initial
// greeting behavior.
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.memory.Clear()
	a.started = false
}
