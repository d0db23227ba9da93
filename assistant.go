// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package hospitium is an embedded hospital-locator assistant: it loads a
// hospital catalog, fits (or restores from cache) a TF-IDF search index over
// it, and runs voice-friendly conversation sessions that answer lookup,
// confirmation and follow-up queries with an LLM-generated reply grounded on
// retrieved records.
//
// One Assistant owns the catalog and index and is shared by any number of
// independent Sessions, each with its own conversation memory.
package hospitium

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/hospitium/agent"
	"github.com/poiesic/hospitium/ai"
	"github.com/poiesic/hospitium/ai/openai"
	"github.com/poiesic/hospitium/catalog"
	"github.com/poiesic/hospitium/core"
	"github.com/poiesic/hospitium/index"
	"github.com/poiesic/hospitium/intent"
	"github.com/poiesic/hospitium/search"
	"github.com/poiesic/hospitium/storage"
	badgerstore "github.com/poiesic/hospitium/storage/badger"
)

// Assistant owns the shared, read-only machinery: catalog, fitted index,
// searcher, and the model provider. Create sessions with NewSession.
type Assistant struct {
	catalog  *catalog.Catalog
	index    *index.Index
	searcher *search.Searcher
	provider ai.Provider
	cache    storage.SnapshotRepository

	lexicon     *intent.Lexicon
	policy      agent.RetryPolicy
	transcriber ai.Transcriber
	synthesizer ai.Synthesizer
	logger      *slog.Logger
}

// New loads the catalog at catalogPath and prepares the search machinery.
// An unreadable catalog falls back to the built-in demo records; an index
// cache that cannot be opened is skipped. Neither stops startup. The only
// fatal condition is a model provider that cannot be constructed.
func New(catalogPath string, opts ...Option) (*Assistant, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Assistant{
		lexicon:     cfg.lexicon,
		policy:      cfg.policy,
		transcriber: cfg.transcriber,
		synthesizer: cfg.synthesizer,
		logger:      slog.Default().With("component", "assistant"),
	}

	a.catalog = catalog.Load(catalogPath)
	a.cache = openCache(cfg, a.logger)
	a.index = a.loadOrBuildIndex(cfg)

	searcher, err := search.NewSearcher(a.index)
	if err != nil {
		return nil, err
	}
	a.searcher = searcher

	a.provider = cfg.provider
	if a.provider == nil {
		provider, err := openai.NewProvider(cfg.aiConfig)
		if err != nil {
			return nil, err
		}
		a.provider = provider
	}

	a.logger.Info("assistant ready",
		"hospitals", a.catalog.Len(),
		"demo", a.catalog.IsDemo(),
		"indexed", a.index.Len())
	return a, nil
}

// openCache opens the snapshot cache when one is configured. Failure to open
// is logged and degrades to uncached operation.
func openCache(cfg config, logger *slog.Logger) storage.SnapshotRepository {
	if cfg.cacheDir == "" {
		return nil
	}
	backend, err := badgerstore.OpenBackend(cfg.cacheDir, false)
	if err != nil {
		logger.Warn("index cache unavailable, continuing without it",
			"dir", cfg.cacheDir, "err", err)
		return nil
	}
	return badgerstore.NewSnapshotRepository(backend)
}

// loadOrBuildIndex restores the fitted index from the cache when a snapshot
// for this exact catalog revision exists, and fits a fresh one otherwise.
// A failed build degrades to an empty index rather than failing startup.
func (a *Assistant) loadOrBuildIndex(cfg config) *index.Index {
	ctx := context.Background()

	if a.cache != nil {
		snapshot, err := a.cache.LoadSnapshot(ctx, a.catalog.ID())
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Debug("no cached snapshot for this catalog", "catalogID", a.catalog.ID())
		} else if err != nil {
			a.logger.Warn("failed to read cached snapshot", "err", err)
		} else {
			ix, err := index.FromSnapshot(snapshot)
			if err == nil {
				a.logger.Info("index restored from cache", "catalogID", a.catalog.ID())
				return ix
			}
			a.logger.Warn("cached snapshot unusable, rebuilding", "err", err)
		}
	}

	buildOpts := []index.BuildOption{index.WithLogger(a.logger)}
	if cfg.poolSize > 0 {
		buildOpts = append(buildOpts, index.WithPoolSize(cfg.poolSize))
	}
	ix, err := index.Build(a.catalog.ID(), a.catalog.Records(), a.catalog.Documents(), buildOpts...)
	if err != nil {
		a.logger.Error("index build failed, searches will return nothing", "err", err)
		return index.Empty()
	}

	if a.cache != nil {
		if err := a.cache.SaveSnapshot(ctx, ix.Snapshot()); err != nil {
			a.logger.Warn("failed to cache index snapshot", "err", err)
		}
	}
	return ix
}

// Catalog returns the loaded hospital catalog.
func (a *Assistant) Catalog() *catalog.Catalog {
	return a.catalog
}

// Index returns the fitted search index.
func (a *Assistant) Index() *index.Index {
	return a.index
}

// Searcher returns the shared searcher.
func (a *Assistant) Searcher() *search.Searcher {
	return a.searcher
}

// NewSession starts an independent conversation session.
func (a *Assistant) NewSession() (*Session, error) {
	ag, err := agent.New(a.searcher, a.provider.Generator(),
		agent.WithLexicon(a.lexicon),
		agent.WithRetryPolicy(a.policy))
	if err != nil {
		return nil, err
	}
	return &Session{assistant: a, agent: ag}, nil
}

// Close releases the assistant's resources: the model provider and, when
// present, the index cache.
func (a *Assistant) Close() error {
	var firstErr error
	if a.provider != nil {
		if err := a.provider.Close(); err != nil {
			firstErr = err
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Session is one user's conversation with the assistant.
type Session struct {
	assistant *Assistant
	agent     *agent.Agent
}

// VoiceResponse is the result of a voice turn.
type VoiceResponse struct {
	// Transcript is what the transcriber heard.
	Transcript string
	// Reply is the assistant's text answer.
	Reply string
	// Audio is the synthesized rendering of Reply.
	Audio []byte
	// Results are the hospitals the reply is grounded on.
	Results []core.SearchResult
}

// Handle runs one text turn. It never fails; every input produces a reply.
func (s *Session) Handle(ctx context.Context, utterance string) (string, []core.SearchResult) {
	return s.agent.Handle(ctx, utterance)
}

// HandleVoice runs one voice turn: transcribe, handle, synthesize. Unlike
// text turns, speech failures are hard errors the caller must surface.
func (s *Session) HandleVoice(ctx context.Context, audio []byte, mimeType string) (*VoiceResponse, error) {
	if s.assistant.transcriber == nil {
		return nil, ErrTranscriberRequired
	}
	if s.assistant.synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}

	transcript, err := s.assistant.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}
	if transcript == "" {
		return nil, ErrEmptyTranscript
	}

	reply, results := s.agent.Handle(ctx, transcript)

	speech, err := s.assistant.synthesizer.Synthesize(ctx, reply)
	if err != nil {
		return nil, err
	}

	return &VoiceResponse{
		Transcript: transcript,
		Reply:      reply,
		Audio:      speech,
		Results:    results,
	}, nil
}

// Reset clears the session's conversation state.
func (s *Session) Reset() {
	s.agent.Reset()
}
