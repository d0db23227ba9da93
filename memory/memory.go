package memory

import (
	"strings"
	"sync"

	"github.com/poiesic/hospitium/core"
)

const (
	defaultMaxTurns = 10
	summaryTurns    = 3
)

// Classifier maps an utterance to an intent type. The intent extractor's
// ClassifyType satisfies this.
type Classifier func(utterance string) core.IntentType

// Memory is the bounded conversation state for a single session.
type Memory struct {
	mu sync.Mutex

	turns      []core.Turn
	maxTurns   int
	classifier Classifier

	lastCities    []string
	lastHospitals []string
	lastIntent    core.IntentType
}

// Option configures a Memory.
type Option func(*Memory)

// WithMaxTurns bounds how many turns are retained; older turns are evicted
// first-in first-out.
func WithMaxTurns(n int) Option {
	return func(m *Memory) {
		if n > 0 {
			m.maxTurns = n
		}
	}
}

// WithClassifier sets the intent classifier used to track the latest intent
// type. Without one, LastIntent always reports zero.
func WithClassifier(c Classifier) Option {
	return func(m *Memory) {
		m.classifier = c
	}
}

// New creates an empty conversation memory.
func New(opts ...Option) *Memory {
	m := &Memory{maxTurns: defaultMaxTurns}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddInteraction records a completed turn. When the turn produced results,
// the remembered cities and hospital names are replaced with those of the new
// result set, in first-appearance order; an empty result set leaves them
// untouched so follow-ups still have context.
func (m *Memory) AddInteraction(userText, assistantText string, results []core.SearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, core.Turn{
		UserText:      userText,
		AssistantText: assistantText,
		Results:       results,
	})
	if len(m.turns) > m.maxTurns {
		m.turns = m.turns[len(m.turns)-m.maxTurns:]
	}

	if len(results) > 0 {
		m.lastCities = distinctCities(results)
		m.lastHospitals = distinctNames(results)
	}
	if m.classifier != nil {
		m.lastIntent = m.classifier(userText)
	}
}

// distinctCities lists the result set's cities in first-appearance order.
func distinctCities(results []core.SearchResult) []string {
	seen := make(map[string]bool, len(results))
	cities := make([]string, 0, len(results))
	for _, r := range results {
		key := strings.ToLower(r.Record.City)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		cities = append(cities, r.Record.City)
	}
	return cities
}

// distinctNames lists the result set's hospital names in first-appearance
// order.
func distinctNames(results []core.SearchResult) []string {
	seen := make(map[string]bool, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		key := strings.ToLower(r.Record.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, r.Record.Name)
	}
	return names
}

// ContextSummary renders the last few turns as a prompt block, oldest first.
// An empty memory yields an empty string.
func (m *Memory) ContextSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.turns) == 0 {
		return ""
	}
	start := len(m.turns) - summaryTurns
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for _, turn := range m.turns[start:] {
		b.WriteString("User: ")
		b.WriteString(turn.UserText)
		b.WriteString("\nAssistant: ")
		b.WriteString(turn.AssistantText)
		b.WriteString("\n")
	}
	return b.String()
}

// LastCity returns the first city of the newest non-empty result set, or ""
// when no results have been seen yet.
func (m *Memory) LastCity() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.lastCities) == 0 {
		return ""
	}
	return m.lastCities[0]
}

// LastCities returns the cities of the newest non-empty result set in
// first-appearance order.
func (m *Memory) LastCities() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.lastCities))
	copy(out, m.lastCities)
	return out
}

// LastHospitals returns the hospital names of the newest non-empty result
// set in first-appearance order.
func (m *Memory) LastHospitals() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.lastHospitals))
	copy(out, m.lastHospitals)
	return out
}

// LastIntent returns the intent type classified for the most recent turn.
func (m *Memory) LastIntent() core.IntentType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastIntent
}

// Len returns the number of retained turns.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// Turns returns a copy of the retained turns, oldest first.
func (m *Memory) Turns() []core.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]core.Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Clear resets the memory to its initial empty state.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = nil
	m.lastCities = nil
	m.lastHospitals = nil
	m.lastIntent = 0
}
