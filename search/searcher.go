package search

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/hospitium/core"
	"github.com/poiesic/hospitium/index"
)

// defaultMinScore is the cosine score below which hits are discarded.
const defaultMinScore = 0.1

// Searcher answers ranked hospital queries over a fitted index.
type Searcher struct {
	index    *index.Index
	records  []core.HospitalRecord
	minScore float64
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithMinScore sets the score threshold below which hits are discarded.
func WithMinScore(score float64) Option {
	return func(s *Searcher) error {
		if score >= 0 {
			s.minScore = score
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given index.
func NewSearcher(ix *index.Index, opts ...Option) (*Searcher, error) {
	if ix == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		index:    ix,
		records:  ix.Records(),
		minScore: defaultMinScore,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to k records ranked against the query, graded into
// relevance bands. Hits below the score threshold are dropped. A query with
// no recognizable terms returns an empty, non-nil slice.
func (s *Searcher) Search(query string, k int) []core.SearchResult {
	hits := s.index.Query(query, k)

	results := make([]core.SearchResult, 0, len(hits))
	for _, hit := range hits {
		if hit.Score < s.minScore {
			continue
		}
		results = append(results, core.SearchResult{
			Record:    s.records[hit.RecordIndex],
			Score:     hit.Score,
			Relevance: core.RelevanceFromScore(hit.Score),
		})
	}

	s.logger.Debug("search completed", "query", query, "hits", len(results))
	return results
}

// SearchByNameAndCity looks up hospitals of a named brand, optionally
// constrained to a city. Exact substring matches on the catalog score a full
// 1.0 and come back first, in catalog order; when fewer than k exist, ranked
// hits for a synthesized phrase fill the remaining slots. Results are
// deduplicated by hospital name, case-insensitively, and truncated to k.
func (s *Searcher) SearchByNameAndCity(name, city string, k int) []core.SearchResult {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	results := dedupeByName(s.exactMatches(name, city), k)
	if len(results) >= k {
		return results
	}

	var phrase string
	if city != "" {
		phrase = fmt.Sprintf("%s hospital in %s", name, city)
	} else {
		phrase = fmt.Sprintf("%s hospital", name)
	}
	s.logger.Debug("filling from ranked search",
		"name", name, "city", city, "exact", len(results))
	return dedupeByName(append(results, s.Search(phrase, k)...), k)
}

// exactMatches scans the catalog for records whose name contains the given
// name and, when a city is given, whose city contains it. Matching is
// case-insensitive and results keep catalog order.
func (s *Searcher) exactMatches(name, city string) []core.SearchResult {
	if name == "" || len(s.records) == 0 {
		return nil
	}
	lowerName := strings.ToLower(name)
	lowerCity := strings.ToLower(city)

	var results []core.SearchResult
	for _, record := range s.records {
		if !strings.Contains(strings.ToLower(record.Name), lowerName) {
			continue
		}
		if lowerCity != "" && !strings.Contains(strings.ToLower(record.City), lowerCity) {
			continue
		}
		results = append(results, core.SearchResult{
			Record:    record,
			Score:     1.0,
			Relevance: core.RelevanceHigh,
		})
	}
	return results
}

// dedupeByName keeps the first result per case-folded hospital name and
// truncates to at most k entries.
func dedupeByName(results []core.SearchResult, k int) []core.SearchResult {
	seen := make(map[string]bool, len(results))
	deduped := make([]core.SearchResult, 0, len(results))
	for _, r := range results {
		key := strings.ToLower(r.Record.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, r)
	}
	if k > 0 && len(deduped) > k {
		deduped = deduped[:k]
	}
	return deduped
}
