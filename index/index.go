package index

import (
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/hospitium/core"
)

const (
	defaultMaxVocabulary = 2000
	defaultMaxDocFreq    = 0.8
)

// Index is a fitted TF-IDF vector space over a fixed document corpus.
// It is immutable after Build and safe for concurrent queries.
type Index struct {
	catalogID  core.ID
	records    []core.HospitalRecord
	documents  []string
	vocabulary []core.VocabEntry
	lookup     map[string]int // term -> position in vocabulary
	vectors    []core.DocumentVector
}

// Hit is a single query match, referring to a record by its corpus position.
type Hit struct {
	RecordIndex int
	Score       float64
}

type buildConfig struct {
	maxVocabulary int
	maxDocFreq    float64
	poolSize      int
	logger        *slog.Logger
}

// BuildOption configures index construction.
type BuildOption func(*buildConfig)

// WithMaxVocabulary caps the number of terms kept in the fitted vocabulary.
func WithMaxVocabulary(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.maxVocabulary = n
		}
	}
}

// WithMaxDocFreq sets the document-frequency ceiling as a fraction of the
// corpus; terms appearing in more documents than this are dropped.
func WithMaxDocFreq(f float64) BuildOption {
	return func(c *buildConfig) {
		if f > 0 && f <= 1 {
			c.maxDocFreq = f
		}
	}
}

// WithPoolSize sets the worker pool size used for document vectorization.
func WithPoolSize(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build fits a TF-IDF index over the given documents. Records and documents
// are parallel slices in catalog order; the catalog ID ties the fitted index
// to the exact dataset revision it was built from.
func Build(catalogID core.ID, records []core.HospitalRecord, documents []string, opts ...BuildOption) (*Index, error) {
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	if len(records) != len(documents) {
		return nil, ErrRecordDocumentMismatch
	}

	cfg := buildConfig{
		maxVocabulary: defaultMaxVocabulary,
		maxDocFreq:    defaultMaxDocFreq,
		poolSize:      runtime.NumCPU(),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	docCounts := make([]map[string]int, len(documents))
	docFreq := make(map[string]int)
	for i, doc := range documents {
		docCounts[i] = termCounts(doc)
		for term := range docCounts[i] {
			docFreq[term]++
		}
	}

	vocabulary := fitVocabulary(docCounts, docFreq, len(documents), cfg)
	lookup := make(map[string]int, len(vocabulary))
	for i, e := range vocabulary {
		lookup[e.Term] = i
	}

	ix := &Index{
		catalogID:  catalogID,
		records:    records,
		documents:  documents,
		vocabulary: vocabulary,
		lookup:     lookup,
		vectors:    make([]core.DocumentVector, len(documents)),
	}

	ix.vectorizeAll(docCounts, cfg)

	cfg.logger.Debug("index built",
		"documents", len(documents),
		"vocabulary", len(vocabulary))
	return ix, nil
}

// fitVocabulary selects and weights the final term set. Terms above the
// document-frequency ceiling are dropped; if more terms survive than the cap
// allows, the ones whose TF-IDF weight varies most across documents are kept,
// ties broken alphabetically. Slots are assigned in term order.
func fitVocabulary(docCounts []map[string]int, docFreq map[string]int, n int, cfg buildConfig) []core.VocabEntry {
	maxDF := cfg.maxDocFreq * float64(n)

	kept := make([]string, 0, len(docFreq))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		if float64(df) > maxDF {
			continue
		}
		kept = append(kept, term)
		idf[term] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	if len(kept) > cfg.maxVocabulary {
		variance := weightVariance(kept, idf, docCounts, n)
		sort.Slice(kept, func(i, j int) bool {
			if variance[kept[i]] != variance[kept[j]] {
				return variance[kept[i]] > variance[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:cfg.maxVocabulary]
	}

	sort.Strings(kept)
	vocabulary := make([]core.VocabEntry, len(kept))
	for i, term := range kept {
		vocabulary[i] = core.VocabEntry{Term: term, Slot: i, IDF: idf[term]}
	}
	return vocabulary
}

// weightVariance computes the variance of each term's TF-IDF weight across
// all documents, treating absence as weight zero.
func weightVariance(terms []string, idf map[string]float64, docCounts []map[string]int, n int) map[string]float64 {
	sum := make(map[string]float64, len(terms))
	sumSq := make(map[string]float64, len(terms))
	for _, counts := range docCounts {
		for term, tf := range counts {
			w, ok := idf[term]
			if !ok {
				continue
			}
			weight := (1 + math.Log(float64(tf))) * w
			sum[term] += weight
			sumSq[term] += weight * weight
		}
	}

	variance := make(map[string]float64, len(terms))
	for _, term := range terms {
		mean := sum[term] / float64(n)
		variance[term] = sumSq[term]/float64(n) - mean*mean
	}
	return variance
}

// vectorizeAll computes per-document sparse vectors on a worker pool.
func (ix *Index) vectorizeAll(docCounts []map[string]int, cfg buildConfig) {
	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		for i := range docCounts {
			ix.vectors[i] = ix.vectorize(docCounts[i])
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range docCounts {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			ix.vectors[i] = ix.vectorize(docCounts[i])
		}); err != nil {
			ix.vectors[i] = ix.vectorize(docCounts[i])
			wg.Done()
		}
	}
	wg.Wait()
}

// vectorize builds a slot-sorted sparse vector from raw term counts.
func (ix *Index) vectorize(counts map[string]int) core.DocumentVector {
	if len(counts) == 0 {
		return core.DocumentVector{}
	}

	terms := make([]core.TermWeight, 0, len(counts))
	var normSq float64
	for term, tf := range counts {
		pos, ok := ix.lookup[term]
		if !ok {
			continue
		}
		entry := ix.vocabulary[pos]
		weight := (1 + math.Log(float64(tf))) * entry.IDF
		terms = append(terms, core.TermWeight{Slot: entry.Slot, Weight: weight})
		normSq += weight * weight
	}
	if len(terms) == 0 {
		return core.DocumentVector{}
	}

	sort.Slice(terms, func(i, j int) bool { return terms[i].Slot < terms[j].Slot })
	return core.DocumentVector{Terms: terms, Norm: math.Sqrt(normSq)}
}

// Query ranks documents against the query text by cosine similarity.
// Only positive scores are returned, sorted descending with ties kept in
// catalog order. A query with no in-vocabulary terms returns nil. If k > 0
// the result is truncated to at most k hits.
func (ix *Index) Query(text string, k int) []Hit {
	query := ix.vectorize(termCounts(text))
	if query.Norm == 0 {
		return nil
	}

	hits := make([]Hit, 0, len(ix.vectors))
	for i, doc := range ix.vectors {
		score := cosine(query, doc)
		if score > 0 {
			hits = append(hits, Hit{RecordIndex: i, Score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// cosine computes the cosine similarity between two slot-sorted sparse
// vectors. Either vector having zero norm yields zero.
func cosine(a, b core.DocumentVector) float64 {
	if a.Norm == 0 || b.Norm == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		switch {
		case a.Terms[i].Slot < b.Terms[j].Slot:
			i++
		case a.Terms[i].Slot > b.Terms[j].Slot:
			j++
		default:
			dot += a.Terms[i].Weight * b.Terms[j].Weight
			i++
			j++
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.Norm * b.Norm)
}

// Empty returns an index with no documents. Every query against it returns
// no hits. It exists so callers can degrade instead of failing when an index
// cannot be built.
func Empty() *Index {
	return &Index{lookup: map[string]int{}}
}

// Records returns the indexed records in catalog order.
// The returned slice must not be mutated.
func (ix *Index) Records() []core.HospitalRecord {
	return ix.records
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.records)
}

// CatalogID returns the content hash of the dataset this index was built from.
func (ix *Index) CatalogID() core.ID {
	return ix.catalogID
}

// Snapshot captures the fitted index for persistence.
func (ix *Index) Snapshot() *core.IndexSnapshot {
	return &core.IndexSnapshot{
		CatalogID:  ix.catalogID,
		Records:    ix.records,
		Documents:  ix.documents,
		Vocabulary: ix.vocabulary,
		Vectors:    ix.vectors,
	}
}

// FromSnapshot restores a fitted index without refitting. The restored index
// ranks queries identically to the one the snapshot was taken from.
func FromSnapshot(s *core.IndexSnapshot) (*Index, error) {
	if s == nil {
		return nil, ErrCorruptSnapshot
	}
	if len(s.Records) != len(s.Documents) || len(s.Records) != len(s.Vectors) {
		return nil, ErrCorruptSnapshot
	}

	lookup := make(map[string]int, len(s.Vocabulary))
	for i, e := range s.Vocabulary {
		lookup[e.Term] = i
	}

	return &Index{
		catalogID:  s.CatalogID,
		records:    s.Records,
		documents:  s.Documents,
		vocabulary: s.Vocabulary,
		lookup:     lookup,
		vectors:    s.Vectors,
	}, nil
}
