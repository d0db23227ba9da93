package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing, so identical content always
// produces the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// HospitalRecord is one entry of the hospital catalog.
// Records are immutable after load; StableIndex is the record's position in
// the deduplicated catalog and is what index queries refer to.
type HospitalRecord struct {
	Name        string
	City        string
	Address     string
	StableIndex int
}

// DedupKey returns the case-insensitive (name, city) key used to collapse
// duplicate catalog rows.
func (r *HospitalRecord) DedupKey() string {
	return strings.ToLower(r.Name) + "\x00" + strings.ToLower(r.City)
}

// Relevance is the coarse display bucket derived from a similarity score.
type Relevance int

const (
	// RelevanceLow indicates a weak match (score <= 0.2).
	RelevanceLow Relevance = iota + 1
	// RelevanceMedium indicates a moderate match (0.2 < score <= 0.5).
	RelevanceMedium
	// RelevanceHigh indicates a strong match (score > 0.5).
	RelevanceHigh
)

// RelevanceFromScore buckets a similarity score into a Relevance tier.
func RelevanceFromScore(score float64) Relevance {
	switch {
	case score > 0.5:
		return RelevanceHigh
	case score > 0.2:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}

// String returns the display name of the relevance tier.
func (r Relevance) String() string {
	switch r {
	case RelevanceHigh:
		return "high"
	case RelevanceMedium:
		return "medium"
	case RelevanceLow:
		return "low"
	default:
		return "unknown"
	}
}

// SearchResult is a ranked catalog match. Produced fresh per query,
// never persisted.
type SearchResult struct {
	Record    HospitalRecord
	Score     float64
	Relevance Relevance
}

// IntentType classifies what a user utterance is asking for.
type IntentType int

const (
	// IntentSearch is the default: the user wants matching hospitals listed.
	IntentSearch IntentType = iota + 1
	// IntentConfirmation asks whether a specific hospital is in the network.
	IntentConfirmation
	// IntentFollowup continues a previous request ("what about other ones").
	IntentFollowup
)

// String returns the display name of the intent type.
func (t IntentType) String() string {
	switch t {
	case IntentSearch:
		return "search"
	case IntentConfirmation:
		return "confirmation"
	case IntentFollowup:
		return "followup"
	default:
		return "unknown"
	}
}

// Intent is the structured reading of a single utterance.
// It is derived once per utterance and never mutated afterwards.
type Intent struct {
	Type         IntentType
	City         string
	HospitalName string
	Count        int
}

// Turn is one conversational exchange: the user's utterance, the assistant's
// response, and the results that backed it. Owned by the conversation memory.
type Turn struct {
	UserText      string
	AssistantText string
	Results       []SearchResult
}

// TermWeight is one entry of a sparse document vector: the vocabulary slot
// and its TF-IDF weight.
type TermWeight struct {
	Slot   int
	Weight float64
}

// DocumentVector is the sparse TF-IDF vector of one indexed document,
// with its precomputed L2 norm.
type DocumentVector struct {
	Terms []TermWeight
	Norm  float64
}

// VocabEntry maps a fitted vocabulary term to its slot and IDF weight.
type VocabEntry struct {
	Term string
	Slot int
	IDF  float64
}

// IndexSnapshot is the serializable form of a fitted text index: everything
// needed to answer queries without touching the source catalog again.
// CatalogID is a content hash of the catalog bytes, so an edited catalog
// never resolves to a stale snapshot.
type IndexSnapshot struct {
	CatalogID  ID
	Records    []HospitalRecord
	Documents  []string
	Vocabulary []VocabEntry
	Vectors    []DocumentVector
}
