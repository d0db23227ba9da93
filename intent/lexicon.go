package intent

import "strings"

// Lexicon is the keyword vocabulary driving intent extraction. All entries
// are matched case-insensitively against lowercased utterances.
type Lexicon struct {
	// Cities recognized as location slots.
	Cities []string
	// Brands recognized as hospital-name slots.
	Brands []string
	// ConfirmWords cue a network-membership confirmation. Matched as
	// substrings, so short cues like "is" fire inside larger words.
	ConfirmWords []string
	// FollowupWords cue a request for more results on the previous topic.
	FollowupWords []string
	// DomainWords gate whether an utterance is about healthcare at all.
	DomainWords []string
	// GreetingWords short-circuit to a canned greeting on whole-utterance match.
	GreetingWords []string
	// NumberWords maps spelled-out counts to their values.
	NumberWords map[string]int
}

// DefaultLexicon returns the built-in vocabulary covering the Indian metro
// cities and hospital networks the assistant ships with.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Cities: []string{
			"bangalore", "bengaluru", "delhi", "mumbai",
			"chennai", "hyderabad", "pune", "kolkata",
		},
		Brands: []string{
			"manipal", "apollo", "fortis", "max", "medanta", "artemis",
		},
		ConfirmWords:  []string{"confirm", "is", "check", "verify"},
		FollowupWords: []string{"more", "other", "additional"},
		DomainWords: []string{
			"hospital", "clinic", "medical", "health", "doctor", "healthcare",
			"network", "manipal", "apollo", "fortis", "bangalore", "delhi",
			"location", "address", "find", "near", "around", "city",
			"confirm", "check", "available", "list", "tell",
		},
		GreetingWords: []string{"hi", "hello", "hey", "start", "help"},
		NumberWords: map[string]int{
			"three": 3,
			"five":  5,
			"ten":   10,
		},
	}
}

// IsDomainRelated reports whether the utterance mentions any healthcare
// domain keyword.
func (l *Lexicon) IsDomainRelated(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, w := range l.DomainWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// IsGreeting reports whether the whole trimmed utterance is a greeting word.
func (l *Lexicon) IsGreeting(utterance string) bool {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	for _, w := range l.GreetingWords {
		if lower == w {
			return true
		}
	}
	return false
}
