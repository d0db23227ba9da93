package index

import (
	"strings"
	"unicode"
)

const (
	minNgram = 1
	maxNgram = 3
)

// tokenize lowercases text, splits on any non-alphanumeric run, and drops
// stop words and empty tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !stopWords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// extractTerms produces the n-gram terms for a piece of text. N-grams are
// built over the stop-word-filtered token stream, joined with single spaces.
func extractTerms(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	terms := make([]string, 0, len(tokens)*maxNgram)
	for n := minNgram; n <= maxNgram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// termCounts tallies raw term frequencies for a piece of text.
func termCounts(text string) map[string]int {
	terms := extractTerms(text)
	if len(terms) == 0 {
		return nil
	}
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}
