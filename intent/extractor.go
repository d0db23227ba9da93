package intent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/poiesic/hospitium/core"
)

const defaultCount = 3

// CityRecall supplies the most recently discussed city so follow-up
// utterances that name no city can inherit it. A conversation memory
// satisfies this.
type CityRecall interface {
	LastCity() string
}

// Extractor turns raw utterances into structured intents using a Lexicon.
type Extractor struct {
	lexicon *Lexicon
	countRe *regexp.Regexp
}

// NewExtractor creates an extractor over the given lexicon. A nil lexicon
// falls back to the built-in default.
func NewExtractor(lexicon *Lexicon) *Extractor {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Extractor{
		lexicon: lexicon,
		countRe: compileCountPattern(lexicon),
	}
}

// compileCountPattern builds the requested-count matcher from digits plus the
// lexicon's spelled-out numbers, sorted for a stable pattern.
func compileCountPattern(lexicon *Lexicon) *regexp.Regexp {
	words := make([]string, 0, len(lexicon.NumberWords))
	for w := range lexicon.NumberWords {
		words = append(words, regexp.QuoteMeta(w))
	}
	sort.Strings(words)

	pattern := `\b(\d+`
	for _, w := range words {
		pattern += "|" + w
	}
	pattern += `)\b`
	return regexp.MustCompile(pattern)
}

// Extract classifies the utterance and fills its slots. recall may be nil;
// when present, follow-up utterances with no explicit city inherit its city.
func (e *Extractor) Extract(utterance string, recall CityRecall) core.Intent {
	lower := strings.ToLower(utterance)

	intent := core.Intent{
		Type:         e.ClassifyType(utterance),
		City:         e.findCity(lower),
		HospitalName: e.findBrand(lower),
		Count:        e.findCount(lower),
	}

	if intent.Type == core.IntentFollowup && intent.City == "" && recall != nil {
		intent.City = recall.LastCity()
	}
	return intent
}

// ClassifyType picks the intent type from cue words. Confirmation cues win
// over follow-up cues; everything else is a search. Cues match as substrings
// of the lowercased utterance.
func (e *Extractor) ClassifyType(utterance string) core.IntentType {
	lower := strings.ToLower(utterance)
	for _, w := range e.lexicon.ConfirmWords {
		if strings.Contains(lower, w) {
			return core.IntentConfirmation
		}
	}
	for _, w := range e.lexicon.FollowupWords {
		if strings.Contains(lower, w) {
			return core.IntentFollowup
		}
	}
	return core.IntentSearch
}

// findCity returns the first lexicon city mentioned, capitalized for display.
func (e *Extractor) findCity(lower string) string {
	for _, city := range e.lexicon.Cities {
		if strings.Contains(lower, city) {
			return capitalize(city)
		}
	}
	return ""
}

// findBrand returns the first lexicon brand mentioned, as the lowercase
// brand token used for catalog lookups.
func (e *Extractor) findBrand(lower string) string {
	for _, brand := range e.lexicon.Brands {
		if strings.Contains(lower, brand) {
			return brand
		}
	}
	return ""
}

// findCount extracts the requested result count, defaulting when the
// utterance names none.
func (e *Extractor) findCount(lower string) int {
	match := e.countRe.FindString(lower)
	if match == "" {
		return defaultCount
	}
	if n, ok := e.lexicon.NumberWords[match]; ok {
		return n
	}
	if n, err := strconv.Atoi(match); err == nil && n > 0 {
		return n
	}
	return defaultCount
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
