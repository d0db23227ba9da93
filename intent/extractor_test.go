package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/hospitium/core"
)

type staticRecall string

func (s staticRecall) LastCity() string { return string(s) }

func TestExtract(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name      string
		utterance string
		want      core.Intent
	}{
		{
			name:      "confirmation with brand and city",
			utterance: "is Manipal Bangalore in network",
			want: core.Intent{
				Type:         core.IntentConfirmation,
				City:         "Bangalore",
				HospitalName: "manipal",
				Count:        3,
			},
		},
		{
			name:      "search with spelled-out count",
			utterance: "show me five hospitals in Delhi",
			want: core.Intent{
				Type:  core.IntentSearch,
				City:  "Delhi",
				Count: 5,
			},
		},
		{
			name:      "search with numeric count",
			utterance: "find 7 hospitals near Mumbai",
			want: core.Intent{
				Type:  core.IntentSearch,
				City:  "Mumbai",
				Count: 7,
			},
		},
		{
			name:      "confirmation cue inside a larger word",
			utterance: "list hospitals in Chennai",
			want: core.Intent{
				Type:  core.IntentConfirmation,
				City:  "Chennai",
				Count: 3,
			},
		},
		{
			name:      "bare search",
			utterance: "hospitals around Pune please",
			want: core.Intent{
				Type:  core.IntentSearch,
				City:  "Pune",
				Count: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.utterance, nil))
		})
	}
}

func TestExtract_FollowupInheritsCity(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("show me more", staticRecall("Bangalore"))
	assert.Equal(t, core.IntentFollowup, got.Type)
	assert.Equal(t, "Bangalore", got.City)

	// An explicit city wins over the remembered one.
	got = e.Extract("more hospitals in delhi", staticRecall("Bangalore"))
	assert.Equal(t, core.IntentFollowup, got.Type)
	assert.Equal(t, "Delhi", got.City)

	// No recall available leaves the slot empty.
	got = e.Extract("any other options", nil)
	assert.Equal(t, core.IntentFollowup, got.Type)
	assert.Equal(t, "", got.City)
}

func TestClassifyType_ConfirmationWinsOverFollowup(t *testing.T) {
	e := NewExtractor(nil)

	// "is" and "more" both appear; confirmation cues are checked first.
	assert.Equal(t, core.IntentConfirmation, e.ClassifyType("is there more at apollo"))
}

func TestLexicon_IsDomainRelated(t *testing.T) {
	l := DefaultLexicon()

	assert.True(t, l.IsDomainRelated("find a hospital near me"))
	assert.True(t, l.IsDomainRelated("apollo in bangalore"))
	assert.False(t, l.IsDomainRelated("what's the weather today"))
}

func TestLexicon_IsGreeting(t *testing.T) {
	l := DefaultLexicon()

	assert.True(t, l.IsGreeting("hello"))
	assert.True(t, l.IsGreeting("  Hi  "))
	assert.False(t, l.IsGreeting("hello there"))
}

func TestFindCount_Defaults(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("hospitals in kolkata", nil)
	assert.Equal(t, 3, got.Count)

	// Zero is not a usable count.
	got = e.Extract("show 0 hospitals in kolkata", nil)
	assert.Equal(t, 3, got.Count)
}
