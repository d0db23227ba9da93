package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits punctuation",
			text: "Apollo Hospital, Bangalore!",
			want: []string{"apollo", "hospital", "bangalore"},
		},
		{
			name: "drops stop words",
			text: "the hospital in the city",
			want: []string{"hospital", "city"},
		},
		{
			name: "keeps digits",
			text: "123 Main St",
			want: []string{"123", "main", "st"},
		},
		{
			name: "only stop words",
			text: "is it the and of",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.text))
		})
	}
}

func TestExtractTerms(t *testing.T) {
	terms := extractTerms("apollo hospital bangalore")

	assert.ElementsMatch(t, []string{
		"apollo", "hospital", "bangalore",
		"apollo hospital", "hospital bangalore",
		"apollo hospital bangalore",
	}, terms)
}

func TestExtractTerms_NgramsSkipStopWords(t *testing.T) {
	// Stop words are removed before n-gram construction, so the bigram
	// spans the gap they leave.
	terms := extractTerms("hospitals in delhi")
	assert.Contains(t, terms, "hospitals delhi")
}

func TestTermCounts(t *testing.T) {
	counts := termCounts("hospital city hospital")

	assert.Equal(t, 2, counts["hospital"])
	assert.Equal(t, 1, counts["city"])
	assert.Equal(t, 1, counts["hospital city"])
	assert.Equal(t, 1, counts["city hospital"])

	assert.Nil(t, termCounts(""))
}
