package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/hospitium/core"
)

func TestAcceptResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{
			name:     "acceptable reply",
			response: "Apollo Hospital is in Bangalore at 123 Main St.",
			want:     true,
		},
		{
			name:     "too short",
			response: "Yes.",
			want:     false,
		},
		{
			name:     "exactly twenty characters is too short",
			response: strings.Repeat("a", 20),
			want:     false,
		},
		{
			name:     "too long",
			response: strings.Repeat("hospital ", 60),
			want:     false,
		},
		{
			name:     "apology prefix",
			response: "I apologize, but I cannot help you with that particular request.",
			want:     false,
		},
		{
			name:     "apology mid-sentence is fine",
			response: "Sorry for the wait, I apologize. Apollo Hospital is in Bangalore.",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptResponse(tt.response))
		})
	}
}

func TestFallbackSentence(t *testing.T) {
	results := []core.SearchResult{
		{Record: core.HospitalRecord{Name: "Apollo Hospital", City: "Bangalore"}},
		{Record: core.HospitalRecord{Name: "Manipal Hospital", City: "Bangalore"}},
		{Record: core.HospitalRecord{Name: "Fortis Hospital", City: "Delhi"}},
		{Record: core.HospitalRecord{Name: "Max Hospital", City: "Delhi"}},
	}

	got := FallbackSentence(results)
	assert.Equal(t,
		"I found 4 hospitals: Apollo Hospital in Bangalore, Manipal Hospital in Bangalore, Fortis Hospital in Delhi.",
		got)
}

func TestFallbackSentence_NoResults(t *testing.T) {
	assert.Equal(t,
		"I couldn't find that hospital. Could you provide more details?",
		FallbackSentence(nil))
}

func TestDefaultRetryPolicy(t *testing.T) {
	policy := DefaultRetryPolicy()
	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Greater(t, policy.AttemptTimeout.Seconds(), 0.0)
}
