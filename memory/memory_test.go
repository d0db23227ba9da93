package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/hospitium/core"
)

func resultsFor(pairs ...[2]string) []core.SearchResult {
	results := make([]core.SearchResult, 0, len(pairs))
	for _, p := range pairs {
		results = append(results, core.SearchResult{
			Record: core.HospitalRecord{Name: p[0], City: p[1]},
			Score:  0.9,
		})
	}
	return results
}

func TestAddInteraction_EvictsOldestBeyondCap(t *testing.T) {
	m := New(WithMaxTurns(10))

	for i := 0; i < 11; i++ {
		m.AddInteraction(fmt.Sprintf("question %d", i), "answer", nil)
	}

	require.Equal(t, 10, m.Len())
	turns := m.Turns()
	assert.Equal(t, "question 1", turns[0].UserText)
	assert.Equal(t, "question 10", turns[9].UserText)
}

func TestLastCity_FirstAppearanceOrder(t *testing.T) {
	m := New()

	m.AddInteraction("hospitals", "here you go", resultsFor(
		[2]string{"Fortis Hospital", "Delhi"},
		[2]string{"Apollo Hospital", "Bangalore"},
		[2]string{"Manipal Hospital", "Delhi"},
	))

	assert.Equal(t, "Delhi", m.LastCity())
	assert.Equal(t, []string{"Delhi", "Bangalore"}, m.LastCities())
	assert.Equal(t,
		[]string{"Fortis Hospital", "Apollo Hospital", "Manipal Hospital"},
		m.LastHospitals())
}

func TestLastCity_SurvivesEmptyTurns(t *testing.T) {
	m := New()

	m.AddInteraction("hospitals in bangalore", "found some", resultsFor(
		[2]string{"Apollo Hospital", "Bangalore"},
	))
	m.AddInteraction("what's the weather", "I can only help with hospitals", nil)

	assert.Equal(t, "Bangalore", m.LastCity())
	assert.Equal(t, []string{"Apollo Hospital"}, m.LastHospitals())
}

func TestLastCity_ReplacedByNewResults(t *testing.T) {
	m := New()

	m.AddInteraction("hospitals in bangalore", "found some", resultsFor(
		[2]string{"Apollo Hospital", "Bangalore"},
	))
	m.AddInteraction("hospitals in delhi", "found some", resultsFor(
		[2]string{"Fortis Hospital", "Delhi"},
	))

	assert.Equal(t, "Delhi", m.LastCity())
	assert.Equal(t, []string{"Fortis Hospital"}, m.LastHospitals())
}

func TestContextSummary(t *testing.T) {
	m := New()
	assert.Equal(t, "", m.ContextSummary())

	for i := 1; i <= 4; i++ {
		m.AddInteraction(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i), nil)
	}

	// Only the last three turns appear, oldest first.
	assert.Equal(t,
		"User: q2\nAssistant: a2\nUser: q3\nAssistant: a3\nUser: q4\nAssistant: a4\n",
		m.ContextSummary())
}

func TestLastIntent(t *testing.T) {
	m := New(WithClassifier(func(utterance string) core.IntentType {
		if utterance == "more please" {
			return core.IntentFollowup
		}
		return core.IntentSearch
	}))

	m.AddInteraction("hospitals in pune", "found some", nil)
	assert.Equal(t, core.IntentSearch, m.LastIntent())

	m.AddInteraction("more please", "here are more", nil)
	assert.Equal(t, core.IntentFollowup, m.LastIntent())
}

func TestClear(t *testing.T) {
	m := New()
	m.AddInteraction("hospitals in pune", "found some", resultsFor(
		[2]string{"Sahyadri Hospital", "Pune"},
	))

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "", m.LastCity())
	assert.Empty(t, m.LastHospitals())
	assert.Equal(t, "", m.ContextSummary())
}
