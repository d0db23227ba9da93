package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/hospitium/core"
)

func TestIndexSnapshot_Roundtrip(t *testing.T) {
	original := &core.IndexSnapshot{
		CatalogID: core.IDFromContent("dataset-v1"),
		Records: []core.HospitalRecord{
			{Name: "Apollo Hospital", City: "Bangalore", Address: "123 Main St", StableIndex: 0},
			{Name: "Fortis Hospital", City: "Delhi", Address: "789 Lake Rd", StableIndex: 1},
		},
		Documents: []string{
			"Apollo Hospital Bangalore 123 Main St hospital",
			"Fortis Hospital Delhi 789 Lake Rd hospital",
		},
		Vocabulary: []core.VocabEntry{
			{Term: "apollo", Slot: 0, IDF: 1.405},
			{Term: "bangalore", Slot: 1, IDF: 1.405},
			{Term: "fortis", Slot: 2, IDF: 1.405},
		},
		Vectors: []core.DocumentVector{
			{Terms: []core.TermWeight{{Slot: 0, Weight: 1.405}, {Slot: 1, Weight: 1.405}}, Norm: 1.987},
			{Terms: []core.TermWeight{{Slot: 2, Weight: 1.405}}, Norm: 1.405},
		},
	}

	data := MarshalIndexSnapshot(original)
	restored, err := UnmarshalIndexSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestUnmarshalIndexSnapshot_Truncated(t *testing.T) {
	data := MarshalIndexSnapshot(&core.IndexSnapshot{
		CatalogID: 42,
		Records:   []core.HospitalRecord{{Name: "Apollo Hospital", City: "Bangalore"}},
		Documents: []string{"Apollo Hospital Bangalore hospital"},
		Vectors:   []core.DocumentVector{{}},
	})

	_, err := UnmarshalIndexSnapshot(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestID_Roundtrip(t *testing.T) {
	id := core.IDFromContent("some catalog")
	got, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
