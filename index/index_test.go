package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/hospitium/core"
)

func testCorpus() ([]core.HospitalRecord, []string) {
	records := []core.HospitalRecord{
		{Name: "Apollo Hospital", City: "Bangalore", Address: "123 Main St", StableIndex: 0},
		{Name: "Manipal Hospital", City: "Bangalore", Address: "456 Park Ave", StableIndex: 1},
		{Name: "Fortis Hospital", City: "Delhi", Address: "789 Lake Rd", StableIndex: 2},
	}
	documents := []string{
		"Apollo Hospital Bangalore 123 Main St hospital healthcare facility medical center",
		"Manipal Hospital Bangalore 456 Park Ave hospital healthcare facility medical center",
		"Fortis Hospital Delhi 789 Lake Rd hospital healthcare facility medical center",
	}
	return records, documents
}

func buildTestIndex(t *testing.T, opts ...BuildOption) *Index {
	t.Helper()
	records, documents := testCorpus()
	ix, err := Build(core.IDFromContent("test-corpus"), records, documents, opts...)
	require.NoError(t, err)
	return ix
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(1, nil, nil)
	assert.ErrorIs(t, err, ErrNoDocuments)

	records, documents := testCorpus()
	_, err = Build(1, records[:2], documents)
	assert.ErrorIs(t, err, ErrRecordDocumentMismatch)
}

func TestQuery_RanksMatchingDocumentFirst(t *testing.T) {
	ix := buildTestIndex(t)

	hits := ix.Query("apollo hospital in bangalore", 5)
	require.NotEmpty(t, hits)
	assert.Equal(t, 0, hits[0].RecordIndex)
	assert.Greater(t, hits[0].Score, 0.0)

	hits = ix.Query("fortis delhi", 5)
	require.NotEmpty(t, hits)
	assert.Equal(t, 2, hits[0].RecordIndex)
}

func TestQuery_OutOfVocabulary(t *testing.T) {
	ix := buildTestIndex(t)

	assert.Nil(t, ix.Query("quantum chromodynamics", 5))
	assert.Nil(t, ix.Query("", 5))
	assert.Nil(t, ix.Query("the of and", 5))
}

func TestQuery_TruncatesToK(t *testing.T) {
	ix := buildTestIndex(t)

	// "bangalore" matches two documents.
	hits := ix.Query("hospitals in bangalore", 1)
	assert.Len(t, hits, 1)
}

func TestQuery_TiesKeepCorpusOrder(t *testing.T) {
	records := []core.HospitalRecord{
		{Name: "City Hospital", City: "Pune", StableIndex: 0},
		{Name: "City Hospital", City: "Pune", StableIndex: 1},
		{Name: "Lakeside Clinic", City: "Mumbai", StableIndex: 2},
	}
	documents := []string{
		"City Hospital Pune center",
		"City Hospital Pune center",
		"Lakeside Clinic Mumbai center",
	}
	ix, err := Build(7, records, documents)
	require.NoError(t, err)

	hits := ix.Query("city hospital pune", 10)
	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].RecordIndex)
	assert.Equal(t, 1, hits[1].RecordIndex)
	assert.InDelta(t, hits[0].Score, hits[1].Score, 1e-12)
}

func TestBuild_Deterministic(t *testing.T) {
	a := buildTestIndex(t, WithMaxVocabulary(10))
	b := buildTestIndex(t, WithMaxVocabulary(10))

	require.Equal(t, a.vocabulary, b.vocabulary)

	for _, q := range []string{"apollo", "hospital bangalore", "fortis delhi lake"} {
		assert.Equal(t, a.Query(q, 5), b.Query(q, 5), "query %q", q)
	}
}

func TestBuild_DropsUbiquitousTerms(t *testing.T) {
	ix := buildTestIndex(t)

	// "hospital" appears in every document, above the 0.8 ceiling.
	_, ok := ix.lookup["hospital"]
	assert.False(t, ok)

	// "apollo" appears in one of three.
	_, ok = ix.lookup["apollo"]
	assert.True(t, ok)
}

func TestSnapshot_Roundtrip(t *testing.T) {
	ix := buildTestIndex(t)
	restored, err := FromSnapshot(ix.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, ix.CatalogID(), restored.CatalogID())
	assert.Equal(t, ix.Len(), restored.Len())

	for _, q := range []string{"apollo bangalore", "manipal", "hospitals in delhi"} {
		assert.Equal(t, ix.Query(q, 5), restored.Query(q, 5), "query %q", q)
	}
}

func TestFromSnapshot_Corrupt(t *testing.T) {
	_, err := FromSnapshot(nil)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)

	s := buildTestIndex(t).Snapshot()
	s.Vectors = s.Vectors[:1]
	_, err = FromSnapshot(s)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestEmpty(t *testing.T) {
	ix := Empty()
	assert.Equal(t, 0, ix.Len())
	assert.Nil(t, ix.Query("apollo hospital", 5))
}
