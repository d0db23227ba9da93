package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/hospitium/core"
	"github.com/poiesic/hospitium/storage"
)

func testSnapshot(catalogID core.ID) *core.IndexSnapshot {
	return &core.IndexSnapshot{
		CatalogID: catalogID,
		Records: []core.HospitalRecord{
			{Name: "Apollo Hospital", City: "Bangalore", Address: "123 Main St", StableIndex: 0},
		},
		Documents: []string{"Apollo Hospital Bangalore 123 Main St hospital"},
		Vocabulary: []core.VocabEntry{
			{Term: "apollo", Slot: 0, IDF: 1.405},
		},
		Vectors: []core.DocumentVector{
			{Terms: []core.TermWeight{{Slot: 0, Weight: 1.405}}, Norm: 1.405},
		},
	}
}

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	repo, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	snapshot := testSnapshot(core.IDFromContent("dataset-v1"))

	require.NoError(t, repo.SaveSnapshot(ctx, snapshot))

	loaded, err := repo.LoadSnapshot(ctx, snapshot.CatalogID)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestSnapshotRepository_LoadMissing(t *testing.T) {
	repo, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	defer repo.Close()

	loaded, err := repo.LoadSnapshot(context.Background(), 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, loaded)
}

func TestSnapshotRepository_Replace(t *testing.T) {
	repo, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	id := core.IDFromContent("dataset-v1")

	first := testSnapshot(id)
	require.NoError(t, repo.SaveSnapshot(ctx, first))

	second := testSnapshot(id)
	second.Documents = []string{"Apollo Hospital Bangalore 999 New Rd hospital"}
	require.NoError(t, repo.SaveSnapshot(ctx, second))

	loaded, err := repo.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, second.Documents, loaded.Documents)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	snapshot := testSnapshot(core.IDFromContent("dataset-v1"))

	require.NoError(t, repo.SaveSnapshot(ctx, snapshot))
	require.NoError(t, repo.DeleteSnapshot(ctx, snapshot.CatalogID))

	loaded, err := repo.LoadSnapshot(ctx, snapshot.CatalogID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, loaded)

	// Deleting a missing snapshot is not an error.
	assert.NoError(t, repo.DeleteSnapshot(ctx, snapshot.CatalogID))
}

func TestSnapshotRepository_Closed(t *testing.T) {
	repo, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	ctx := context.Background()
	assert.ErrorIs(t, repo.SaveSnapshot(ctx, testSnapshot(1)), storage.ErrStorageClosed)
	_, err = repo.LoadSnapshot(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, repo.DeleteSnapshot(ctx, 1), storage.ErrStorageClosed)

	// Closing twice is safe.
	assert.NoError(t, repo.Close())
}
