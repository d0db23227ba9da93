package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/hospitium/core"
	"github.com/poiesic/hospitium/storage"
)

// SnapshotRepository implements storage.SnapshotRepository on a Backend.
type SnapshotRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a snapshot repository over an open backend.
func NewSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{
		backend: backend,
		logger:  slog.Default().With("component", "snapshot-repository"),
	}
}

// SaveSnapshot stores a snapshot under its catalog ID, replacing any
// previous snapshot for the same ID.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *core.IndexSnapshot) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	data := storage.MarshalIndexSnapshot(snapshot)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(snapshot.CatalogID), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		r.logger.Error("failed to save snapshot", "catalogID", snapshot.CatalogID, "err", err)
		return err
	}

	r.logger.Debug("snapshot saved",
		"catalogID", snapshot.CatalogID,
		"bytes", len(data))
	return nil
}

// LoadSnapshot retrieves the snapshot for a catalog ID.
// Returns storage.ErrNotFound when no snapshot exists.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, catalogID core.ID) (*core.IndexSnapshot, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *core.IndexSnapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(catalogID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot, err = storage.UnmarshalIndexSnapshot(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DeleteSnapshot removes the snapshot for a catalog ID, if present.
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, catalogID core.ID) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSnapshotKey(catalogID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (r *SnapshotRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}
