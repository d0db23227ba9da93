package storage

import (
	"context"

	"github.com/poiesic/hospitium/core"
)

// SnapshotRepository persists fitted index snapshots keyed by the content
// hash of the catalog they were built from. Editing the dataset changes the
// key, so a stale snapshot can never be loaded for a new revision.
type SnapshotRepository interface {
	// SaveSnapshot stores a snapshot under its catalog ID, replacing any
	// previous snapshot for the same ID.
	SaveSnapshot(ctx context.Context, snapshot *core.IndexSnapshot) error

	// LoadSnapshot retrieves the snapshot for a catalog ID.
	// Returns ErrNotFound when no snapshot exists.
	LoadSnapshot(ctx context.Context, catalogID core.ID) (*core.IndexSnapshot, error)

	// DeleteSnapshot removes the snapshot for a catalog ID, if present.
	DeleteSnapshot(ctx context.Context, catalogID core.ID) error

	// Close releases resources held by the repository.
	Close() error
}
