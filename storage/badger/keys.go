package badger

import (
	"fmt"

	"github.com/poiesic/hospitium/core"
)

// Key prefixes for different data types
const (
	snapshotPrefix = "idxsnap"
)

// makeSnapshotKey generates a key for an index snapshot by catalog ID.
func makeSnapshotKey(catalogID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", snapshotPrefix, catalogID))
}
