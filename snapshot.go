package mesa

import "context"

// SnapshotStore mirrors the full project collection to durable local
// storage. The stored snapshot is a whole-collection overwrite; there is
// no per-project persistence and the last write wins.
type SnapshotStore interface {
	// LoadWorkspace reads the most recent usable snapshot: the
	// current-schema slot first, then the legacy single-project slot.
	// Corrupt slots are logged and skipped. Returns nil, nil when no
	// usable snapshot exists.
	LoadWorkspace(ctx context.Context) ([]*Project, error)

	// SaveWorkspace overwrites the current-schema slot with the given
	// collection.
	SaveWorkspace(ctx context.Context, projects []*Project) error
}
