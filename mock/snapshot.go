package mock

import (
	"context"

	"github.com/fwojciec/mesa"
)

var _ mesa.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of mesa.SnapshotStore.
type SnapshotStore struct {
	LoadWorkspaceFn func(ctx context.Context) ([]*mesa.Project, error)
	SaveWorkspaceFn func(ctx context.Context, projects []*mesa.Project) error
}

func (s *SnapshotStore) LoadWorkspace(ctx context.Context) ([]*mesa.Project, error) {
	return s.LoadWorkspaceFn(ctx)
}

func (s *SnapshotStore) SaveWorkspace(ctx context.Context, projects []*mesa.Project) error {
	return s.SaveWorkspaceFn(ctx, projects)
}
