package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/fwojciec/mesa"
)

// Snapshot slot keys. The legacy slot holds a single JSON project object
// written by the first workspace format; it is read as a fallback and
// never written or deleted, so the current slot always wins once one
// exists.
const (
	SlotWorkspace = "workspace.v2"
	SlotLegacy    = "workspace.v1"
)

// Compile-time interface verification.
var _ mesa.SnapshotStore = (*SnapshotService)(nil)

// SnapshotService implements mesa.SnapshotStore using SQLite.
type SnapshotService struct {
	db     *DB
	logger *slog.Logger
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB, logger *slog.Logger) *SnapshotService {
	return &SnapshotService{db: db, logger: logger}
}

// LoadWorkspace reads the current-schema slot, falling back to the
// legacy single-project slot. A corrupt slot is logged and treated as
// absent so startup never fails on bad data. Returns nil, nil when no
// usable snapshot exists.
func (s *SnapshotService) LoadWorkspace(ctx context.Context) ([]*mesa.Project, error) {
	data, ok, err := s.readSlot(ctx, SlotWorkspace)
	if err != nil {
		return nil, err
	}
	if ok {
		var projects []*mesa.Project
		if err := json.Unmarshal(data, &projects); err != nil {
			s.logger.Warn("corrupt workspace snapshot, ignoring", "slot", SlotWorkspace, "error", err)
		} else if len(projects) > 0 {
			return projects, nil
		}
	}

	data, ok, err = s.readSlot(ctx, SlotLegacy)
	if err != nil {
		return nil, err
	}
	if ok {
		var project mesa.Project
		if err := json.Unmarshal(data, &project); err != nil {
			s.logger.Warn("corrupt legacy snapshot, ignoring", "slot", SlotLegacy, "error", err)
		} else {
			return []*mesa.Project{&project}, nil
		}
	}

	return nil, nil
}

// SaveWorkspace overwrites the current-schema slot with the full
// collection.
func (s *SnapshotService) SaveWorkspace(ctx context.Context, projects []*mesa.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (slot, data) VALUES (?, ?)
		ON CONFLICT (slot) DO UPDATE SET data = excluded.data
	`, SlotWorkspace, string(data))
	return err
}

func (s *SnapshotService) readSlot(ctx context.Context, slot string) ([]byte, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM slots WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}
