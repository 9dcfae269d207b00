package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSlot(t *testing.T, db *sqlite.DB, slot, data string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO slots (slot, data) VALUES (?, ?)
		ON CONFLICT (slot) DO UPDATE SET data = excluded.data
	`, slot, data)
	require.NoError(t, err)
}

func readSlot(t *testing.T, db *sqlite.DB, slot string) (string, bool) {
	t.Helper()
	var data string
	err := db.QueryRowContext(context.Background(), "SELECT data FROM slots WHERE slot = ?", slot).Scan(&data)
	if err != nil {
		return "", false
	}
	return data, true
}

func TestSnapshotService_LoadWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when no snapshot exists", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		projects, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		assert.Nil(t, projects)
	})

	t.Run("adopts the current slot verbatim", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		want := []*mesa.Project{
			{ID: "a", Title: "Um", Version: 1, CreatedAt: 1, UpdatedAt: 2},
			{ID: "b", Title: "Dois", Version: 1, CreatedAt: 3, UpdatedAt: 3},
		}
		data, err := json.Marshal(want)
		require.NoError(t, err)
		writeSlot(t, db, sqlite.SlotWorkspace, string(data))

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("falls back to the legacy single-project slot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		legacy := &mesa.Project{ID: "old", Title: "Antigo", Version: 1, CreatedAt: 1, UpdatedAt: 2}
		data, err := json.Marshal(legacy)
		require.NoError(t, err)
		writeSlot(t, db, sqlite.SlotLegacy, string(data))

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, legacy, got[0])

		// The legacy slot is a read-only fallback and is left untouched.
		raw, ok := readSlot(t, db, sqlite.SlotLegacy)
		require.True(t, ok)
		assert.JSONEq(t, string(data), raw)
	})

	t.Run("current slot wins when both slots exist", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		current := []*mesa.Project{{ID: "new", Version: 1}}
		data, err := json.Marshal(current)
		require.NoError(t, err)
		writeSlot(t, db, sqlite.SlotWorkspace, string(data))
		writeSlot(t, db, sqlite.SlotLegacy, `{"id":"old","version":1}`)

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0].ID)
	})

	t.Run("corrupt current slot falls back to legacy", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		writeSlot(t, db, sqlite.SlotWorkspace, "{not json")
		writeSlot(t, db, sqlite.SlotLegacy, `{"id":"old","version":1}`)

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "old", got[0].ID)
	})

	t.Run("corrupt slots are treated as no data", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		writeSlot(t, db, sqlite.SlotWorkspace, "{not json")
		writeSlot(t, db, sqlite.SlotLegacy, "also not json")

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty current collection is treated as no data", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())

		writeSlot(t, db, sqlite.SlotWorkspace, "[]")

		got, err := svc.LoadWorkspace(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSnapshotService_SaveWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())
		ctx := context.Background()

		want := []*mesa.Project{
			{ID: "a", Title: "Poema", Content: "verso\n\noutro", Type: mesa.TypePoema, CreatedAt: 1, UpdatedAt: 2, Version: 1, WordGoal: 100},
			{ID: "b", Title: "Crônica ç ã", Content: "texto", Type: mesa.TypeCronica, CreatedAt: 3, UpdatedAt: 4, Version: 1},
		}

		require.NoError(t, svc.SaveWorkspace(ctx, want))

		got, err := svc.LoadWorkspace(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("overwrites the previous snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db, discardLogger())
		ctx := context.Background()

		require.NoError(t, svc.SaveWorkspace(ctx, []*mesa.Project{{ID: "a", Version: 1}}))
		require.NoError(t, svc.SaveWorkspace(ctx, []*mesa.Project{{ID: "b", Version: 1}}))

		got, err := svc.LoadWorkspace(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)
	})
}
