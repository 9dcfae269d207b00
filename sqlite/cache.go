package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/mesa"
)

// Compile-time interface verification.
var _ mesa.QueryCache = (*CacheService)(nil)

// CacheService implements mesa.QueryCache using SQLite. The cache is
// unbounded; entries are only ever overwritten by a newer value for the
// same key.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// Get retrieves a cached value. A miss is reported with ok=false and no
// error.
func (c *CacheService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM cache WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set stores a value, replacing any previous entry for the key.
func (c *CacheService) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC().Format(time.RFC3339))
	return err
}
