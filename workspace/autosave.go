package workspace

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mesa"
)

// DefaultDebounce is the quiet period between the last mutation and the
// persisted write.
const DefaultDebounce = time.Second

// Autosaver mirrors the Store to durable storage. Writes are debounced:
// each mutation resets a single pending timer, so only the final state
// of a burst of edits is persisted. Save failures are logged and
// swallowed; the in-memory store stays authoritative for the session.
type Autosaver struct {
	store    *Store
	snapshot mesa.SnapshotStore
	logger   *slog.Logger
	delay    time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	lastHash uint64
	closed   bool
}

// AutosaverOption configures an Autosaver.
type AutosaverOption func(*Autosaver)

// WithDebounce sets the quiet period. Defaults to DefaultDebounce.
func WithDebounce(d time.Duration) AutosaverOption {
	return func(a *Autosaver) {
		a.delay = d
	}
}

// NewAutosaver creates an Autosaver and registers it as a mutation
// observer on the store.
func NewAutosaver(store *Store, snapshot mesa.SnapshotStore, logger *slog.Logger, opts ...AutosaverOption) *Autosaver {
	a := &Autosaver{
		store:    store,
		snapshot: snapshot,
		logger:   logger,
		delay:    DefaultDebounce,
	}
	for _, opt := range opts {
		opt(a)
	}

	store.OnMutate(a.Schedule)
	return a
}

// Schedule arms the debounce timer, cancelling any pending write.
func (a *Autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		if err := a.save(context.Background()); err != nil {
			a.logger.Warn("autosave failed", "error", err)
		}
	})
}

// Flush cancels any pending timer and writes the current state
// immediately. Tests and the CLI exit path use Flush for deterministic
// persistence instead of waiting out the quiet period.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	return a.save(ctx)
}

// Close flushes pending state and stops the autosaver.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	return a.save(context.Background())
}

// save persists the full collection. Consecutive identical snapshots are
// skipped: the serialized collection is hashed and compared with the
// last successful write.
func (a *Autosaver) save(ctx context.Context) error {
	projects := a.store.Projects()

	data, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	sum := xxhash.Sum64(data)

	a.mu.Lock()
	if sum == a.lastHash {
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()

	if err := a.snapshot.SaveWorkspace(ctx, projects); err != nil {
		return err
	}

	a.mu.Lock()
	a.lastHash = sum
	a.mu.Unlock()
	return nil
}
