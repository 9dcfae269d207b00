package main_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/fwojciec/mesa"
	main "github.com/fwojciec/mesa/cmd/mesa"
	"github.com/fwojciec/mesa/mock"
	"github.com/fwojciec/mesa/workspace"
)

// snapshotRecorder records every workspace write for assertions.
type snapshotRecorder struct {
	mu     sync.Mutex
	writes [][]*mesa.Project
}

func (r *snapshotRecorder) LoadWorkspace(ctx context.Context) ([]*mesa.Project, error) {
	return nil, nil
}

func (r *snapshotRecorder) SaveWorkspace(ctx context.Context, projects []*mesa.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, projects)
	return nil
}

func (r *snapshotRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

func (r *snapshotRecorder) last() []*mesa.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return nil
	}
	return r.writes[len(r.writes)-1]
}

// testDeps builds Dependencies around a deterministic store. The seeded
// blank project gets ID p1, subsequent projects p2, p3, and so on.
// Timestamps tick by one millisecond per stamp.
func testDeps(t *testing.T) (*main.Dependencies, *snapshotRecorder, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var tick int64
	var seq int
	store := workspace.NewStore(
		workspace.WithClock(func() int64 {
			tick++
			return 1000 + tick
		}),
		workspace.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("p%d", seq)
		}),
	)

	recorder := &snapshotRecorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	saver := workspace.NewAutosaver(store, recorder, logger)
	t.Cleanup(func() { saver.Close() })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Store:  store,
		Saver:  saver,
		Panel:  &workspace.Panel{},
	}

	return deps, recorder, stdout, stderr
}

// failingAdvisor returns a mock whose every method fails with the given
// error.
func failingAdvisor(err error) *mock.Advisor {
	return &mock.Advisor{
		DefineFn: func(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
			return nil, err
		},
		RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
			return nil, err
		},
		ReferenceFn: func(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
			return nil, err
		},
		ReviewSpellingFn: func(ctx context.Context, text string) (string, error) {
			return "", err
		},
		ContinueTextFn: func(ctx context.Context, text string) (string, error) {
			return "", err
		},
	}
}
