// Package workspace implements the in-memory project store and its
// debounced persistence bridge.
package workspace

import (
	"sync"
	"time"

	"github.com/fwojciec/mesa"
	"github.com/google/uuid"
)

// Store holds the ordered collection of writing projects and the active
// project identifier. It is the single source of truth for workspace
// state; its mutation methods are the only write path. Every mutation
// notifies registered observers, which is how the autosaver schedules
// writes.
type Store struct {
	mu       sync.Mutex
	projects []*mesa.Project
	activeID string
	now      func() int64
	newID    func() string
	onMutate []func()
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to stamp timestamps, in milliseconds
// since the Unix epoch. Used by tests for determinism.
func WithClock(now func() int64) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to mint project IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates a Store seeded with a single blank project, so the
// collection is never empty.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   func() int64 { return time.Now().UnixMilli() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	p := s.blankProject("")
	s.projects = []*mesa.Project{p}
	s.activeID = p.ID

	return s
}

func (s *Store) blankProject(title string) *mesa.Project {
	now := s.now()
	return &mesa.Project{
		ID:        s.newID(),
		Title:     title,
		Type:      mesa.TypeGeral,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
		WordGoal:  mesa.DefaultWordGoal,
	}
}

// OnMutate registers an observer invoked after every mutation of the
// collection. Observers must not call back into the Store.
func (s *Store) OnMutate(fn func()) {
	s.mu.Lock()
	s.onMutate = append(s.onMutate, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.onMutate))
	copy(observers, s.onMutate)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Projects returns the ordered collection as independent copies.
func (s *Store) Projects() []*mesa.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*mesa.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of projects in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// ActiveID returns the identifier of the active project. When the stored
// identifier no longer resolves to a member, the first project is
// considered active.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked().ID
}

// Active returns a copy of the active project.
func (s *Store) Active() *mesa.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked().Clone()
}

func (s *Store) activeLocked() *mesa.Project {
	for _, p := range s.projects {
		if p.ID == s.activeID {
			return p
		}
	}
	return s.projects[0]
}

func (s *Store) findLocked(id string) *mesa.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Create prepends a new blank project with the given title and makes it
// active. Newly created projects carry the default type and word goal.
func (s *Store) Create(title string) *mesa.Project {
	s.mu.Lock()
	p := s.blankProject(title)
	s.projects = append([]*mesa.Project{p}, s.projects...)
	s.activeID = p.ID
	s.mu.Unlock()

	s.notify()
	return p.Clone()
}

// Import prepends a new project seeded with the contents of an uploaded
// file and makes it active.
func (s *Store) Import(title, content string) *mesa.Project {
	s.mu.Lock()
	p := s.blankProject(title)
	p.Content = content
	s.projects = append([]*mesa.Project{p}, s.projects...)
	s.activeID = p.ID
	s.mu.Unlock()

	s.notify()
	return p.Clone()
}

// Delete removes a project from the collection. Deleting the sole
// remaining project is refused and leaves the collection unchanged. When
// the deleted project was active, activation falls to the new first
// element.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	if len(s.projects) <= 1 {
		s.mu.Unlock()
		return mesa.Errorf(mesa.ECONFLICT, "the last project cannot be deleted")
	}

	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return mesa.Errorf(mesa.ENOTFOUND, "project not found")
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.projects[0].ID
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Update merges the non-nil fields of upd into the identified project
// and stamps its update time. Returns the updated project as a copy.
func (s *Store) Update(id string, upd mesa.ProjectUpdate) (*mesa.Project, error) {
	s.mu.Lock()
	p := s.findLocked(id)
	if p == nil {
		s.mu.Unlock()
		return nil, mesa.Errorf(mesa.ENOTFOUND, "project not found")
	}

	if upd.Type != nil && !upd.Type.Valid() {
		s.mu.Unlock()
		return nil, mesa.Errorf(mesa.EINVALID, "unknown project type %q", *upd.Type)
	}
	if upd.WordGoal != nil && *upd.WordGoal < 0 {
		s.mu.Unlock()
		return nil, mesa.Errorf(mesa.EINVALID, "word goal must not be negative")
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.WordGoal != nil {
		p.WordGoal = *upd.WordGoal
	}
	p.UpdatedAt = s.now()

	out := p.Clone()
	s.mu.Unlock()

	s.notify()
	return out, nil
}

// UpdateActive applies an update to the active project.
func (s *Store) UpdateActive(upd mesa.ProjectUpdate) (*mesa.Project, error) {
	return s.Update(s.ActiveID(), upd)
}

// SetActive switches the active project. Switching does not mutate the
// collection and therefore does not trigger a save.
func (s *Store) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		return mesa.Errorf(mesa.ENOTFOUND, "project not found")
	}
	s.activeID = id
	return nil
}

// Adopt replaces the collection wholesale with a previously persisted
// snapshot, activating its first element. An empty snapshot is ignored.
// Adoption is a load-time operation and does not trigger a save.
func (s *Store) Adopt(projects []*mesa.Project) {
	if len(projects) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = make([]*mesa.Project, len(projects))
	for i, p := range projects {
		s.projects[i] = p.Clone()
	}
	s.activeID = s.projects[0].ID
}
