package workspace

import (
	"sync"

	"github.com/fwojciec/mesa"
)

// ToolStatus enumerates the lifecycle of an advisory tool request.
type ToolStatus int

// Tool request states.
const (
	ToolIdle ToolStatus = iota
	ToolLoading
	ToolSucceeded
	ToolFailed
)

// ToolSlot tracks the state of a single advisory tool. Begin issues a
// generation number for each request; Succeed and Fail apply an outcome
// only when its generation is still the latest, so a slow response can
// never overwrite the result of a newer request.
type ToolSlot[T any] struct {
	mu     sync.Mutex
	gen    uint64
	status ToolStatus
	result T
	reason string
}

// Begin marks the slot as loading and returns the generation of the new
// request.
func (s *ToolSlot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.status = ToolLoading
	s.reason = ""
	return s.gen
}

// Succeed records a result for the given generation. Stale generations
// are discarded and Succeed reports whether the result was applied.
func (s *ToolSlot[T]) Succeed(gen uint64, result T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.status = ToolSucceeded
	s.result = result
	s.reason = ""
	return true
}

// Fail records a failure reason for the given generation. Stale
// generations are discarded and Fail reports whether the failure was
// applied.
func (s *ToolSlot[T]) Fail(gen uint64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.status = ToolFailed
	s.reason = reason
	return true
}

// Dismiss clears the slot back to idle.
func (s *ToolSlot[T]) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.status = ToolIdle
	s.result = zero
	s.reason = ""
}

// Status returns the current state of the slot.
func (s *ToolSlot[T]) Status() ToolStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Result returns the last applied result and whether one is present.
func (s *ToolSlot[T]) Result() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.status == ToolSucceeded
}

// Reason returns the failure reason, if any.
func (s *ToolSlot[T]) Reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// Panel aggregates the per-tool state of the support panel. Each tool is
// independent; overlapping requests to the same tool are resolved by the
// slot's generation guard.
type Panel struct {
	Dictionary   ToolSlot[*mesa.DictionaryResult]
	Rhymes       ToolSlot[*mesa.RhymeResult]
	Reference    ToolSlot[*mesa.LiteraryReference]
	Spelling     ToolSlot[string]
	Continuation ToolSlot[string]
	Library      ToolSlot[[]mesa.LibraryMatch]
}

// RunTool executes fn and applies its outcome to the slot, honoring the
// generation guard.
func RunTool[T any](slot *ToolSlot[T], fn func() (T, error)) (T, error) {
	gen := slot.Begin()
	result, err := fn()
	if err != nil {
		slot.Fail(gen, mesa.ErrorMessage(err))
		return result, err
	}
	slot.Succeed(gen, result)
	return result, nil
}
