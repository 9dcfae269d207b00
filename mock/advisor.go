// Package mock provides mock implementations of mesa service interfaces
// for testing.
package mock

import (
	"context"

	"github.com/fwojciec/mesa"
)

var _ mesa.Advisor = (*Advisor)(nil)

// Advisor is a mock implementation of mesa.Advisor.
type Advisor struct {
	DefineFn         func(ctx context.Context, word string) (*mesa.DictionaryResult, error)
	RhymesFn         func(ctx context.Context, word string) (*mesa.RhymeResult, error)
	ReferenceFn      func(ctx context.Context, query string) (*mesa.LiteraryReference, error)
	ReviewSpellingFn func(ctx context.Context, text string) (string, error)
	ContinueTextFn   func(ctx context.Context, text string) (string, error)
}

func (a *Advisor) Define(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
	return a.DefineFn(ctx, word)
}

func (a *Advisor) Rhymes(ctx context.Context, word string) (*mesa.RhymeResult, error) {
	return a.RhymesFn(ctx, word)
}

func (a *Advisor) Reference(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
	return a.ReferenceFn(ctx, query)
}

func (a *Advisor) ReviewSpelling(ctx context.Context, text string) (string, error) {
	return a.ReviewSpellingFn(ctx, text)
}

func (a *Advisor) ContinueText(ctx context.Context, text string) (string, error) {
	return a.ContinueTextFn(ctx, text)
}
