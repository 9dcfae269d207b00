package mock

import (
	"context"

	"github.com/fwojciec/mesa"
)

var _ mesa.LibrarySearcher = (*LibrarySearcher)(nil)

// LibrarySearcher is a mock implementation of mesa.LibrarySearcher.
type LibrarySearcher struct {
	SearchFn func(ctx context.Context, query string) ([]mesa.LibraryMatch, error)
}

func (l *LibrarySearcher) Search(ctx context.Context, query string) ([]mesa.LibraryMatch, error) {
	return l.SearchFn(ctx, query)
}
