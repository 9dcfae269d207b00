package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/mesa"
	"golang.org/x/sync/errgroup"
)

// Ensure Library implements mesa.LibrarySearcher at compile time.
var _ mesa.LibrarySearcher = (*Library)(nil)

// Source is a named reference document served over HTTP.
type Source struct {
	Name string
	URL  string
}

// Library searches reference documents fetched over HTTP. Documents
// are fetched in parallel; a source that cannot be fetched contributes
// no matches.
type Library struct {
	client  *http.Client
	sources []Source
	timeout time.Duration
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithLibraryTimeout sets the timeout for document fetches.
// Defaults to DefaultRequestTimeout (10s) if not specified.
func WithLibraryTimeout(d time.Duration) LibraryOption {
	return func(l *Library) {
		l.timeout = d
	}
}

// NewLibrary creates a new Library over the given sources.
func NewLibrary(sources []Source, opts ...LibraryOption) *Library {
	l := &Library{
		sources: sources,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Search scans every source for paragraphs containing query. Results
// keep source order regardless of which fetch finishes first.
func (l *Library) Search(ctx context.Context, query string) ([]mesa.LibraryMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	perSource := make([][]mesa.LibraryMatch, len(l.sources))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		g.Go(func() error {
			text, err := l.fetch(ctx, src.URL)
			if err != nil {
				return nil // skip unreachable sources
			}
			matches := mesa.FindMatches(text, query, src.Name)
			mu.Lock()
			perSource[i] = matches
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []mesa.LibraryMatch
	for _, matches := range perSource {
		results = append(results, matches...)
	}
	return results, nil
}

func (l *Library) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", mesa.Errorf(mesa.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
