// Package cached implements a mesa.Advisor decorator that memoizes
// lookup results in a mesa.QueryCache. Only the query tools are cached;
// spelling review and continuation depend on the full text and pass
// through. Cache failures are logged and ignored, the wrapped advisor
// remains the source of truth.
package cached

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fwojciec/mesa"
)

// Ensure Advisor implements mesa.Advisor at compile time.
var _ mesa.Advisor = (*Advisor)(nil)

// Advisor is a caching decorator around another mesa.Advisor.
type Advisor struct {
	next   mesa.Advisor
	cache  mesa.QueryCache
	logger *slog.Logger
}

// NewAdvisor creates a new Advisor wrapping next.
func NewAdvisor(next mesa.Advisor, cache mesa.QueryCache, logger *slog.Logger) *Advisor {
	return &Advisor{next: next, cache: cache, logger: logger}
}

// Define looks up a definition, serving repeated queries from cache.
func (a *Advisor) Define(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
	key := "dict_" + normalize(word)

	var cached mesa.DictionaryResult
	if a.get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := a.next.Define(ctx, word)
	if err != nil {
		return nil, err
	}
	a.set(ctx, key, result)
	return result, nil
}

// Rhymes lists rhymes, serving repeated queries from cache.
func (a *Advisor) Rhymes(ctx context.Context, word string) (*mesa.RhymeResult, error) {
	key := "rhyme_" + normalize(word)

	var cached mesa.RhymeResult
	if a.get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := a.next.Rhymes(ctx, word)
	if err != nil {
		return nil, err
	}
	a.set(ctx, key, result)
	return result, nil
}

// Reference looks up a literary reference, serving repeated queries
// from cache. The key carries a version suffix so the cache can be
// invalidated wholesale when the response format changes.
func (a *Advisor) Reference(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
	key := "lit_" + normalize(query) + "_v3"

	var cached mesa.LiteraryReference
	if a.get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := a.next.Reference(ctx, query)
	if err != nil {
		return nil, err
	}
	a.set(ctx, key, result)
	return result, nil
}

// ReviewSpelling passes through uncached.
func (a *Advisor) ReviewSpelling(ctx context.Context, text string) (string, error) {
	return a.next.ReviewSpelling(ctx, text)
}

// ContinueText passes through uncached.
func (a *Advisor) ContinueText(ctx context.Context, text string) (string, error) {
	return a.next.ContinueText(ctx, text)
}

func (a *Advisor) get(ctx context.Context, key string, dest any) bool {
	value, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(value, dest); err != nil {
		a.logger.Warn("cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (a *Advisor) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn("cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := a.cache.Set(ctx, key, data); err != nil {
		a.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
