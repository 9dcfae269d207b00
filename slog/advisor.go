// Package slog provides logging decorators for mesa services using the
// standard library's structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mesa"
)

// Ensure LoggingAdvisor implements mesa.Advisor.
var _ mesa.Advisor = (*LoggingAdvisor)(nil)

// LoggingAdvisor wraps an Advisor with per-tool logging.
type LoggingAdvisor struct {
	next   mesa.Advisor
	logger *slog.Logger
}

// NewLoggingAdvisor creates a new LoggingAdvisor.
func NewLoggingAdvisor(next mesa.Advisor, logger *slog.Logger) *LoggingAdvisor {
	return &LoggingAdvisor{next: next, logger: logger}
}

// Define delegates to the wrapped advisor and logs the lookup.
func (a *LoggingAdvisor) Define(ctx context.Context, word string) (result *mesa.DictionaryResult, err error) {
	defer func(begin time.Time) {
		a.logger.Info("dictionary lookup",
			"word", word,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Define(ctx, word)
}

// Rhymes delegates to the wrapped advisor and logs the lookup.
func (a *LoggingAdvisor) Rhymes(ctx context.Context, word string) (result *mesa.RhymeResult, err error) {
	defer func(begin time.Time) {
		count := 0
		if result != nil {
			count = len(result.Rhymes)
		}
		a.logger.Info("rhyme lookup",
			"word", word,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Rhymes(ctx, word)
}

// Reference delegates to the wrapped advisor and logs the lookup.
func (a *LoggingAdvisor) Reference(ctx context.Context, query string) (ref *mesa.LiteraryReference, err error) {
	defer func(begin time.Time) {
		a.logger.Info("reference lookup",
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Reference(ctx, query)
}

// ReviewSpelling delegates to the wrapped advisor and logs the review.
// Only the text length is logged, never the text itself.
func (a *LoggingAdvisor) ReviewSpelling(ctx context.Context, text string) (out string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("spelling review",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ReviewSpelling(ctx, text)
}

// ContinueText delegates to the wrapped advisor and logs the request.
// Only the text length is logged, never the text itself.
func (a *LoggingAdvisor) ContinueText(ctx context.Context, text string) (out string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("continuation",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ContinueText(ctx, text)
}
