// Package fallback implements a mesa.Advisor decorator that degrades
// gracefully when the wrapped advisor fails. Rhyme lookups fall back to
// the offline suffix table, literary references to builtin data or a
// placeholder, and the text tools to fixed explanations, so a flaky
// connection or a revoked API key never takes the whole panel down.
package fallback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/offline"
)

// Ensure Advisor implements mesa.Advisor at compile time.
var _ mesa.Advisor = (*Advisor)(nil)

// Advisor is a degrading decorator around another mesa.Advisor.
type Advisor struct {
	next   mesa.Advisor
	logger *slog.Logger
}

// NewAdvisor creates a new Advisor wrapping next.
func NewAdvisor(next mesa.Advisor, logger *slog.Logger) *Advisor {
	return &Advisor{next: next, logger: logger}
}

// Define looks up a definition. There is no offline dictionary, so
// failures surface as an unavailable service rather than degrading.
func (a *Advisor) Define(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
	result, err := a.next.Define(ctx, word)
	if err != nil {
		if mesa.ErrorCode(err) == mesa.EINVALID {
			return nil, err
		}
		a.logger.Warn("dictionary lookup failed", slog.String("word", word), slog.Any("error", err))
		return nil, mesa.Errorf(mesa.EUNAVAILABLE, "Não foi possível consultar o dicionário. Verifique sua conexão ou Chave de API.")
	}
	return result, nil
}

// Rhymes lists rhymes, falling back to the offline suffix table when
// the wrapped advisor fails.
func (a *Advisor) Rhymes(ctx context.Context, word string) (*mesa.RhymeResult, error) {
	result, err := a.next.Rhymes(ctx, word)
	if err != nil {
		if mesa.ErrorCode(err) == mesa.EINVALID {
			return nil, err
		}
		a.logger.Warn("rhyme lookup failed, using offline table", slog.String("word", word), slog.Any("error", err))
		return offline.RhymesFor(word), nil
	}
	return result, nil
}

// Reference looks up a literary reference. Builtin entries are served
// before the wrapped advisor is consulted; failures produce a
// placeholder naming the likely cause.
func (a *Advisor) Reference(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
	if ref, ok := offline.LookupReference(query); ok {
		return ref, nil
	}

	result, err := a.next.Reference(ctx, query)
	if err != nil {
		if mesa.ErrorCode(err) == mesa.EINVALID {
			return nil, err
		}
		a.logger.Warn("reference lookup failed", slog.String("query", query), slog.Any("error", err))

		style := "Ocorreu um erro ao buscar informações."
		if isAuthError(err) {
			style = "Erro de Permissão/API Key. Verifique seu arquivo .env.local"
		}
		return &mesa.LiteraryReference{
			Author: "Não encontrado",
			Period: "-",
			Style:  style,
			Works:  []string{},
			Themes: []string{},
		}, nil
	}
	return result, nil
}

// ReviewSpelling reviews a text, degrading to a fixed explanation when
// the wrapped advisor fails.
func (a *Advisor) ReviewSpelling(ctx context.Context, text string) (string, error) {
	out, err := a.next.ReviewSpelling(ctx, text)
	if err != nil {
		if mesa.ErrorCode(err) == mesa.EINVALID {
			return "", err
		}
		a.logger.Warn("spelling review failed", slog.Any("error", err))
		if isAuthError(err) {
			return "⚠️ Erro de Autenticação: Verifique sua API Key.", nil
		}
		return "Serviço de revisão indisponível no momento. Verifique sua conexão.", nil
	}
	return out, nil
}

// ContinueText suggests a continuation, degrading to a fixed
// explanation when the wrapped advisor fails.
func (a *Advisor) ContinueText(ctx context.Context, text string) (string, error) {
	out, err := a.next.ContinueText(ctx, text)
	if err != nil {
		if mesa.ErrorCode(err) == mesa.EINVALID {
			return "", err
		}
		a.logger.Warn("continuation failed", slog.Any("error", err))
		return "Não foi possível invocar a inspiração agora. (Erro de Conexão ou API)", nil
	}
	return out, nil
}

// isAuthError recognizes permission and API key failures by the status
// codes and phrases the generative service puts in its error messages.
func isAuthError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "403") ||
		strings.Contains(msg, "401") ||
		strings.Contains(strings.ToLower(msg), "api key")
}
