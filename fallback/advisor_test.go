package fallback_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/fallback"
	"github.com/fwojciec/mesa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdvisor_Define(t *testing.T) {
	t.Parallel()

	t.Run("passes successful lookups through", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			DefineFn: func(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
				return &mesa.DictionaryResult{Word: word, Definition: "def"}, nil
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		result, err := advisor.Define(context.Background(), "palavra")
		require.NoError(t, err)
		assert.Equal(t, "def", result.Definition)
	})

	t.Run("reports failures as unavailable", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			DefineFn: func(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
				return nil, errors.New("connection refused")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		_, err := advisor.Define(context.Background(), "palavra")
		require.Error(t, err)
		assert.Equal(t, mesa.EUNAVAILABLE, mesa.ErrorCode(err))
	})

	t.Run("passes validation errors through unchanged", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			DefineFn: func(ctx context.Context, word string) (*mesa.DictionaryResult, error) {
				return nil, mesa.Errorf(mesa.EINVALID, "word required")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		_, err := advisor.Define(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, mesa.EINVALID, mesa.ErrorCode(err))
	})
}

func TestAdvisor_Rhymes(t *testing.T) {
	t.Parallel()

	t.Run("passes successful lookups through", func(t *testing.T) {
		t.Parallel()

		want := &mesa.RhymeResult{Word: "mar", Rhymes: []mesa.Rhyme{{Word: "lugar"}}}
		next := &mock.Advisor{
			RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
				return want, nil
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		result, err := advisor.Rhymes(context.Background(), "mar")
		require.NoError(t, err)
		assert.Equal(t, want, result)
	})

	t.Run("falls back to the offline suffix table", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
				return nil, errors.New("timeout")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		result, err := advisor.Rhymes(context.Background(), "coração")
		require.NoError(t, err)
		assert.Equal(t, "coração", result.Word)
		require.NotEmpty(t, result.Rhymes)
		assert.Equal(t, mesa.RhymeConsonante, result.Rhymes[0].Type)
	})
}

func TestAdvisor_Reference(t *testing.T) {
	t.Parallel()

	t.Run("serves builtin entries without consulting next", func(t *testing.T) {
		t.Parallel()

		called := false
		next := &mock.Advisor{
			ReferenceFn: func(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
				called = true
				return nil, errors.New("should not be called")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		ref, err := advisor.Reference(context.Background(), "paulo volker")
		require.NoError(t, err)
		assert.Equal(t, "Paulo Volker", ref.Author)
		assert.False(t, called)
	})

	t.Run("passes successful lookups through", func(t *testing.T) {
		t.Parallel()

		want := &mesa.LiteraryReference{Author: "Machado de Assis"}
		next := &mock.Advisor{
			ReferenceFn: func(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
				return want, nil
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		ref, err := advisor.Reference(context.Background(), "machado")
		require.NoError(t, err)
		assert.Equal(t, want, ref)
	})

	t.Run("degrades to a generic placeholder", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			ReferenceFn: func(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
				return nil, errors.New("connection reset")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		ref, err := advisor.Reference(context.Background(), "machado")
		require.NoError(t, err)
		assert.Equal(t, "Não encontrado", ref.Author)
		assert.Equal(t, "Ocorreu um erro ao buscar informações.", ref.Style)
	})

	t.Run("names the API key on permission failures", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			ReferenceFn: func(ctx context.Context, query string) (*mesa.LiteraryReference, error) {
				return nil, errors.New("googleapi: Error 403: permission denied")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		ref, err := advisor.Reference(context.Background(), "machado")
		require.NoError(t, err)
		assert.Contains(t, ref.Style, ".env.local")
	})
}

func TestAdvisor_ReviewSpelling(t *testing.T) {
	t.Parallel()

	t.Run("degrades to a connection explanation", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			ReviewSpellingFn: func(ctx context.Context, text string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		out, err := advisor.ReviewSpelling(context.Background(), "texto")
		require.NoError(t, err)
		assert.Contains(t, out, "indisponível")
	})

	t.Run("degrades to an auth explanation on key failures", func(t *testing.T) {
		t.Parallel()

		next := &mock.Advisor{
			ReviewSpellingFn: func(ctx context.Context, text string) (string, error) {
				return "", errors.New("API key not valid")
			},
		}
		advisor := fallback.NewAdvisor(next, discardLogger())

		out, err := advisor.ReviewSpelling(context.Background(), "texto")
		require.NoError(t, err)
		assert.Contains(t, out, "Autenticação")
	})
}

func TestAdvisor_ContinueText_Degrades(t *testing.T) {
	t.Parallel()

	next := &mock.Advisor{
		ContinueTextFn: func(ctx context.Context, text string) (string, error) {
			return "", errors.New("timeout")
		},
	}
	advisor := fallback.NewAdvisor(next, discardLogger())

	out, err := advisor.ContinueText(context.Background(), "texto")
	require.NoError(t, err)
	assert.Contains(t, out, "inspiração")
}
