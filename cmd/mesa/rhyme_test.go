package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mesa"
	main "github.com/fwojciec/mesa/cmd/mesa"
	"github.com/fwojciec/mesa/mock"
	"github.com/fwojciec/mesa/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRhymeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the rhymes with their classification", func(t *testing.T) {
		t.Parallel()

		deps, _, stdout, _ := testDeps(t)
		deps.Advisor = &mock.Advisor{
			RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
				return &mesa.RhymeResult{
					Word: word,
					Rhymes: []mesa.Rhyme{
						{Word: "lugar", Type: mesa.RhymeConsonante, Syllables: 2, Tonicity: mesa.TonicityOxitona},
						{Word: "altar", Type: mesa.RhymeConsonante, Tonicity: mesa.TonicityOxitona},
					},
				}, nil
			},
		}

		cmd := &main.RhymeCmd{Word: "mar"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "lugar  (consonante, 2 sílabas, oxítona)")
		assert.Contains(t, output, "altar  (consonante, oxítona)")
		assert.Equal(t, workspace.ToolSucceeded, deps.Panel.Rhymes.Status())
	})

	t.Run("filters by syllable count", func(t *testing.T) {
		t.Parallel()

		deps, _, stdout, _ := testDeps(t)
		deps.Advisor = &mock.Advisor{
			RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
				return &mesa.RhymeResult{
					Word: word,
					Rhymes: []mesa.Rhyme{
						{Word: "lugar", Type: mesa.RhymeConsonante, Syllables: 2, Tonicity: mesa.TonicityOxitona},
						{Word: "devagar", Type: mesa.RhymeConsonante, Syllables: 3, Tonicity: mesa.TonicityOxitona},
					},
				}, nil
			},
		}

		cmd := &main.RhymeCmd{Word: "mar", Syllables: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "devagar")
		assert.NotContains(t, stdout.String(), "lugar")
	})

	t.Run("reports an empty result", func(t *testing.T) {
		t.Parallel()

		deps, _, stdout, _ := testDeps(t)
		deps.Advisor = &mock.Advisor{
			RhymesFn: func(ctx context.Context, word string) (*mesa.RhymeResult, error) {
				return &mesa.RhymeResult{Word: word}, nil
			},
		}

		cmd := &main.RhymeCmd{Word: "xyz"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No rhymes found")
	})
}
