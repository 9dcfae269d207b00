package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the rhyme command.
func (c *RhymeCmd) Run(deps *Dependencies) error {
	result, err := workspace.RunTool(&deps.Panel.Rhymes, func() (*mesa.RhymeResult, error) {
		return deps.Advisor.Rhymes(deps.Ctx, c.Word)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	rhymes := result.Rhymes
	if c.Syllables > 0 {
		filtered := rhymes[:0:0]
		for _, r := range rhymes {
			if r.Syllables == c.Syllables {
				filtered = append(filtered, r)
			}
		}
		rhymes = filtered
	}

	if len(rhymes) == 0 {
		fmt.Fprintf(deps.Stdout, "No rhymes found for %q\n", result.Word)
		return nil
	}

	for _, r := range rhymes {
		if r.Syllables > 0 {
			fmt.Fprintf(deps.Stdout, "%s  (%s, %d sílabas, %s)\n", r.Word, r.Type, r.Syllables, r.Tonicity)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  (%s, %s)\n", r.Word, r.Type, r.Tonicity)
		}
	}

	return nil
}
