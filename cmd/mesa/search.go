package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := workspace.RunTool(&deps.Panel.Library, func() ([]mesa.LibraryMatch, error) {
		return deps.Library.Search(deps.Ctx, c.Query)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches for %q\n", c.Query)
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "[%s]\n%s\n\n", m.Source, m.Content)
	}

	return nil
}
