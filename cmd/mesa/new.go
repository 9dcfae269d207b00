package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the new command.
func (c *NewCmd) Run(deps *Dependencies) error {
	p := deps.Store.Create(c.Title)

	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	title := p.Title
	if title == "" {
		title = "(sem título)"
	}
	fmt.Fprintf(deps.Stdout, "Created project %s  %s\n", p.ID, title)
	return nil
}
