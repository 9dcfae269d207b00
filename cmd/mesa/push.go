package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the push command.
func (c *PushCmd) Run(deps *Dependencies) error {
	p := deps.Store.Active()

	record, err := deps.Mirror.Push(deps.Ctx, p.Title, p.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q to the remote store (record %s)\n", record.Title, record.ID)
	return nil
}
