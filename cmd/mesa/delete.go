package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mesa.Errorf(mesa.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.Delete(c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted project %s\n", c.ID)
	return nil
}
