package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm clearing the content\n")
		return mesa.Errorf(mesa.EINVALID, "use --force to confirm clearing the content")
	}

	empty := ""
	p, err := deps.Store.UpdateActive(mesa.ProjectUpdate{Content: &empty})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared project %s\n", p.ID)
	return nil
}
