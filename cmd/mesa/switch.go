package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the switch command.
func (c *SwitchCmd) Run(deps *Dependencies) error {
	if err := deps.Store.SetActive(c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'mesa list' to see available projects.\n", mesa.ErrorMessage(err))
		return err
	}

	p := deps.Store.Active()
	title := p.Title
	if title == "" {
		title = "(sem título)"
	}
	fmt.Fprintf(deps.Stdout, "Switched to %s  %s\n", p.ID, title)
	return nil
}
