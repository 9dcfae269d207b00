package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	p := deps.Store.Active()

	path, err := fs.ExportProject(c.Dir, p, c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported project %s to %s\n", p.ID, path)
	return nil
}
