package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	title, content, err := fs.ReadProject(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	p := deps.Store.Import(title, content)

	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %s as project %s\n", c.Path, p.ID)
	return nil
}
