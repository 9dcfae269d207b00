package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the ref command.
func (c *RefCmd) Run(deps *Dependencies) error {
	ref, err := workspace.RunTool(&deps.Panel.Reference, func() (*mesa.LiteraryReference, error) {
		return deps.Advisor.Reference(deps.Ctx, c.Query)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", ref.Author)
	fmt.Fprintf(deps.Stdout, "  período: %s\n", ref.Period)
	fmt.Fprintf(deps.Stdout, "  estilo: %s\n", ref.Style)
	if len(ref.Works) > 0 {
		fmt.Fprintf(deps.Stdout, "  obras: %s\n", strings.Join(ref.Works, "; "))
	}
	if len(ref.Themes) > 0 {
		fmt.Fprintf(deps.Stdout, "  temas: %s\n", strings.Join(ref.Themes, ", "))
	}

	return nil
}
