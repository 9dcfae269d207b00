package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the continue command.
func (c *ContinueCmd) Run(deps *Dependencies) error {
	p := deps.Store.Active()
	if strings.TrimSpace(p.Content) == "" {
		fmt.Fprintf(deps.Stderr, "error: the active project has no content to continue\n")
		return mesa.Errorf(mesa.EINVALID, "the active project has no content to continue")
	}

	suggestion, err := workspace.RunTool(&deps.Panel.Continuation, func() (string, error) {
		return deps.Advisor.ContinueText(deps.Ctx, p.Content)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, suggestion)

	if !c.Insert {
		return nil
	}

	content := p.Content + " " + suggestion
	if strings.HasSuffix(p.Content, " ") {
		content = p.Content + suggestion
	}
	if _, err := deps.Store.Update(p.ID, mesa.ProjectUpdate{Content: &content}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}
	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Appended suggestion to project %s\n", p.ID)
	return nil
}
