package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the review command.
func (c *ReviewCmd) Run(deps *Dependencies) error {
	p := deps.Store.Active()
	if strings.TrimSpace(p.Content) == "" {
		fmt.Fprintf(deps.Stderr, "error: the active project has no content to review\n")
		return mesa.Errorf(mesa.EINVALID, "the active project has no content to review")
	}

	feedback, err := workspace.RunTool(&deps.Panel.Spelling, func() (string, error) {
		return deps.Advisor.ReviewSpelling(deps.Ctx, p.Content)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, feedback)
	return nil
}
