package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Run executes the define command.
func (c *DefineCmd) Run(deps *Dependencies) error {
	result, err := workspace.RunTool(&deps.Panel.Dictionary, func() (*mesa.DictionaryResult, error) {
		return deps.Advisor.Define(deps.Ctx, c.Word)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	if result.Definition == "" && len(result.DidYouMean) > 0 {
		fmt.Fprintf(deps.Stdout, "Você quis dizer: %s\n", strings.Join(result.DidYouMean, ", "))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n", result.Word)
	fmt.Fprintf(deps.Stdout, "  %s\n", result.Definition)
	if result.Etymology != "" {
		fmt.Fprintf(deps.Stdout, "  etimologia: %s\n", result.Etymology)
	}
	if len(result.Synonyms) > 0 {
		fmt.Fprintf(deps.Stdout, "  sinônimos: %s\n", strings.Join(result.Synonyms, ", "))
	}
	if len(result.Antonyms) > 0 {
		fmt.Fprintf(deps.Stdout, "  antônimos: %s\n", strings.Join(result.Antonyms, ", "))
	}

	return nil
}
