package main

import (
	"fmt"

	"github.com/fwojciec/mesa"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	p := deps.Store.Active()
	m := mesa.ComputeMetrics(p.Content, p.WordGoal)

	title := p.Title
	if title == "" {
		title = "(sem título)"
	}

	fmt.Fprintf(deps.Stdout, "%s\n", title)
	fmt.Fprintf(deps.Stdout, "  words:        %d\n", m.Words)
	fmt.Fprintf(deps.Stdout, "  chars:        %d\n", m.Chars)
	fmt.Fprintf(deps.Stdout, "  paragraphs:   %d\n", m.Paragraphs)
	fmt.Fprintf(deps.Stdout, "  reading time: %d min\n", m.ReadingTime)
	if p.WordGoal > 0 {
		fmt.Fprintf(deps.Stdout, "  progress:     %.1f%% of %d words\n", m.Progress, p.WordGoal)
	}

	return nil
}
