package main

import (
	"fmt"
	"time"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	activeID := deps.Store.ActiveID()

	for _, p := range deps.Store.Projects() {
		marker := " "
		if p.ID == activeID {
			marker = "*"
		}
		title := p.Title
		if title == "" {
			title = "(sem título)"
		}
		updated := time.UnixMilli(p.UpdatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(deps.Stdout, "%s %s  %-8s  %s  %s\n", marker, p.ID, p.Type, updated, title)
	}

	return nil
}
