package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/mesa"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	upd := mesa.ProjectUpdate{
		Title:    c.Title,
		Content:  c.Content,
		WordGoal: c.Goal,
	}

	if c.Type != nil {
		t := mesa.TextType(*c.Type)
		upd.Type = &t
	}

	if c.ContentFile != nil {
		if c.Content != nil {
			fmt.Fprintf(deps.Stderr, "error: --content and --content-file are mutually exclusive\n")
			return mesa.Errorf(mesa.EINVALID, "--content and --content-file are mutually exclusive")
		}
		data, err := os.ReadFile(*c.ContentFile)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		content := string(data)
		upd.Content = &content
	}

	if upd.Title == nil && upd.Content == nil && upd.Type == nil && upd.WordGoal == nil {
		fmt.Fprintf(deps.Stderr, "error: nothing to change\n")
		return mesa.Errorf(mesa.EINVALID, "nothing to change")
	}

	id := c.ID
	if id == "" {
		id = deps.Store.ActiveID()
	}

	p, err := deps.Store.Update(id, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	if err := deps.Saver.Flush(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mesa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated project %s\n", p.ID)
	return nil
}
