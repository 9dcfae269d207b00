package main

import (
	"context"
	"io"

	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/workspace"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Store   *workspace.Store
	Saver   *workspace.Autosaver
	Panel   *workspace.Panel
	Advisor mesa.Advisor
	Library mesa.LibrarySearcher
	Mirror  mesa.RemoteMirror
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List     ListCmd     `cmd:"" help:"List all projects in the workspace"`
	New      NewCmd      `cmd:"" help:"Create a new project and make it active"`
	Switch   SwitchCmd   `cmd:"" help:"Switch the active project"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a project"`
	Edit     EditCmd     `cmd:"" help:"Edit fields of the active project"`
	Clear    ClearCmd    `cmd:"" help:"Clear the content of the active project"`
	Stats    StatsCmd    `cmd:"" help:"Show text metrics for the active project"`
	Import   ImportCmd   `cmd:"" help:"Import a .txt or .md file as a new project"`
	Export   ExportCmd   `cmd:"" help:"Export the active project to a file"`
	Define   DefineCmd   `cmd:"" help:"Look up the definition of a word"`
	Rhyme    RhymeCmd    `cmd:"" help:"List rhymes for a word"`
	Ref      RefCmd      `cmd:"" help:"Look up an author, work, or literary movement"`
	Review   ReviewCmd   `cmd:"" help:"Review the active project for spelling issues"`
	Continue ContinueCmd `cmd:"" help:"Suggest a continuation for the active project"`
	Search   SearchCmd   `cmd:"" help:"Search the reference library"`
	Push     PushCmd     `cmd:"" help:"Push the active project to the remote save endpoint"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// NewCmd is the "new" subcommand.
type NewCmd struct {
	Title string `arg:"" optional:"" help:"Project title"`
}

// SwitchCmd is the "switch" subcommand.
type SwitchCmd struct {
	ID string `arg:"" help:"Project ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Project ID"`
	Force bool   `help:"Confirm deletion"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID          string  `help:"Project ID (defaults to the active project)"`
	Title       *string `help:"New title"`
	Content     *string `help:"New content"`
	ContentFile *string `help:"Read new content from a file"`
	Type        *string `help:"Genre tag: conto, poema, crônica or geral"`
	Goal        *int    `help:"Word goal"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm clearing the content"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path string `arg:"" help:"Path to a .txt or .md file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `default:"." help:"Destination directory"`
	Format string `default:"txt" help:"File format: txt or md"`
}

// DefineCmd is the "define" subcommand.
type DefineCmd struct {
	Word string `arg:"" help:"Word to define"`
}

// RhymeCmd is the "rhyme" subcommand.
type RhymeCmd struct {
	Word      string `arg:"" help:"Word to rhyme"`
	Syllables int    `help:"Only show rhymes with this syllable count"`
}

// RefCmd is the "ref" subcommand.
type RefCmd struct {
	Query string `arg:"" help:"Author, work, or movement to look up"`
}

// ReviewCmd is the "review" subcommand.
type ReviewCmd struct{}

// ContinueCmd is the "continue" subcommand.
type ContinueCmd struct {
	Insert bool `help:"Append the suggestion to the active project"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to search for"`
}

// PushCmd is the "push" subcommand.
type PushCmd struct{}
