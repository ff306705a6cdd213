// Package tui implements the interactive terminal browser for member content.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options controls how the interactive session starts.
type Options struct {
	// Query pre-fills the search input and runs it immediately.
	Query string

	// Home starts on the home feed instead of the search prompt.
	Home bool
}

// Run starts the interactive session and blocks until the user quits.
func Run(options *Options) error {
	if options == nil {
		options = &Options{}
	}

	program := tea.NewProgram(newModel(options), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
