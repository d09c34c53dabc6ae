// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/ui/tui/models/views/calculator"
	"github.com/toeirei/keycalc/ui/tui/models/views/root"
)

// Options configures a TUI run.
type Options struct {
	Version   string
	AltScreen bool
	Clipboard bool

	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// NewModel builds the root model for opts.
func NewModel(opts Options) *root.Model {
	var calcOpts []calculator.Option
	if opts.Clipboard && calculator.SystemClipboardAvailable() {
		calcOpts = append(calcOpts, calculator.WithClipboard(calculator.SystemClipboard{}))
	}
	return root.New(opts.Version, calcOpts...)
}

// Run blocks until the user quits.
func Run(opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	_, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	return err
}
