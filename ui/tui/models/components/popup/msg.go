// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/ui/tui/util"
)

type openMsg struct {
	Model *util.Model
}

type closeMsg struct{}

// Open shows m on top of the injector's child until Close is sent.
func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// Close dismisses the topmost popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
