// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg carries a one-line message for the footer. An empty message
// clears it.
type StatusMsg string

func SetStatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(text) }
}
