// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the small model framework the TUI components share:
// a pointer-friendly Model interface, focus handling and size tracking.
package util

import tea "github.com/charmbracelet/bubbletea"

// Model is a bubbletea model that updates in place and can take focus.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// ModelPointer boxes v so several parents can share and replace it.
func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// BorrowModelFunc runs fn against the concrete model behind m and stores
// the result back. It panics if m does not hold a PT.
func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
