// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/internal/i18n"
)

func TestNewModel(t *testing.T) {
	i18n.Init("en")
	m := NewModel(Options{Version: "v0.1.0", Clipboard: false})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	if m.Calculator().State().Display != "0" {
		t.Fatalf("expected a cleared calculator")
	}
	if !strings.Contains(m.View(), "AC") {
		t.Fatalf("expected the keypad in the view:\n%s", m.View())
	}
}
