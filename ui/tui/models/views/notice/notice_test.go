// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package notice

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/internal/i18n"
)

func TestNotice_ClosesOnKey(t *testing.T) {
	i18n.Init("en")
	m := New("hello")

	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Fatalf("unrelated key should be ignored")
	}
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		if cmd := m.Update(k); cmd == nil {
			t.Fatalf("%s should close the notice", k)
		}
	}
}

func TestNotice_ViewWraps(t *testing.T) {
	m := New(strings.Repeat("word ", 20))
	for _, line := range strings.Split(m.View(), "\n") {
		if len(line) > maxWidth {
			t.Fatalf("line wider than %d: %q", maxWidth, line)
		}
	}
	if _, km := m.Focus(); km == nil {
		t.Fatalf("expected a key map")
	}
}
