// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/internal/i18n"
	windowtitle "github.com/toeirei/keycalc/ui/tui/models/helpers/title"
	"github.com/toeirei/keycalc/ui/tui/util"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newStarted(t *testing.T) *Model {
	t.Helper()
	i18n.Init("en")
	m := New("v1.0.0")
	m.Init()
	// Init announces the key map through a command; deliver it by hand
	_, keyMap := m.stack.Focus()
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keyMap})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

// send feeds msg to m and returns the message produced by the resulting
// command, if any.
func send(m *Model, msg tea.Msg) tea.Msg {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func isQuit(msg tea.Msg) bool {
	_, ok := msg.(tea.QuitMsg)
	return ok
}

func TestRoot_KeysReachCalculator(t *testing.T) {
	m := newStarted(t)
	for _, r := range "12+3=" {
		send(m, runes(string(r)))
	}
	if got := m.Calculator().State().Display; got != "15" {
		t.Fatalf("expected 15, got %q", got)
	}
	if !strings.Contains(m.View(), "15") {
		t.Fatalf("view does not show the result:\n%s", m.View())
	}
}

func TestRoot_Quit(t *testing.T) {
	m := newStarted(t)
	if !isQuit(send(m, runes("q"))) {
		t.Fatalf("q should quit")
	}
	if !isQuit(send(m, tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestRoot_AboutPopup(t *testing.T) {
	m := newStarted(t)

	open := send(m, runes("a"))
	if open == nil {
		t.Fatalf("a should open the about popup")
	}
	send(m, open)
	if !m.popups.Open() {
		t.Fatalf("expected an open popup")
	}
	if !strings.Contains(m.View(), "v1.0.0") {
		t.Fatalf("about popup should show the version:\n%s", m.View())
	}

	// the popup owns q and digits while open
	send(m, runes("7"))
	if got := m.Calculator().State().Display; got != "0" {
		t.Fatalf("keys leaked past the popup: %q", got)
	}
	closeMsg := send(m, runes("q"))
	if closeMsg == nil || isQuit(closeMsg) {
		t.Fatalf("q should close the popup, got %#v", closeMsg)
	}
	send(m, closeMsg)
	if m.popups.Open() {
		t.Fatalf("popup should be closed")
	}

	// ctrl+c quits even with a popup open
	send(m, send(m, runes("a")))
	if !isQuit(send(m, tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Fatalf("ctrl+c should quit with a popup open")
	}
}

func TestRoot_HelpToggle(t *testing.T) {
	m := newStarted(t)
	before := m.View()
	send(m, runes("?"))
	if m.View() == before {
		t.Fatalf("? should expand the help")
	}
	send(m, runes("?"))
	if m.View() != before {
		t.Fatalf("second ? should collapse the help")
	}
}

func TestRoot_WindowTitle(t *testing.T) {
	m := newStarted(t)
	_, cmd := m.Update(windowtitle.Set("42")())
	if cmd == nil {
		t.Fatalf("expected a window title command")
	}
	if got := m.titleHandler.Title(); got != "Keycalc v1.0.0 | 42" {
		t.Fatalf("unexpected title %q", got)
	}
	if _, cmd := m.Update(windowtitle.Set("42")()); cmd != nil {
		t.Fatalf("unchanged title should not emit a command")
	}
}
