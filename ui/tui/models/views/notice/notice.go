// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notice is a popup that shows a message until it is dismissed.
package notice

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/ui/tui/models/components/popup"
	"github.com/toeirei/keycalc/ui/tui/util"
)

const maxWidth = 48

type KeyMap struct {
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Close}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Close}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "q"),
			key.WithHelp("esc/q", i18n.T("help.close")),
		),
	}
}

type Model struct {
	text   string
	keyMap KeyMap
}

func New(text string) *Model {
	return &Model{text: text, keyMap: NewKeyMap()}
}

func (m Model) Text() string {
	return m.text
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keyMap.Close) {
		return popup.Close()
	}
	return nil
}

func (m Model) View() string {
	return lipgloss.NewStyle().MaxWidth(maxWidth).Width(min(lipgloss.Width(m.text), maxWidth)).Render(m.text)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
