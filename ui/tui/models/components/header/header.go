// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/ui/tui/util"
)

const logo string = "" +
	"╦╔═┌─┐┬ ┬┌─┐┌─┐┬  ┌─┐\n" +
	"╠╩╗├┤ └┬┘│  ├─┤│  │  \n" +
	"╩ ╩└─┘ ┴ └─┘┴ ┴┴─┘└─┘"

var subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) content() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		subtitleStyle.Render(i18n.T("app.subtitle")),
	)
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			m.content(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
