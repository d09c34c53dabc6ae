// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup overlays modal models on top of a child view.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/keycalc/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

var (
	frameStyle = lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Margin(0, 1)
	dimmedStyle = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
)

// Injector renders its child and, while popups are open, the topmost popup
// centered over a dimmed copy of the child. Only the topmost model receives
// input.
type Injector struct {
	child  *util.Model
	popups []*util.Model
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{child: child}
}

// Open reports whether a popup is showing.
func (m *Injector) Open() bool {
	return len(m.popups) > 0
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if m.Open() {
			return tea.Batch(
				(*m.active()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(msg.Model)
	case closeMsg:
		return m.close()
	}

	return (*m.active()).Update(msg)
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if !m.Open() {
		return childView
	}
	return overlay(
		dimmedStyle.Render(ansi.Strip(childView)),
		frameStyle.Render((*m.active()).View()),
	)
}

// overlay centers fg on bg, clipping fg to bg's size.
func overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	left := max((bgWidth-fgWidth)/2, 0)
	top := max((bgHeight-fgHeight)/2, 0)

	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		if i+top >= len(bgLines) {
			break
		}
		row := bgLines[i+top]
		bgLines[i+top] = ansi.Truncate(row, left, "") + line + ansi.TruncateLeft(row, left+fgWidth, "")
	}
	return strings.Join(bgLines, "\n")
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.active()).Focus()
}

func (m *Injector) Blur() {
	(*m.active()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

func (m *Injector) open(p *util.Model) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p).Init(),
		m.announceFocus(),
		(*p).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if !m.Open() {
		return nil
	}
	m.Blur()
	m.popups = m.popups[:len(m.popups)-1]
	return m.announceFocus()
}

func (m *Injector) active() *util.Model {
	if m.Open() {
		return m.popups[len(m.popups)-1]
	}
	return m.child
}

func (m *Injector) announceFocus() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
