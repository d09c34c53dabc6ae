// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calculator is the keypad view. It projects a calc.Session onto
// the screen and turns key presses into button presses.
package calculator

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/tui/models/components/popup"
	windowtitle "github.com/toeirei/keycalc/ui/tui/models/helpers/title"
	"github.com/toeirei/keycalc/ui/tui/models/views/notice"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// PressMsg presses a button as if it had been chosen on the keypad.
type PressMsg struct {
	Button calc.Button
}

type Model struct {
	session   *calc.Session
	keyMap    KeyMap
	grid      grid
	cursor    cursor
	clipboard Clipboard
	focused   bool
	size      util.Size
}

type Option func(*Model)

// WithClipboard enables the copy key. A nil clipboard disables it.
func WithClipboard(c Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithSession renders an existing session instead of a fresh one.
func WithSession(s *calc.Session) Option {
	return func(m *Model) {
		m.session = s
	}
}

func New(opts ...Option) *Model {
	m := &Model{
		grid: newGrid(calc.Layout()),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.session == nil {
		m.session = calc.NewSession()
	}
	m.keyMap = NewKeyMap(m.clipboard != nil)
	return m
}

// State returns the snapshot being shown.
func (m Model) State() calc.State {
	return m.session.State()
}

// Selected returns the key under the cursor.
func (m Model) Selected() calc.Button {
	return m.grid.at(m.cursor)
}

func (m Model) Init() tea.Cmd {
	return windowtitle.Set(m.session.Display())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case PressMsg:
		return m.press(msg.Button)
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.cursor = m.grid.move(m.cursor, -1, 0)
	case key.Matches(msg, m.keyMap.Down):
		m.cursor = m.grid.move(m.cursor, 1, 0)
	case key.Matches(msg, m.keyMap.Left):
		m.cursor = m.grid.move(m.cursor, 0, -1)
	case key.Matches(msg, m.keyMap.Right):
		m.cursor = m.grid.move(m.cursor, 0, 1)
	case key.Matches(msg, m.keyMap.Press):
		return m.press(m.Selected())
	case key.Matches(msg, m.keyMap.Copy):
		return m.copyDisplay()
	case key.Matches(msg, m.keyMap.Clear):
		return m.press(calc.ButtonClear)
	case key.Matches(msg, m.keyMap.Sign):
		return m.press(calc.ButtonToggleSign)
	default:
		if b, ok := typedButton(msg.String()); ok {
			return m.press(b)
		}
	}
	return nil
}

// press applies b, moves the cursor onto it and updates the window title.
func (m *Model) press(b calc.Button) tea.Cmd {
	if c, ok := m.grid.find(b); ok {
		m.cursor = c
	}
	st := m.session.Press(b)
	return windowtitle.Set(st.Display)
}

func (m *Model) copyDisplay() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	display := m.session.Display()
	if err := m.clipboard.WriteAll(display); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		return popup.Open(util.ModelPointer(notice.New(i18n.T("notice.copy_failed", err))))
	}
	return util.SetStatusCmd(i18n.T("status.copied", display))
}

func (m Model) View() string {
	st := m.session.State()

	screen := lipgloss.JoinVertical(lipgloss.Right,
		pendingStyle.Render(fitDisplay(st.Pending())),
		displayStyle.Render(fitDisplay(st.Display)),
	)

	rows := make([]string, 0, len(m.grid))
	for _, row := range calc.Layout() {
		keys := make([]string, 0, len(row))
		for i, b := range row {
			label := buttonStyle(b, b == m.Selected()).Render(string(b))
			if i > 0 {
				label = strings.Repeat(" ", keyGap) + label
			}
			keys = append(keys, label)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	pad := lipgloss.JoinVertical(lipgloss.Left,
		screen,
		"",
		lipgloss.JoinVertical(lipgloss.Left, interleave(rows, "")...),
	)

	if m.size.Width == 0 || m.size.Height == 0 {
		return pad
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, pad)
}

// fitDisplay keeps the rightmost digits when text is wider than the screen.
func fitDisplay(text string) string {
	const room = padWidth - 2
	if ansi.StringWidth(text) <= room {
		return text
	}
	return "…" + ansi.TruncateLeft(text, ansi.StringWidth(text)-room+1, "")
}

func interleave(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(items)-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
