// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root assembles the full screen: header, calculator keypad with
// its popup layer, and the footer.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/ui/tui/models/components/header"
	"github.com/toeirei/keycalc/ui/tui/models/components/popup"
	"github.com/toeirei/keycalc/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/keycalc/ui/tui/models/helpers/title"
	"github.com/toeirei/keycalc/ui/tui/models/views/calculator"
	"github.com/toeirei/keycalc/ui/tui/models/views/footer"
	"github.com/toeirei/keycalc/ui/tui/models/views/notice"
	"github.com/toeirei/keycalc/ui/tui/util"
)

type Model struct {
	stack        *stack.Model
	popups       *popup.Injector
	calculator   *calculator.Model
	footer       *util.Model
	keyMap       KeyMap
	version      string
	titleHandler *windowtitle.TitleHandler
}

// New builds the root model. The calculator options are passed through to
// the keypad view.
func New(version string, opts ...calculator.Option) *Model {
	if version == "" {
		version = "unknown version"
	}

	keyMap := NewKeyMap()
	_calculator := calculator.New(opts...)
	_popups := popup.NewInjector(util.ModelPointer(_calculator))
	_footer_ptr := util.ModelPointer(footer.New(keyMap))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.Focus(1)),
			stack.WithItem(util.ModelPointer(header.New()), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_popups), stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		popups:       _popups,
		calculator:   _calculator,
		footer:       _footer_ptr,
		keyMap:       keyMap,
		version:      version,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), version), " | "),
	}
}

// Calculator exposes the keypad view.
func (m Model) Calculator() *calculator.Model {
	return m.calculator
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, m.stack.Relayout()
		case m.popups.Open():
			// popups own every other key
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.About):
			return m, popup.Open(util.ModelPointer(notice.New(i18n.T("notice.about", m.version))))
		}

		return m, m.stack.Update(msg)
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	if windowtitle.IsTitleMsg(msg) {
		return m, nil
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Model implements tea.Model
var _ tea.Model = (*Model)(nil)
