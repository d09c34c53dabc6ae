// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/i18n"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding

	Digits    key.Binding
	Operators key.Binding
	Equals    key.Binding
	Clear     key.Binding
	Sign      key.Binding
	Percent   key.Binding
	Copy      key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Press, km.Equals, km.Clear, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Press},
		{km.Digits, km.Operators, km.Equals},
		{km.Clear, km.Sign, km.Percent, km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with descriptions in the active language.
func NewKeyMap(copyEnabled bool) KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("help.move")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("help.move")),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("help.move")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("help.move")),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T("help.press")),
		),
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", ","),
			key.WithHelp("0-9 .", i18n.T("help.digits")),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "x", "/"),
			key.WithHelp("+ - * /", i18n.T("help.operators")),
		),
		Equals: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", i18n.T("help.equals")),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "esc", "delete"),
			key.WithHelp("c/esc", i18n.T("help.clear")),
		),
		Sign: key.NewBinding(
			key.WithKeys("n", "_"),
			key.WithHelp("n", i18n.T("help.sign")),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", i18n.T("help.percent")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("help.copy")),
		),
	}
	km.Copy.SetEnabled(copyEnabled)
	return km
}

// typedButton maps a typed character to the keypad button it stands for.
func typedButton(keyName string) (calc.Button, bool) {
	if keyName == "," {
		return calc.ButtonDecimal, true
	}
	return calc.ParseButton(keyName)
}
