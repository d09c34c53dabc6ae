// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/internal/calc"
)

const (
	keyWidth = 7
	keyGap   = 1
	// padWidth is four keys and the gaps between them.
	padWidth = 4*keyWidth + 3*keyGap
)

const (
	colorDisplay     = lipgloss.Color("#222222")
	colorDisplayText = lipgloss.Color("#FFFFFF")
	colorButton      = lipgloss.Color("#FFFFFF")
	colorButtonText  = lipgloss.Color("#222222")
	colorOperator    = lipgloss.Color("#F8CB2E")
	colorEquals      = lipgloss.Color("#4285F4")
	colorFunction    = lipgloss.Color("#E0E1E6")
	colorAccent      = lipgloss.Color("#F44336")
	colorSubtle      = lipgloss.Color("240")
)

var (
	displayStyle = lipgloss.NewStyle().
			Background(colorDisplay).
			Foreground(colorDisplayText).
			Bold(true).
			Align(lipgloss.Right).
			Padding(0, 1).
			Width(padWidth)

	pendingStyle = lipgloss.NewStyle().
			Background(colorDisplay).
			Foreground(colorSubtle).
			Align(lipgloss.Right).
			Padding(0, 1).
			Width(padWidth)

	keyStyle = lipgloss.NewStyle().
			Width(keyWidth).
			Align(lipgloss.Center).
			Background(colorButton).
			Foreground(colorButtonText)
)

// buttonStyle picks the palette for b; selected keys are underlined and
// drawn in reverse.
func buttonStyle(b calc.Button, selected bool) lipgloss.Style {
	s := keyStyle
	if b.Wide() {
		s = s.Width(2*keyWidth + keyGap)
	}

	switch b.Kind() {
	case calc.KindEquals:
		s = s.Background(colorEquals).Foreground(colorDisplayText).Bold(true)
	case calc.KindOperator:
		s = s.Background(colorOperator).Bold(true)
	case calc.KindClear:
		s = s.Background(colorAccent).Foreground(colorDisplayText).Bold(true)
	case calc.KindToggleSign, calc.KindPercent:
		s = s.Background(colorFunction)
	}

	if selected {
		s = s.Reverse(true).Underline(true)
	}
	return s
}
