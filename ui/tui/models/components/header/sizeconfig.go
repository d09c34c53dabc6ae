// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keycalc/ui/tui/models/components/stack"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// minBodyHeight is the room the keypad needs before the header is shown.
const minBodyHeight = 18

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on short terminals.
func (s *sizeConfig) Calculate(model util.Model, _ int, total int) int {
	height := lipgloss.Height(logo) + 1
	if h, ok := model.(*Model); ok {
		height = lipgloss.Height(h.content()) + 1
	}
	if total >= minBodyHeight+height {
		return height
	}
	return 0
}
