// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keycalc/ui/tui/util"
)

// probe records what the stack sends it.
type probe struct {
	size    util.Size
	keys    int
	focused bool
}

func (p *probe) Init() tea.Cmd { return nil }

func (p *probe) Update(msg tea.Msg) tea.Cmd {
	if p.size.Update(msg) {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		p.keys++
	}
	return nil
}

func (p *probe) View() string { return "" }

func (p *probe) Focus() (tea.Cmd, help.KeyMap) {
	p.focused = true
	return nil, nil
}

func (p *probe) Blur() { p.focused = false }

func TestStack_VerticalSizes(t *testing.T) {
	fixed, a, b := &probe{}, &probe{}, &probe{}
	s := New(
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(fixed), StaticSize(3)),
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(2)),
	)
	s.Update(tea.WindowSizeMsg{Width: 20, Height: 33})

	if fixed.size.Height != 3 || a.size.Height != 10 || b.size.Height != 20 {
		t.Fatalf("unexpected heights %d/%d/%d", fixed.size.Height, a.size.Height, b.size.Height)
	}
	for _, p := range []*probe{fixed, a, b} {
		if p.size.Width != 20 {
			t.Fatalf("expected full width, got %d", p.size.Width)
		}
	}
}

func TestStack_GapAndOverflow(t *testing.T) {
	a, b := &probe{}, &probe{}
	s := New(
		WithGap(1),
		WithItem(util.ModelPointer(a), StaticSize(8)),
		WithItem(util.ModelPointer(b), StaticSize(8)),
	)
	s.Update(tea.WindowSizeMsg{Width: 12, Height: 5})

	if a.size.Width != 8 || b.size.Width != 3 {
		t.Fatalf("expected 8 and the 3 remaining cells, got %d and %d", a.size.Width, b.size.Width)
	}
}

func TestStack_KeysOnlyReachFocusedItem(t *testing.T) {
	a, b := &probe{}, &probe{}
	s := New(
		WithFocus(FocusIndex(1)),
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(1)),
	)
	s.Focus()
	if a.focused || !b.focused {
		t.Fatalf("expected only the second item focused")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.keys != 0 || b.keys != 1 {
		t.Fatalf("unexpected key routing %d/%d", a.keys, b.keys)
	}

	s.SetFocus(FocusAll())
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.keys != 1 || b.keys != 2 || !a.focused {
		t.Fatalf("FocusAll should reach every item, got %d/%d", a.keys, b.keys)
	}

	s.SetFocus(FocusIndex(7))
	if !b.focused || a.focused {
		t.Fatalf("out of range focus should clamp to the last item")
	}
}
