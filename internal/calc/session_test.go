// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "testing"

func TestSession_PressNotifiesRenderers(t *testing.T) {
	var shown []string
	s := NewSession(WithRenderCallback(func(st State) {
		shown = append(shown, st.Display)
	}))

	s.PressAll([]Button{Button5, ButtonAdd, Button3, ButtonEquals})

	want := []string{"5", "5", "3", "8"}
	if len(shown) != len(want) {
		t.Fatalf("expected %d renders, got %d (%v)", len(want), len(shown), shown)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Fatalf("render %d: expected %q, got %q", i, want[i], shown[i])
		}
	}
	if s.Display() != "8" {
		t.Fatalf("expected display 8, got %q", s.Display())
	}
}

func TestSession_UnknownButtonStillRenders(t *testing.T) {
	renders := 0
	s := NewSession(WithRenderCallback(func(State) { renders++ }))
	before := s.State()
	if got := s.Press(Button("?")); got != before {
		t.Fatalf("unknown button changed state: %s", got)
	}
	if renders != 1 {
		t.Fatalf("expected one render, got %d", renders)
	}
}

func TestSession_ResetReturnsToInitial(t *testing.T) {
	s := NewSession(WithInitialState(State{Display: "42", Operator: Add, Accumulator: 1, HasAccumulator: true}))
	if s.Display() != "42" {
		t.Fatalf("initial state option ignored: %s", s.State())
	}
	if got := s.Reset(); got != Initial() {
		t.Fatalf("expected initial state after reset, got %s", got)
	}
}

func TestSession_NilRenderCallbackIgnored(t *testing.T) {
	s := NewSession(WithRenderCallback(nil))
	s.Press(Button1)
	if s.Display() != "1" {
		t.Fatalf("expected 1, got %q", s.Display())
	}
}
