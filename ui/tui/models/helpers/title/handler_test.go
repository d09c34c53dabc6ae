// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestTitleHandler_Handle(t *testing.T) {
	h := NewHandler("Keycalc", " | ")
	if h.Title() != "Keycalc" {
		t.Fatalf("expected base title, got %q", h.Title())
	}

	msg := Set("42")()
	if !IsTitleMsg(msg) {
		t.Fatalf("expected Set to produce a title message")
	}
	if cmd := h.Handle(msg); cmd == nil {
		t.Fatalf("expected a command for a new title")
	}
	if h.Title() != "Keycalc | 42" {
		t.Fatalf("unexpected title %q", h.Title())
	}

	if cmd := h.Handle(msg); cmd != nil {
		t.Fatalf("expected no command for an unchanged title")
	}
	if cmd := h.Handle("other"); cmd != nil {
		t.Fatalf("expected no command for unrelated messages")
	}
}
