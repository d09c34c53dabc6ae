// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "github.com/toeirei/keycalc/internal/logging"

// RenderFunc is called with the new snapshot after every press.
type RenderFunc func(State)

// Session holds the current snapshot for a renderer. It is not safe for
// concurrent use; presses are handled one at a time.
type Session struct {
	state   State
	renders []RenderFunc
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRenderCallback registers fn to be called after each transition.
func WithRenderCallback(fn RenderFunc) SessionOption {
	return func(s *Session) {
		if fn != nil {
			s.renders = append(s.renders, fn)
		}
	}
}

// WithInitialState starts the session from st instead of Initial().
func WithInitialState(st State) SessionOption {
	return func(s *Session) {
		s.state = st
	}
}

// NewSession creates a session in the initial state.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{state: Initial()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Press applies b and notifies the render callbacks.
func (s *Session) Press(b Button) State {
	prev := s.state
	s.state = Apply(prev, b)
	if b.Kind() == KindUnknown {
		logging.Debugf("ignoring unknown button %q", string(b))
	} else {
		logging.Debugf("press %s: %s -> %s", string(b), prev, s.state)
	}
	for _, render := range s.renders {
		render(s.state)
	}
	return s.state
}

// PressAll presses each button in order and returns the final snapshot.
func (s *Session) PressAll(buttons []Button) State {
	for _, b := range buttons {
		s.Press(b)
	}
	return s.state
}

// Reset is the same as pressing AC.
func (s *Session) Reset() State {
	return s.Press(ButtonClear)
}

// State returns the current snapshot.
func (s *Session) State() State {
	return s.state
}

// Display returns the text currently shown.
func (s *Session) Display() string {
	return s.state.Display
}
