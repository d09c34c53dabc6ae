// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive keypad. Presentation and input
// handling live here; all arithmetic is delegated to internal/calc.
package tui
