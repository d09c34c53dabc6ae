// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc implements the keypad calculator's input state machine.
//
// A State is an immutable snapshot of what the calculator shows and what
// operation is pending. Apply folds a single button press into a new
// snapshot. Invalid arithmetic never surfaces as an error: division by zero
// produces NaN, which keeps propagating, and an unparsable display makes
// percent a no-op.
//
// Session wraps the reducer for renderers that want to hold the current
// snapshot and be told about every transition.
package calc
