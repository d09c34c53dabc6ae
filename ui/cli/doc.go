// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keycalc using Cobra.
// It loads configuration, sets up logging and localisation, and starts
// either the interactive keypad or the line-oriented evaluator. All
// arithmetic is delegated to internal/calc.
package cli
