// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import "github.com/atotto/clipboard"

// Clipboard receives the display text on copy.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboardAvailable reports whether a clipboard backend was found.
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}
