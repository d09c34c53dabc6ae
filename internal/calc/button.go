// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownButton is returned when text does not name a keypad button.
var ErrUnknownButton = errors.New("unknown button")

// Button identifies a key on the keypad by its label.
type Button string

const (
	Button0 Button = "0"
	Button1 Button = "1"
	Button2 Button = "2"
	Button3 Button = "3"
	Button4 Button = "4"
	Button5 Button = "5"
	Button6 Button = "6"
	Button7 Button = "7"
	Button8 Button = "8"
	Button9 Button = "9"

	ButtonDecimal    Button = "."
	ButtonClear      Button = "AC"
	ButtonToggleSign Button = "±"
	ButtonPercent    Button = "%"
	ButtonDivide     Button = "÷"
	ButtonMultiply   Button = "×"
	ButtonSubtract   Button = "−"
	ButtonAdd        Button = "+"
	ButtonEquals     Button = "="
)

// Kind groups buttons by the transition they trigger.
type Kind int

const (
	KindUnknown Kind = iota
	KindDigit
	KindDecimal
	KindClear
	KindToggleSign
	KindPercent
	KindOperator
	KindEquals
)

var operatorMap = map[Button]Operator{
	ButtonDivide:   Divide,
	ButtonMultiply: Multiply,
	ButtonSubtract: Subtract,
	ButtonAdd:      Add,
}

var layout = [][]Button{
	{ButtonClear, ButtonToggleSign, ButtonPercent, ButtonDivide},
	{Button7, Button8, Button9, ButtonMultiply},
	{Button4, Button5, Button6, ButtonSubtract},
	{Button1, Button2, Button3, ButtonAdd},
	{Button0, ButtonDecimal, ButtonEquals},
}

// aliases maps typed text to buttons, in addition to the labels themselves.
var aliases = map[string]Button{
	"/":   ButtonDivide,
	"*":   ButtonMultiply,
	"x":   ButtonMultiply,
	"-":   ButtonSubtract,
	"c":   ButtonClear,
	"ac":  ButtonClear,
	"n":   ButtonToggleSign,
	"neg": ButtonToggleSign,
	"+-":  ButtonToggleSign,
	"+/-": ButtonToggleSign,
}

// words are the multi-letter aliases recognised inside a glued token such
// as "ac5+1=", longest first.
var words = []string{"neg", "ac"}

// Kind classifies the button.
func (b Button) Kind() Kind {
	switch {
	case len(b) == 1 && b[0] >= '0' && b[0] <= '9':
		return KindDigit
	case b == ButtonDecimal:
		return KindDecimal
	case b == ButtonClear:
		return KindClear
	case b == ButtonToggleSign:
		return KindToggleSign
	case b == ButtonPercent:
		return KindPercent
	case b == ButtonEquals:
		return KindEquals
	}
	if _, ok := operatorMap[b]; ok {
		return KindOperator
	}
	return KindUnknown
}

// Wide reports whether the key spans two keypad columns.
func (b Button) Wide() bool {
	return b == Button0
}

// OperatorFor maps an operator button to its operation.
func OperatorFor(b Button) (Operator, bool) {
	op, ok := operatorMap[b]
	return op, ok
}

// Layout returns the keypad rows, top to bottom. The slices are copies.
func Layout() [][]Button {
	rows := make([][]Button, len(layout))
	for i, row := range layout {
		rows[i] = append([]Button(nil), row...)
	}
	return rows
}

// Buttons returns every button in keypad order.
func Buttons() []Button {
	var all []Button
	for _, row := range layout {
		all = append(all, row...)
	}
	return all
}

// ParseButton resolves a label or alias, case-insensitively, to a button.
func ParseButton(s string) (Button, bool) {
	s = strings.TrimSpace(s)
	if b := Button(s); b.Kind() != KindUnknown {
		return b, true
	}
	if b, ok := aliases[strings.ToLower(s)]; ok {
		return b, true
	}
	return "", false
}

// ParseSequence splits text such as "12+3=" or "AC 5 × 2 =" into buttons.
// Whitespace separated tokens are tried as a whole first and then split
// into word aliases and single characters.
func ParseSequence(text string) ([]Button, error) {
	var buttons []Button
	for _, token := range strings.FieldsFunc(text, unicode.IsSpace) {
		if b, ok := ParseButton(token); ok {
			buttons = append(buttons, b)
			continue
		}
		for rest := token; rest != ""; {
			if b, n, ok := wordPrefix(rest); ok {
				buttons = append(buttons, b)
				rest = rest[n:]
				continue
			}
			r, size := utf8.DecodeRuneInString(rest)
			b, ok := ParseButton(string(r))
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownButton, string(r), token)
			}
			buttons = append(buttons, b)
			rest = rest[size:]
		}
	}
	return buttons, nil
}

func wordPrefix(s string) (Button, int, bool) {
	for _, w := range words {
		if len(s) >= len(w) && strings.EqualFold(s[:len(w)], w) {
			return aliases[w], len(w), true
		}
	}
	return "", 0, false
}
