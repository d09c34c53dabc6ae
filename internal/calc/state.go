// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "fmt"

// Operator is a pending binary operation. The zero value means no operator
// has been chosen.
type Operator byte

const (
	NoOperator Operator = 0
	Add        Operator = '+'
	Subtract   Operator = '-'
	Multiply   Operator = '*'
	Divide     Operator = '/'
)

func (o Operator) String() string {
	if o == NoOperator {
		return ""
	}
	return string(rune(o))
}

// Symbol returns the keypad glyph for the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return string(ButtonAdd)
	case Subtract:
		return string(ButtonSubtract)
	case Multiply:
		return string(ButtonMultiply)
	case Divide:
		return string(ButtonDivide)
	}
	return ""
}

// apply combines lhs and rhs. Division by zero yields NaN.
func (o Operator) apply(lhs, rhs float64) float64 {
	switch o {
	case Add:
		return lhs + rhs
	case Subtract:
		return lhs - rhs
	case Multiply:
		return lhs * rhs
	case Divide:
		if rhs == 0 {
			return nan
		}
		return lhs / rhs
	}
	return lhs
}

// State is a snapshot of the calculator.
type State struct {
	// Display is the text currently shown.
	Display string
	// Operator is the operation waiting for its right operand.
	Operator Operator
	// Accumulator is the left operand captured when an operator was chosen.
	// Only meaningful when HasAccumulator is set.
	Accumulator    float64
	HasAccumulator bool
	// AwaitingOperand is set right after an operator or equals press; the
	// next digit starts a fresh number.
	AwaitingOperand bool
}

// Initial returns the state the calculator starts in and returns to on AC.
func Initial() State {
	return State{Display: "0"}
}

// Pending renders the captured accumulator and operator, e.g. "12 +". It is
// empty when nothing is pending.
func (s State) Pending() string {
	if !s.HasAccumulator {
		return ""
	}
	if s.Operator == NoOperator {
		return FormatResult(s.Accumulator)
	}
	return FormatResult(s.Accumulator) + " " + s.Operator.Symbol()
}

func (s State) String() string {
	acc := "-"
	if s.HasAccumulator {
		acc = FormatNumber(s.Accumulator)
	}
	op := s.Operator.String()
	if op == "" {
		op = "-"
	}
	return fmt.Sprintf("display=%q op=%s acc=%s awaiting=%t", s.Display, op, acc, s.AwaitingOperand)
}
