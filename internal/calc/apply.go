// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"math"
	"strings"
)

// Apply returns the state that follows s when button b is pressed. It never
// fails; unknown buttons leave the state unchanged.
func Apply(s State, b Button) State {
	switch b.Kind() {
	case KindDigit:
		return inputDigit(s, string(b))
	case KindDecimal:
		return inputDecimal(s)
	case KindClear:
		return Initial()
	case KindToggleSign:
		return toggleSign(s)
	case KindPercent:
		return inputPercent(s)
	case KindOperator:
		op, _ := OperatorFor(b)
		return performOperation(s, op)
	case KindEquals:
		return equals(s)
	}
	return s
}

// ApplyAll folds a sequence of presses into s.
func ApplyAll(s State, buttons ...Button) State {
	for _, b := range buttons {
		s = Apply(s, b)
	}
	return s
}

func inputDigit(s State, digit string) State {
	switch {
	case s.AwaitingOperand:
		s.Display = digit
		s.AwaitingOperand = false
	case s.Display == "0":
		s.Display = digit
	default:
		s.Display += digit
	}
	return s
}

func inputDecimal(s State) State {
	switch {
	case s.AwaitingOperand:
		s.Display = "0."
		s.AwaitingOperand = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

func toggleSign(s State) State {
	if rest, ok := strings.CutPrefix(s.Display, "-"); ok {
		s.Display = rest
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

func inputPercent(s State) State {
	v := parseNumber(s.Display)
	if math.IsNaN(v) {
		return s
	}
	s.Display = FormatNumber(v / 100)
	return s
}

// performOperation folds the display into the accumulator using the
// previously pending operator, then records next as pending.
func performOperation(s State, next Operator) State {
	input := parseNumber(s.Display)

	switch {
	case !s.HasAccumulator:
		s.Accumulator = input
		s.HasAccumulator = true
	case s.Operator != NoOperator:
		s.Accumulator = s.Operator.apply(s.Accumulator, input)
		s.Display = FormatResult(s.Accumulator)
	}

	s.Operator = next
	s.AwaitingOperand = true
	return s
}

func equals(s State) State {
	if s.Operator == NoOperator {
		return s
	}
	s = performOperation(s, s.Operator)
	s.Operator = NoOperator
	s.Accumulator = 0
	s.HasAccumulator = false
	s.AwaitingOperand = true
	return s
}
