// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxResultLen is the longest canonical result shown as is.
const maxResultLen = 12

// exponentDigits is the number of fractional digits in the fallback form.
const exponentDigits = 6

var nan = math.NaN()

// FormatResult renders an arithmetic result for the display. Results whose
// canonical form is longer than 12 characters switch to exponent notation
// with six fractional digits.
func FormatResult(v float64) string {
	s := FormatNumber(v)
	if len(s) > maxResultLen {
		return formatExponent(v, exponentDigits)
	}
	return s
}

// FormatNumber returns the canonical decimal text of v: the shortest digits
// that round-trip, fixed notation for magnitudes in [1e-6, 1e21) and
// exponent notation outside it.
func FormatNumber(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		return formatExponent(v, -1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// formatExponent renders v as d.ddde±x with an unpadded exponent. A
// negative prec means the shortest round-trip mantissa. Exact halfway
// values round away from zero.
func formatExponent(v float64, prec int) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if prec >= 0 && isExponentTie(v, prec) {
		v = math.Nextafter(v, math.Copysign(math.Inf(1), v))
	}
	s := strconv.FormatFloat(v, 'e', prec, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// isExponentTie reports whether the exact binary value of v lies halfway
// between two mantissas of prec fractional digits.
func isExponentTie(v float64, prec int) bool {
	if v == 0 {
		return false
	}
	// A float64 has at most 767 significant decimal digits, so 800 is exact.
	exact := new(big.Float).SetFloat64(math.Abs(v)).Text('e', 800)
	mantissa, _, _ := strings.Cut(exact, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	if len(digits) <= prec+1 || digits[prec+1] != '5' {
		return false
	}
	return strings.TrimRight(digits[prec+2:], "0") == ""
}

// parseNumber reads the longest leading decimal literal of s. Text with no
// numeric prefix is NaN; literals beyond float64 range become ±Inf.
func parseNumber(s string) float64 {
	for end := len(s); end > 0; end-- {
		prefix := s[:end]
		if !isLiteralPrefix(prefix) {
			continue
		}
		v, err := strconv.ParseFloat(prefix, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return nan
}

// isLiteralPrefix filters out the forms strconv accepts that a decimal
// display never contains (hex floats, underscores, "inf"/"nan" spellings
// other than the ones FormatNumber writes).
func isLiteralPrefix(s string) bool {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	switch body {
	case "NaN", "Infinity":
		return true
	}
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return false
		}
	}
	return true
}
