// File: decimal.go
// Title: Decimal Helpers
// Description: Small helpers around shopspring decimals used by the number
//              parser and formatter: digit splitting, magnitude, parity and
//              assembly from digit strings.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding
// - 2026-10-19 v0.3.0: Replaced the big.Rat Decimal by shopspring/decimal,
//                       kept only digit level helpers

package mathx

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msto63/formatting/foundation/core/errors"
)

var two = decimal.NewFromInt(2)

// IsEven reports whether the integer part of d is even
func IsEven(d decimal.Decimal) bool {
	return d.Truncate(0).Mod(two).IsZero()
}

// IsInteger reports whether d has no fractional part
func IsInteger(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

// Magnitude returns the power of ten of the most significant digit of d,
// so that 10^Magnitude(d) <= |d| < 10^(Magnitude(d)+1). Zero has magnitude 0.
func Magnitude(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	coefficient := d.Coefficient()
	digits := len(strings.TrimPrefix(coefficient.String(), "-"))
	return digits + int(d.Exponent()) - 1
}

// SplitDigits returns the integer and fractional digit strings of |d|,
// without trailing fractional zeros. The integer part is "0" for |d| < 1.
func SplitDigits(d decimal.Decimal) (intPart, fracPart string) {
	s := d.Abs().String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// FromDigits assembles a decimal from an integer and a fractional digit
// string. Empty parts count as zero.
func FromDigits(intPart, fracPart string, negative bool) (decimal.Decimal, error) {
	if intPart == "" {
		intPart = "0"
	}
	s := intPart
	if fracPart != "" {
		s += "." + fracPart
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.InvalidInput(errors.ModuleMathx, "FromDigits", s, "decimal digits")
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
