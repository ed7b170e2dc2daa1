// File: format.go
// Title: Base-10 Number Formatter
// Description: Renders decimals and floats following a Descriptor. The value
//              is rounded at MaximumFractionalDigits, split into integer,
//              fractional and exponent digits, grouped, padded and signed.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Exponent sign and zero padding

package numberx

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/mathx"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// Round rounds v with the rounding option of the descriptor
func (d Descriptor) Round(v decimal.Decimal) decimal.Decimal {
	return d.Rounding.RoundDecimal(v)
}

// FormatDecimal renders v. Decimals have no negative zero, so zero is
// always written without "-" under SignDisplayAuto.
func (c *Codec) FormatDecimal(v decimal.Decimal) string {
	return c.format(v, false)
}

// FormatFloat renders v. NaN and infinities have no textual form.
func (c *Codec) FormatFloat(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.PatternMismatch(c.label, "to be a finite number", strconv.FormatFloat(v, 'g', -1, 64))
	}
	return c.format(decimal.NewFromFloat(v), math.Signbit(v)), nil
}

func (c *Codec) format(v decimal.Decimal, negativeZero bool) string {
	d := c.desc

	exp := 0
	if d.ScientificNotation != ScientificNotationNone && !v.IsZero() {
		exp = c.exponent(mathx.Magnitude(v))
		v = v.Shift(int32(-exp))
	}

	if d.MaximumFractionalDigits != Unlimited {
		v = mathx.RoundDecimal(v, d.MaximumFractionalDigits, d.Rounding.Mode)
	}

	// rounding may carry the mantissa out of its range: 9.99 -> 10.0
	if d.ScientificNotation != ScientificNotationNone && !v.IsZero() {
		if shift := c.exponent(mathx.Magnitude(v)); shift != 0 {
			exp += shift
			v = v.Shift(int32(-shift))
		}
	}

	zero := v.IsZero()
	negative := v.IsNegative() || (zero && negativeZero)

	intPart, fracPart := mathx.SplitDigits(v)
	if n := d.MinimumFractionalDigits - len(fracPart); n > 0 {
		fracPart += strings.Repeat("0", n)
	}

	if d.ThousandSeparator != "" {
		intPart = group(intPart, d.ThousandSeparator)
	}
	if intPart == "0" && fracPart != "" && !d.ShowNullIntegerPart {
		intPart = ""
	}
	if c.fillRune != 0 && d.MinimumIntegerPartLength > 0 {
		intPart = stringx.PadLeft(intPart, d.MinimumIntegerPartLength, c.fillRune)
	}
	if p := d.IntegerPartPadding; p != nil {
		intPart = stringx.PadLeft(intPart, p.Length, c.padRune)
	}

	var b strings.Builder
	b.WriteString(c.sign(negative, zero))
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteString(d.FractionalSeparator)
		b.WriteString(fracPart)
	}
	if exp != 0 {
		marker := "E"
		if len(d.ENotationChars) > 0 {
			marker = d.ENotationChars[0]
		}
		b.WriteString(marker)
		b.WriteString(c.exponentText(exp))
	}
	return b.String()
}

// exponentText writes exp with the sign and width of the descriptor
func (c *Codec) exponentText(exp int) string {
	sign := ""
	switch {
	case exp < 0:
		sign, exp = "-", -exp
	case c.desc.ExponentPlusSign:
		sign = "+"
	}
	return sign + stringx.PadLeft(strconv.Itoa(exp), c.desc.MinimumExponentDigits, '0')
}

// exponent returns the exponent that brings a number of the given
// magnitude into the mantissa range of the descriptor
func (c *Codec) exponent(magnitude int) int {
	if c.desc.ScientificNotation == ScientificNotationEngineering {
		q := magnitude / 3
		if magnitude%3 < 0 {
			q--
		}
		return q * 3
	}
	return magnitude
}

func (c *Codec) sign(negative, zero bool) string {
	switch c.desc.SignDisplay {
	case SignDisplayAuto:
		if negative {
			return "-"
		}
	case SignDisplayAlways:
		if negative {
			return "-"
		}
		return "+"
	case SignDisplayExceptZero:
		if zero {
			return ""
		}
		if negative {
			return "-"
		}
		return "+"
	case SignDisplayNegative:
		if negative && !zero {
			return "-"
		}
	}
	return ""
}

// group inserts sep every three digits from the right
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
