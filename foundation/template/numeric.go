// File: numeric.go
// Title: Numeric Placeholders
// Description: Placeholders reading and writing base-10 numbers through a
//              numberx codec. Fixed width descriptors read exactly their
//              width before the number is parsed; all others read the
//              longest number at the start of the text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package template

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/mathx"
	"github.com/msto63/formatting/foundation/utils/numberx"
)

// Numeric creates a placeholder for decimals written as described by d
func Numeric(name string, d numberx.Descriptor) (*Placeholder[decimal.Decimal], error) {
	codec, err := numberx.NewCodec(d, "#"+name)
	if err != nil {
		return nil, err
	}

	if width, ok := d.FixedWidth(); ok {
		return fixedLengthToNumeric(name, width, codec), nil
	}

	return &Placeholder[decimal.Decimal]{
		name:        name,
		description: "number",
		parse:       codec.ReadDecimal,
		format: func(value decimal.Decimal) (string, error) {
			return codec.FormatDecimal(value), nil
		},
	}, nil
}

// fixedLengthToNumeric rejects text of the wrong width before any number
// parsing takes place
func fixedLengthToNumeric(name string, width int, codec *numberx.Codec) *Placeholder[decimal.Decimal] {
	return Modify(FixedLength(name, width),
		codec.ParseDecimal,
		func(v decimal.Decimal) (string, error) {
			return codec.FormatDecimal(v), nil
		},
		func(string) string {
			return fmt.Sprintf("%d-digit number", width)
		})
}

// MustNumeric is like Numeric but panics when d has an invalid fill
func MustNumeric(name string, d numberx.Descriptor) *Placeholder[decimal.Decimal] {
	p, err := Numeric(name, d)
	if err != nil {
		panic(err)
	}
	return p
}

// NumericInt creates a placeholder for integers in [min, max] written as
// described by d
func NumericInt(name string, d numberx.Descriptor, min, max int) (*Placeholder[int], error) {
	base, err := Numeric(name, d)
	if err != nil {
		return nil, err
	}
	label := base.Label()

	inRange := func(v int) error {
		if v < min || v > max {
			return errors.OutOfRange(label, min, max, v, true)
		}
		return nil
	}
	post := func(v decimal.Decimal) (int, error) {
		if !mathx.IsInteger(v) {
			return 0, errors.PatternMismatch(label, "to be an integer", v.String())
		}
		if v.LessThan(decimal.NewFromInt(math.MinInt32)) || v.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
			return 0, errors.OutOfRange(label, min, max, v.String(), true)
		}
		i := int(v.IntPart())
		return i, inRange(i)
	}
	pre := func(v int) (decimal.Decimal, error) {
		if err := inRange(v); err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(int64(v)), nil
	}
	describe := func(d string) string {
		return fmt.Sprintf("%s between %d and %d", d, min, max)
	}
	return Modify(base, post, pre, describe), nil
}

// MustNumericInt is like NumericInt but panics when d has an invalid fill
func MustNumericInt(name string, d numberx.Descriptor, min, max int) *Placeholder[int] {
	p, err := NumericInt(name, d, min, max)
	if err != nil {
		panic(err)
	}
	return p
}
