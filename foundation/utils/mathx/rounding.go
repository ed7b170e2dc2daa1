// File: rounding.go
// Title: Decimal Rounding Engine
// Description: Rounds host floats and exact decimals at a given precision.
//              The value is shifted by the precision, truncated, and the
//              first discarded digit together with the parity of the
//              truncated value selects a correction of -1, 0 or +1 through
//              the correcter of the rounding mode.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial rounding modes on big.Rat decimals
// - 2026-10-19 v0.3.0: Eight directed/half rounding modes, correcter table,
//                       float fast path and exact shopspring path

package mathx

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msto63/formatting/foundation/core/errors"
)

// RoundingMode defines how a discarded fraction is resolved
type RoundingMode int

const (
	// RoundingModeHalfExpand rounds ties away from zero (commercial rounding)
	RoundingModeHalfExpand RoundingMode = iota

	// RoundingModeCeil rounds toward positive infinity
	RoundingModeCeil

	// RoundingModeFloor rounds toward negative infinity
	RoundingModeFloor

	// RoundingModeExpand rounds away from zero
	RoundingModeExpand

	// RoundingModeTrunc rounds toward zero
	RoundingModeTrunc

	// RoundingModeHalfCeil rounds ties toward positive infinity
	RoundingModeHalfCeil

	// RoundingModeHalfFloor rounds ties toward negative infinity
	RoundingModeHalfFloor

	// RoundingModeHalfEven rounds ties to the even neighbour (banker's rounding)
	RoundingModeHalfEven
)

var roundingModeNames = map[RoundingMode]string{
	RoundingModeHalfExpand: "HalfExpand",
	RoundingModeCeil:       "Ceil",
	RoundingModeFloor:      "Floor",
	RoundingModeExpand:     "Expand",
	RoundingModeTrunc:      "Trunc",
	RoundingModeHalfCeil:   "HalfCeil",
	RoundingModeHalfFloor:  "HalfFloor",
	RoundingModeHalfEven:   "HalfEven",
}

// RoundingModes lists all modes in declaration order
var RoundingModes = []RoundingMode{
	RoundingModeHalfExpand,
	RoundingModeCeil,
	RoundingModeFloor,
	RoundingModeExpand,
	RoundingModeTrunc,
	RoundingModeHalfCeil,
	RoundingModeHalfFloor,
	RoundingModeHalfEven,
}

// String returns the name of the rounding mode
func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode converts a mode name (case-insensitive, "-" and "_"
// ignored) into a RoundingMode
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for mode, name := range roundingModeNames {
		if strings.ToLower(name) == key {
			return mode, nil
		}
	}
	return RoundingModeHalfExpand, errors.InvalidInput(errors.ModuleMathx, "ParseRoundingMode", s,
		"one of Ceil, Floor, Expand, Trunc, HalfCeil, HalfFloor, HalfExpand, HalfEven")
}

// MarshalText implements encoding.TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read
// from TOML and YAML configuration files
func (m *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Correcter maps the first discarded digit (in [-9, 9], carrying the sign
// of the rounded value) and the parity of the truncated value to the
// correction added to the truncated value
type Correcter func(firstFollowingDigit int, isEven bool) int

// Correcter returns the correcter implementing the mode
func (m RoundingMode) Correcter() Correcter {
	switch m {
	case RoundingModeCeil:
		return func(digit int, _ bool) int {
			if digit > 0 {
				return 1
			}
			return 0
		}
	case RoundingModeFloor:
		return func(digit int, _ bool) int {
			if digit < 0 {
				return -1
			}
			return 0
		}
	case RoundingModeExpand:
		return func(digit int, _ bool) int {
			return sign(digit)
		}
	case RoundingModeTrunc:
		return func(int, bool) int {
			return 0
		}
	case RoundingModeHalfCeil:
		return func(digit int, _ bool) int {
			switch {
			case digit >= 5:
				return 1
			case digit <= -6:
				return -1
			default:
				return 0
			}
		}
	case RoundingModeHalfFloor:
		return func(digit int, _ bool) int {
			switch {
			case digit >= 6:
				return 1
			case digit <= -5:
				return -1
			default:
				return 0
			}
		}
	case RoundingModeHalfEven:
		return func(digit int, isEven bool) int {
			switch abs := absInt(digit); {
			case abs > 5:
				return sign(digit)
			case abs == 5 && !isEven:
				return sign(digit)
			default:
				return 0
			}
		}
	default:
		return func(digit int, _ bool) int {
			if absInt(digit) >= 5 {
				return sign(digit)
			}
			return 0
		}
	}
}

// RoundingOption bundles a precision (number of fractional digits kept,
// negative values round to tens, hundreds...) with a rounding mode
type RoundingOption struct {
	Precision int
	Mode      RoundingMode
}

// DefaultRoundingOption keeps no fractional digits and rounds half away from zero
var DefaultRoundingOption = RoundingOption{Precision: 0, Mode: RoundingModeHalfExpand}

// RoundFloat rounds a host float. The shift is done in binary floating
// point, so values whose decimal form is not representable may round
// differently than RoundDecimal would.
func (o RoundingOption) RoundFloat(value float64) float64 {
	return RoundFloat(value, o.Precision, o.Mode)
}

// RoundDecimal rounds an exact decimal
func (o RoundingOption) RoundDecimal(value decimal.Decimal) decimal.Decimal {
	return RoundDecimal(value, o.Precision, o.Mode)
}

// RoundFloat rounds value to precision fractional digits using mode.
// NaN and infinities are returned unchanged.
func RoundFloat(value float64, precision int, mode RoundingMode) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	factor := math.Pow(10, float64(precision))
	shifted := value * factor
	truncated := math.Trunc(shifted)
	digit := int(math.Trunc((shifted - truncated) * 10))
	isEven := math.Mod(truncated, 2) == 0
	correction := mode.Correcter()(digit, isEven)
	if correction == 0 {
		return truncated / factor
	}
	return (truncated + float64(correction)) / factor
}

// RoundDecimal rounds value to precision fractional digits using mode.
// All arithmetic is exact.
func RoundDecimal(value decimal.Decimal, precision int, mode RoundingMode) decimal.Decimal {
	shifted := value.Shift(int32(precision))
	truncated := shifted.Truncate(0)
	digit := int(shifted.Sub(truncated).Shift(1).Truncate(0).IntPart())
	correction := mode.Correcter()(digit, IsEven(truncated))
	if correction != 0 {
		truncated = truncated.Add(decimal.NewFromInt(int64(correction)))
	}
	return truncated.Shift(-int32(precision))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
