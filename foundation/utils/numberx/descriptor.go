// File: descriptor.go
// Title: Base-10 Number Format Descriptor
// Description: Describes how a base-10 number is written: separators, sign
//              display, scientific notation, fractional digits, integer part
//              padding and rounding. A Descriptor is a plain value; parsers
//              and formatters are derived from it with NewCodec.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: ExponentPlusSign and MinimumExponentDigits

package numberx

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/mathx"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// Unlimited can be used as MaximumFractionalDigits to disable rounding
const Unlimited = math.MaxInt32

// SignDisplay defines when a sign is written and accepted
type SignDisplay int

const (
	// SignDisplayAuto shows "-" for negative numbers, negative zero included
	SignDisplayAuto SignDisplay = iota

	// SignDisplayAlways shows "+" or "-" for every number
	SignDisplayAlways

	// SignDisplayExceptZero shows "+" or "-" for every number except zero
	SignDisplayExceptZero

	// SignDisplayNegative shows "-" for negative numbers, negative zero excluded
	SignDisplayNegative

	// SignDisplayNever shows no sign. Formatting writes the absolute value.
	SignDisplayNever
)

var signDisplayNames = []string{"Auto", "Always", "ExceptZero", "Negative", "Never"}

// String returns the policy name
func (s SignDisplay) String() string {
	if s < 0 || int(s) >= len(signDisplayNames) {
		return fmt.Sprintf("SignDisplay(%d)", int(s))
	}
	return signDisplayNames[s]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SignDisplay) UnmarshalText(text []byte) error {
	i, err := lookupName("SignDisplay", signDisplayNames, string(text))
	if err != nil {
		return err
	}
	*s = SignDisplay(i)
	return nil
}

// ScientificNotation defines whether and how an exponent is used
type ScientificNotation int

const (
	// ScientificNotationNone never uses an exponent
	ScientificNotationNone ScientificNotation = iota

	// ScientificNotationNormalized uses a mantissa in [1, 10)
	ScientificNotationNormalized

	// ScientificNotationEngineering uses a mantissa in [1, 1000) and an
	// exponent that is a multiple of 3
	ScientificNotationEngineering
)

var scientificNotationNames = []string{"None", "Normalized", "Engineering"}

// String returns the policy name
func (s ScientificNotation) String() string {
	if s < 0 || int(s) >= len(scientificNotationNames) {
		return fmt.Sprintf("ScientificNotation(%d)", int(s))
	}
	return scientificNotationNames[s]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *ScientificNotation) UnmarshalText(text []byte) error {
	i, err := lookupName("ScientificNotation", scientificNotationNames, string(text))
	if err != nil {
		return err
	}
	*s = ScientificNotation(i)
	return nil
}

func lookupName(kind string, names []string, s string) (int, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range names {
		if strings.ToLower(name) == key {
			return i, nil
		}
	}
	return 0, errors.InvalidInput(errors.ModuleNumberx, "Unmarshal"+kind, s,
		"one of "+strings.Join(names, ", "))
}

// Padding pads the integer part on the left to Length runes with FillChar
type Padding struct {
	Length   int
	FillChar string
}

// Descriptor describes a textual base-10 number format
type Descriptor struct {
	// ThousandSeparator groups integer digits by three; empty disables grouping
	ThousandSeparator string

	// FractionalSeparator separates integer and fractional digits
	FractionalSeparator string

	// ENotationChars are the exponent markers accepted when parsing; the
	// first one is written when formatting
	ENotationChars []string

	// ExponentPlusSign writes "+" before positive exponents; parsing then
	// requires it
	ExponentPlusSign bool

	// MinimumExponentDigits zero-pads the exponent digits
	MinimumExponentDigits int

	// FillChar extends the integer part up to MinimumIntegerPartLength
	FillChar string

	SignDisplay        SignDisplay
	ScientificNotation ScientificNotation

	MinimumFractionalDigits int
	MaximumFractionalDigits int

	// MinimumIntegerPartLength counts runes of the integer part, fill
	// characters and thousand separators included
	MinimumIntegerPartLength int

	IntegerPartPadding *Padding

	// ShowNullIntegerPart writes "0.5" when true and ".5" when false
	ShowNullIntegerPart bool

	// Rounding.Mode applies when formatting at MaximumFractionalDigits.
	// Rounding.Precision is used by Round only.
	Rounding mathx.RoundingOption
}

// Integer describes unsigned-or-negative integers without grouping: "1234", "-5"
var Integer = Descriptor{
	FractionalSeparator:     ".",
	ENotationChars:          []string{"E", "e"},
	SignDisplay:             SignDisplayAuto,
	ScientificNotation:      ScientificNotationNone,
	MinimumFractionalDigits: 0,
	MaximumFractionalDigits: 0,
	ShowNullIntegerPart:     true,
	Rounding:                mathx.DefaultRoundingOption,
}

// UKStyleNumber: "1,234.567", at most 3 fractional digits
var UKStyleNumber = Integer.
	WithThousandSeparator(",").
	WithFractionalDigits(0, 3)

// GermanStyleNumber: "1.234,567"
var GermanStyleNumber = UKStyleNumber.
	WithThousandSeparator(".").
	WithFractionalSeparator(",")

// FrenchStyleNumber: "1 234,567"
var FrenchStyleNumber = UKStyleNumber.
	WithThousandSeparator(" ").
	WithFractionalSeparator(",")

// ScientificNumber: "1.5E3", normalized mantissa
var ScientificNumber = Integer.
	WithFractionalDigits(0, Unlimited).
	WithScientificNotation(ScientificNotationNormalized)

// EngineeringNumber: "15E3", exponents are multiples of 3
var EngineeringNumber = Integer.
	WithFractionalDigits(0, Unlimited).
	WithScientificNotation(ScientificNotationEngineering)

// FixedWidthInteger describes unsigned integers zero-padded to width runes
func FixedWidthInteger(width int) Descriptor {
	return Integer.
		WithSignDisplay(SignDisplayNever).
		WithPadding(width, "0")
}

// WithThousandSeparator returns a copy using sep to group integer digits
func (d Descriptor) WithThousandSeparator(sep string) Descriptor {
	d.ThousandSeparator = sep
	return d
}

// WithoutThousandSeparator returns a copy that does not group digits
func (d Descriptor) WithoutThousandSeparator() Descriptor {
	return d.WithThousandSeparator("")
}

// WithFractionalSeparator returns a copy using sep before fractional digits
func (d Descriptor) WithFractionalSeparator(sep string) Descriptor {
	d.FractionalSeparator = sep
	return d
}

// WithFractionalDigits returns a copy with new fractional digit bounds
func (d Descriptor) WithFractionalDigits(min, max int) Descriptor {
	d.MinimumFractionalDigits = min
	d.MaximumFractionalDigits = max
	return d
}

// WithSignDisplay returns a copy with another sign policy
func (d Descriptor) WithSignDisplay(s SignDisplay) Descriptor {
	d.SignDisplay = s
	return d
}

// WithScientificNotation returns a copy with another exponent policy
func (d Descriptor) WithScientificNotation(s ScientificNotation) Descriptor {
	d.ScientificNotation = s
	return d
}

// WithENotationChars returns a copy accepting chars as exponent markers
func (d Descriptor) WithENotationChars(chars ...string) Descriptor {
	d.ENotationChars = append([]string(nil), chars...)
	return d
}

// WithExponentFormat returns a copy writing positive exponents with "+"
// when plus is set and padding exponent digits to minDigits
func (d Descriptor) WithExponentFormat(plus bool, minDigits int) Descriptor {
	d.ExponentPlusSign = plus
	d.MinimumExponentDigits = minDigits
	return d
}

// WithPadding returns a copy padding the integer part to length with fill
func (d Descriptor) WithPadding(length int, fill string) Descriptor {
	d.IntegerPartPadding = &Padding{Length: length, FillChar: fill}
	return d
}

// WithoutPadding returns a copy without integer part padding
func (d Descriptor) WithoutPadding() Descriptor {
	d.IntegerPartPadding = nil
	return d
}

// WithMinimumIntegerPartLength returns a copy requiring at least length
// runes in the integer part, reached with fill
func (d Descriptor) WithMinimumIntegerPartLength(length int, fill string) Descriptor {
	d.MinimumIntegerPartLength = length
	d.FillChar = fill
	return d
}

// WithNullIntegerPart returns a copy showing or hiding "0" before the
// fractional separator
func (d Descriptor) WithNullIntegerPart(show bool) Descriptor {
	d.ShowNullIntegerPart = show
	return d
}

// WithRoundingMode returns a copy rounding with mode
func (d Descriptor) WithRoundingMode(mode mathx.RoundingMode) Descriptor {
	d.Rounding.Mode = mode
	return d
}

// WithRoundingPrecision returns a copy whose Round keeps precision digits
func (d Descriptor) WithRoundingPrecision(precision int) Descriptor {
	d.Rounding.Precision = precision
	return d
}

// FixedWidth reports the width of every formatted number when the
// descriptor can only produce integers of one width: zero or more fill
// characters followed by digits, no sign, no separators, no exponent.
func (d Descriptor) FixedWidth() (int, bool) {
	if d.IntegerPartPadding == nil ||
		d.MaximumFractionalDigits != 0 ||
		d.ThousandSeparator != "" ||
		d.ScientificNotation != ScientificNotationNone ||
		d.SignDisplay != SignDisplayNever {
		return 0, false
	}
	return d.IntegerPartPadding.Length, true
}

// fill returns the character accepted in front of the integer part
func (d Descriptor) fill() string {
	if d.IntegerPartPadding != nil {
		return d.IntegerPartPadding.FillChar
	}
	return d.FillChar
}

// Validate checks the descriptor for settings that make parsing ambiguous
// or impossible. Parsers and formatters do not call it.
func (d Descriptor) Validate() error {
	invalid := func(field string, value interface{}, expected string) error {
		return errors.InvalidInput(errors.ModuleNumberx, "Validate."+field, value, expected)
	}

	if d.MinimumFractionalDigits < 0 {
		return invalid("MinimumFractionalDigits", d.MinimumFractionalDigits, "a non-negative number")
	}
	if d.MinimumFractionalDigits > d.MaximumFractionalDigits {
		return invalid("MaximumFractionalDigits", d.MaximumFractionalDigits,
			fmt.Sprintf("a number not smaller than MinimumFractionalDigits (%d)", d.MinimumFractionalDigits))
	}
	if d.MaximumFractionalDigits > 0 && d.FractionalSeparator == "" {
		return invalid("FractionalSeparator", d.FractionalSeparator, "a separator when fractional digits are allowed")
	}

	if d.MinimumExponentDigits < 0 {
		return invalid("MinimumExponentDigits", d.MinimumExponentDigits, "a non-negative number")
	}

	reserved := []string{d.ThousandSeparator, d.FractionalSeparator}
	if d.ScientificNotation != ScientificNotationNone {
		if len(d.ENotationChars) == 0 {
			return invalid("ENotationChars", d.ENotationChars, "at least one exponent marker")
		}
		reserved = append(reserved, d.ENotationChars...)
	}
	seen := make(map[string]bool, len(reserved))
	for _, s := range reserved {
		if s == "" {
			continue
		}
		if strings.IndexFunc(s, unicode.IsDigit) >= 0 || strings.ContainsAny(s, "+-") {
			return invalid("Separators", s, "a string without digits and signs")
		}
		if seen[s] {
			return invalid("Separators", s, "separators and exponent markers that differ from each other")
		}
		seen[s] = true
	}

	if d.FillChar != "" {
		if _, ok := stringx.SingleRune(d.FillChar); !ok {
			return invalid("FillChar", d.FillChar, "a single character")
		}
	}
	if p := d.IntegerPartPadding; p != nil {
		if p.Length < 1 {
			return invalid("IntegerPartPadding.Length", p.Length, "a positive number")
		}
		if _, ok := stringx.SingleRune(p.FillChar); !ok {
			return invalid("IntegerPartPadding.FillChar", p.FillChar, "a single character")
		}
		if d.FillChar != "" && d.FillChar != p.FillChar {
			return invalid("FillChar", d.FillChar, "the same character as IntegerPartPadding.FillChar")
		}
	}
	if fill := d.fill(); fill != "" && seen[fill] {
		return invalid("FillChar", fill, "a character that is not a separator")
	}
	if d.MinimumIntegerPartLength > 1 && d.fill() == "" {
		return invalid("FillChar", d.FillChar, "a fill character when MinimumIntegerPartLength exceeds 1")
	}
	return nil
}
