// File: format_test.go
// Title: Number Formatter Tests
// Description: Rendering for the presets and policies, plus parse/format
//              round trips over representative descriptors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package numberx

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/formatting/foundation/utils/mathx"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name  string
		desc  Descriptor
		input string
		want  string
	}{
		{"integer zero", Integer, "0", "0"},
		{"integer negative", Integer, "-45", "-45"},
		{"integer rounds", Integer, "2.5", "3"},
		{"uk grouped", UKStyleNumber, "1234.5678", "1,234.568"},
		{"uk million", UKStyleNumber, "1000000", "1,000,000"},
		{"uk small", UKStyleNumber, "0.5", "0.5"},
		{"uk rounds to zero", UKStyleNumber, "-0.0004", "0"},
		{"german", GermanStyleNumber, "1234.5", "1.234,5"},
		{"french", FrenchStyleNumber, "1234567", "1 234 567"},
		{"minimum fraction", UKStyleNumber.WithFractionalDigits(2, 2), "5", "5.00"},
		{"half expand", UKStyleNumber.WithFractionalDigits(2, 2), "1.005", "1.01"},
		{"half even", UKStyleNumber.WithFractionalDigits(2, 2).WithRoundingMode(mathx.RoundingModeHalfEven), "1.005", "1.00"},
		{"floor negative", Integer.WithRoundingMode(mathx.RoundingModeFloor), "-1.2", "-2"},
		{"hidden null", UKStyleNumber.WithNullIntegerPart(false), "0.5", ".5"},
		{"hidden null keeps zero", UKStyleNumber.WithNullIntegerPart(false), "0", "0"},
		{"always positive", Integer.WithSignDisplay(SignDisplayAlways), "1", "+1"},
		{"always zero", Integer.WithSignDisplay(SignDisplayAlways), "0", "+0"},
		{"except zero", Integer.WithSignDisplay(SignDisplayExceptZero), "0", "0"},
		{"except zero negative", Integer.WithSignDisplay(SignDisplayExceptZero), "-1", "-1"},
		{"negative", Integer.WithSignDisplay(SignDisplayNegative), "-1", "-1"},
		{"never", Integer.WithSignDisplay(SignDisplayNever), "-1", "1"},
		{"scientific", ScientificNumber, "1500", "1.5E3"},
		{"scientific small", ScientificNumber, "0.00025", "2.5E-4"},
		{"scientific one", ScientificNumber, "1", "1"},
		{"scientific zero", ScientificNumber, "0", "0"},
		{"scientific carry", ScientificNumber.WithFractionalDigits(0, 2), "9.999", "1E1"},
		{"engineering", EngineeringNumber, "15000", "15E3"},
		{"engineering small", EngineeringNumber, "0.00025", "250E-6"},
		{"engineering large", EngineeringNumber, "1234567", "1.234567E6"},
		{"fixed width", FixedWidthInteger(4), "42", "0042"},
		{"fixed width overflow", FixedWidthInteger(4), "12345", "12345"},
		{"space fill", Integer.WithMinimumIntegerPartLength(3, " "), "-5", "-  5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustCodec(tt.desc, "")
			assert.Equal(t, tt.want, c.FormatDecimal(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	c := MustCodec(UKStyleNumber, "#value")

	s, err := c.FormatFloat(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, "-0", s)

	s, err = c.FormatFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", s)

	_, err = c.FormatFloat(math.NaN())
	require.Error(t, err)
	assert.Equal(t, "Expected #value to be a finite number. Actual: 'NaN'", err.Error())

	_, err = c.FormatFloat(math.Inf(-1))
	assert.Error(t, err)
}

func TestDescriptorRound(t *testing.T) {
	d := UKStyleNumber.WithRoundingPrecision(1).WithRoundingMode(mathx.RoundingModeCeil)
	assert.Equal(t, "1.3", d.Round(decimal.RequireFromString("1.21")).String())
	assert.Equal(t, "-1.2", d.Round(decimal.RequireFromString("-1.29")).String())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptor
		texts   []string
		numbers []string
	}{
		{
			name:    "integer",
			desc:    Integer,
			texts:   []string{"0", "7", "-12", "123456789"},
			numbers: []string{"0", "-1", "42", "9007199254740993"},
		},
		{
			name:    "grouped",
			desc:    UKStyleNumber,
			texts:   []string{"1,234.5", "0.125", "-999,999.999", "12"},
			numbers: []string{"1000", "-0.001", "123456.7", "0.5"},
		},
		{
			name:    "scientific",
			desc:    ScientificNumber,
			texts:   []string{"1.5E3", "2.5E-4", "-7E12", "0", "3"},
			numbers: []string{"0.000000123", "-42", "6.02214076E23", "1"},
		},
		{
			name:    "engineering",
			desc:    EngineeringNumber,
			texts:   []string{"15E3", "250E-6", "1.5", "-999"},
			numbers: []string{"0.01", "12345", "-1000"},
		},
		{
			name:    "fixed width",
			desc:    FixedWidthInteger(4),
			texts:   []string{"0000", "0042", "9999"},
			numbers: []string{"0", "7", "1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustCodec(tt.desc, "")
			for _, text := range tt.texts {
				v, err := c.ParseDecimal(text)
				require.NoError(t, err, text)
				assert.Equal(t, text, c.FormatDecimal(v))
			}
			for _, number := range tt.numbers {
				n := decimal.RequireFromString(number)
				v, err := c.ParseDecimal(c.FormatDecimal(n))
				require.NoError(t, err, number)
				assert.True(t, n.Equal(v), "%s != %s", number, v)
			}
		})
	}
}
