// File: codec.go
// Title: Base-10 Number Parser
// Description: A Codec binds a Descriptor to a field label and a compiled
//              tokenizer. Reading matches sign, fill, integer, fractional and
//              exponent groups at the start of the text, then validates them
//              against the descriptor before assembling an exact decimal.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Integers stop before the fractional separator,
//                       exponent sign and width are checked

package numberx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/mathx"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// DefaultLabel names the value in error messages when no label is given
const DefaultLabel = "#number"

// Codec parses and formats numbers following one Descriptor. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	desc     Descriptor
	label    string
	re       *regexp.Regexp
	groups   map[string]int
	fill     string
	fillRune rune
	padRune  rune
}

// NewCodec compiles the tokenizer for d. label names the value in error
// messages. Only fill characters are checked here; call Validate for a
// full consistency check.
func NewCodec(d Descriptor, label string) (*Codec, error) {
	if label == "" {
		label = DefaultLabel
	}
	c := &Codec{desc: d, label: label, fill: d.fill()}

	if d.FillChar != "" {
		r, ok := stringx.SingleRune(d.FillChar)
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleNumberx, "NewCodec", d.FillChar, "a single fill character")
		}
		c.fillRune = r
	}
	if p := d.IntegerPartPadding; p != nil {
		r, ok := stringx.SingleRune(p.FillChar)
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleNumberx, "NewCodec", p.FillChar, "a single padding character")
		}
		c.padRune = r
		if d.FillChar == "" {
			c.fillRune = r
		}
	}

	c.re = regexp.MustCompile(buildPattern(d, c.fill))
	c.groups = make(map[string]int)
	for i, name := range c.re.SubexpNames() {
		if name != "" {
			c.groups[name] = i
		}
	}
	return c, nil
}

// MustCodec is like NewCodec but panics on error. Use it for package level
// codecs built from literal descriptors.
func MustCodec(d Descriptor, label string) *Codec {
	c, err := NewCodec(d, label)
	if err != nil {
		panic(err)
	}
	return c
}

// Descriptor returns the descriptor of c
func (c *Codec) Descriptor() Descriptor { return c.desc }

// Label returns the label used in error messages
func (c *Codec) Label() string { return c.label }

// WithLabel returns a codec sharing the tokenizer of c under another label
func (c *Codec) WithLabel(label string) *Codec {
	clone := *c
	clone.label = label
	return &clone
}

func buildPattern(d Descriptor, fill string) string {
	var b strings.Builder
	b.WriteString(`^(?P<sign>[+-])?`)

	if fill != "" {
		b.WriteString(`(?P<fill>(?:` + regexp.QuoteMeta(fill) + `)*)`)
	} else {
		b.WriteString(`(?P<fill>)`)
	}

	if sep := d.ThousandSeparator; sep != "" {
		b.WriteString(`(?P<int>0|[1-9]\d{0,2}(?:` + regexp.QuoteMeta(sep) + `\d{3})*)?`)
	} else {
		b.WriteString(`(?P<int>0|[1-9]\d*)?`)
	}

	// without fractional digits the number ends before the separator
	if d.FractionalSeparator != "" && d.MaximumFractionalDigits != 0 {
		b.WriteString(`(?:` + regexp.QuoteMeta(d.FractionalSeparator) + `(?P<frac>\d+))?`)
	} else {
		b.WriteString(`(?P<frac>)`)
	}

	if d.ScientificNotation != ScientificNotationNone && len(d.ENotationChars) > 0 {
		markers := make([]string, len(d.ENotationChars))
		for i, m := range d.ENotationChars {
			markers[i] = regexp.QuoteMeta(m)
		}
		b.WriteString(`(?:(?:` + strings.Join(markers, "|") + `)(?P<exp>[+-]?\d+))?`)
	} else {
		b.WriteString(`(?P<exp>)`)
	}
	return b.String()
}

// token is the raw match of the tokenizer
type token struct {
	sign, fill, int, frac, exp string
	length                     int
}

func (c *Codec) match(text string) (token, bool) {
	m := c.re.FindStringSubmatchIndex(text)
	if m == nil {
		return token{}, false
	}
	group := func(name string) string {
		i := c.groups[name]
		if m[2*i] < 0 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}
	t := token{
		sign:   group("sign"),
		fill:   group("fill"),
		int:    group("int"),
		frac:   group("frac"),
		exp:    group("exp"),
		length: m[1],
	}

	// a digit fill swallows a lone zero integer part
	if t.int == "" && t.fill != "" && c.fill >= "0" && c.fill <= "9" && len(c.fill) == 1 {
		t.fill, t.int = t.fill[:len(t.fill)-1], c.fill
	}
	return t, t.int != "" || t.frac != ""
}

// ReadDecimal parses the longest number at the start of text and returns it with
// the remaining text
func (c *Codec) ReadDecimal(text string) (decimal.Decimal, string, error) {
	v, _, rest, err := c.read(text)
	return v, rest, err
}

// ReadFloat is like ReadDecimal but returns a float64. A negative zero is kept.
func (c *Codec) ReadFloat(text string) (float64, string, error) {
	v, negative, rest, err := c.read(text)
	if err != nil {
		return 0, text, err
	}
	return toFloat(v, negative), rest, nil
}

// ParseDecimal parses text, which must hold exactly one number
func (c *Codec) ParseDecimal(text string) (decimal.Decimal, error) {
	v, _, err := c.parseAll(text)
	return v, err
}

// ParseFloat parses text, which must hold exactly one number
func (c *Codec) ParseFloat(text string) (float64, error) {
	v, negative, err := c.parseAll(text)
	if err != nil {
		return 0, err
	}
	return toFloat(v, negative), nil
}

func (c *Codec) parseAll(text string) (decimal.Decimal, bool, error) {
	v, negative, rest, err := c.read(text)
	if err != nil {
		return decimal.Zero, false, err
	}
	if rest != "" {
		return decimal.Zero, false, errors.PatternMismatch(c.label, "to contain nothing after the number", rest)
	}
	return v, negative, nil
}

func toFloat(v decimal.Decimal, negative bool) float64 {
	f, _ := v.Float64()
	if f == 0 && negative {
		return math.Copysign(0, -1)
	}
	return f
}

func (c *Codec) read(text string) (decimal.Decimal, bool, string, error) {
	d := c.desc
	t, ok := c.match(text)
	if !ok {
		return decimal.Zero, false, text, errors.PatternMismatch(c.label, "to start with a number", text)
	}
	rest := text[t.length:]

	// fractional part length
	if n := len(t.frac); n < d.MinimumFractionalDigits || n > d.MaximumFractionalDigits {
		return decimal.Zero, false, text, errors.OutOfRange("fractional part length of "+c.label,
			d.MinimumFractionalDigits, displayLimit(d.MaximumFractionalDigits), n, true)
	}

	// integer part length, fill included
	fillLen := stringx.RuneLen(t.fill)
	intLen := stringx.RuneLen(t.int)
	total := fillLen + intLen
	if p := d.IntegerPartPadding; p != nil {
		if fillLen > 0 || intLen < p.Length {
			if expected := maxInt(p.Length, intLen); total != expected {
				return decimal.Zero, false, text, errors.LengthMismatch("integer part of "+c.label, expected, total)
			}
		}
	} else if fillLen > 0 && total != d.MinimumIntegerPartLength {
		return decimal.Zero, false, text, errors.LengthMismatch("integer part of "+c.label, d.MinimumIntegerPartLength, total)
	}
	nullHidden := t.int == "" && t.frac != ""
	if !nullHidden && total < d.MinimumIntegerPartLength {
		return decimal.Zero, false, text, errors.OutOfRange("integer part length of "+c.label,
			d.MinimumIntegerPartLength, "Infinity", total, true)
	}

	// null integer part
	switch {
	case nullHidden && d.ShowNullIntegerPart:
		return decimal.Zero, false, text, errors.PatternMismatch(c.label,
			"to have an integer part before the fractional separator", t.sign+t.fill+t.int+d.FractionalSeparator+t.frac)
	case t.int == "0" && t.frac != "" && !d.ShowNullIntegerPart:
		return decimal.Zero, false, text, errors.PatternMismatch(c.label,
			"to have no integer part before the fractional separator", t.sign+t.fill+t.int+d.FractionalSeparator+t.frac)
	}

	digits := t.int
	if d.ThousandSeparator != "" {
		digits = strings.ReplaceAll(digits, d.ThousandSeparator, "")
	}
	value, err := mathx.FromDigits(digits, t.frac, false)
	if err != nil {
		return decimal.Zero, false, text, mdwerror.Wrap(err, "cannot assemble "+c.label)
	}

	if err := c.checkScientific(t, digits, value); err != nil {
		return decimal.Zero, false, text, err
	}

	if err := c.checkSign(t.sign, value.IsZero()); err != nil {
		return decimal.Zero, false, text, err
	}

	if t.exp != "" {
		exp, err := strconv.ParseInt(t.exp, 10, 32)
		if err != nil {
			return decimal.Zero, false, text, errors.PatternMismatch(c.label, "to have a representable exponent", t.exp)
		}
		if exp == 0 {
			return decimal.Zero, false, text, errors.PatternMismatch(c.label, "to have a non-zero exponent", t.exp)
		}
		if want := c.exponentText(int(exp)); want != t.exp {
			return decimal.Zero, false, text, errors.PatternMismatch(c.label,
				"to have the exponent written as '"+want+"'", t.exp)
		}
		value = value.Shift(int32(exp))
	}
	negative := t.sign == "-"
	if negative {
		value = value.Neg()
	}
	return value, negative, rest, nil
}

func (c *Codec) checkScientific(t token, digits string, mantissa decimal.Decimal) error {
	switch c.desc.ScientificNotation {
	case ScientificNotationNone:
		return nil
	}
	if mantissa.IsZero() {
		if t.exp != "" {
			return errors.PatternMismatch(c.label, "to have no exponent when the mantissa is zero", t.exp)
		}
		return nil
	}
	switch c.desc.ScientificNotation {
	case ScientificNotationNormalized:
		if len(digits) != 1 || digits == "0" {
			return errors.PatternMismatch(c.label,
				"to have a mantissa with a single non-zero integer digit", orEmpty(t.int))
		}
	case ScientificNotationEngineering:
		if len(digits) < 1 || len(digits) > 3 || digits == "0" {
			return errors.PatternMismatch(c.label,
				"to have a mantissa with one to three integer digits, not starting with zero", orEmpty(t.int))
		}
		if t.exp != "" {
			if exp, _ := strconv.Atoi(t.exp); exp%3 != 0 {
				return errors.PatternMismatch(c.label, "to have an exponent that is a multiple of 3", t.exp)
			}
		}
	}
	return nil
}

func (c *Codec) checkSign(sign string, zero bool) error {
	fail := func(expected string) error {
		return errors.PatternMismatch("sign of "+c.label, expected, sign)
	}
	switch c.desc.SignDisplay {
	case SignDisplayAuto:
		if sign == "+" {
			return fail("to be '-' or absent")
		}
	case SignDisplayAlways:
		if sign == "" {
			return fail("to be present")
		}
	case SignDisplayExceptZero:
		if zero && sign != "" {
			return fail("to be absent for zero")
		}
		if !zero && sign == "" {
			return fail("to be present for a number other than zero")
		}
	case SignDisplayNegative:
		if sign == "+" {
			return fail("to be '-' or absent")
		}
		if zero && sign == "-" {
			return fail("to be absent for zero")
		}
	case SignDisplayNever:
		if sign != "" {
			return fail("to be absent")
		}
	}
	return nil
}

func displayLimit(n int) interface{} {
	if n == Unlimited {
		return "Infinity"
	}
	return n
}

func orEmpty(s string) string {
	if s == "" {
		return "<empty>"
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// String describes the codec for diagnostics
func (c *Codec) String() string {
	return fmt.Sprintf("%s: %s", c.label, c.re.String())
}
