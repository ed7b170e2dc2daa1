// File: formatcode.go
// Title: Spreadsheet Number Format Codes
// Description: Builds a Descriptor from a spreadsheet number format code
//              such as "#,##0.00", "0000" or "0.00E+00". Only the first
//              section of the code is used; codes that cannot be expressed
//              by a Descriptor (percent, dates, quoted text) are rejected.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation on top of xuri/nfp
// - 2026-10-19 v0.1.1: Exponent width and sign from "E+00"

package numberx

import (
	"unicode/utf8"

	"github.com/xuri/nfp"

	"github.com/msto63/formatting/foundation/core/errors"
)

// FromFormatCode converts a spreadsheet number format code into a Descriptor.
// "0" placeholders before the decimal point set a zero padded minimum width,
// "0" and "#" after it set the minimum and maximum fractional digits.
func FromFormatCode(code string) (Descriptor, error) {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 || len(sections[0].Items) == 0 {
		return Descriptor{}, errors.InvalidFormat(errors.ModuleNumberx, code, "a number format code")
	}

	var (
		intZeros, intHashes   int
		fracZeros, fracHashes int
		inFraction, inExp     bool
		thousands, plus       bool
		placeholderSeen       bool
		expZeros              int
		marker                string
	)

	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder, nfp.TokenTypeDigitalPlaceHolder:
			placeholderSeen = true
			n := utf8.RuneCountInString(tok.TValue)
			zero := tok.TType == nfp.TokenTypeZeroPlaceHolder
			switch {
			case inExp && zero:
				expZeros += n
			case inExp:
				// "#" adds no exponent width
			case inFraction && zero:
				fracZeros += n
			case inFraction:
				fracHashes += n
			case zero:
				intZeros += n
			default:
				intHashes += n
			}
		case nfp.TokenTypeDecimalPoint:
			inFraction = true
		case nfp.TokenTypeThousandsSeparator:
			if !inFraction {
				thousands = true
			}
		case nfp.TokenTypeExponential:
			r, _ := utf8.DecodeRuneInString(tok.TValue)
			marker = string(r)
			inExp = true
		case nfp.TokenTypeLiteral:
			if tok.TValue == "+" && !placeholderSeen {
				plus = true
				continue
			}
			return Descriptor{}, errors.InvalidFormat(errors.ModuleNumberx, code, "a code without literal text")
		case nfp.TokenTypeColor:
		default:
			return Descriptor{}, errors.InvalidFormat(errors.ModuleNumberx, code,
				"a code made of digit placeholders, separators and exponent only")
		}
	}
	if !placeholderSeen {
		return Descriptor{}, errors.InvalidFormat(errors.ModuleNumberx, code, "at least one digit placeholder")
	}

	d := Integer.WithFractionalDigits(fracZeros, fracZeros+fracHashes)
	if thousands {
		d = d.WithThousandSeparator(",")
	}
	if plus {
		d = d.WithSignDisplay(SignDisplayAlways)
	}
	if marker != "" {
		// the tokenizer only knows "E+": a sign is always written
		d = d.WithENotationChars(marker).WithExponentFormat(true, expZeros)
		if intZeros+intHashes == 3 && intHashes > 0 {
			d = d.WithScientificNotation(ScientificNotationEngineering)
		} else {
			d = d.WithScientificNotation(ScientificNotationNormalized)
		}
	} else if intZeros > 1 && !thousands {
		d = d.WithMinimumIntegerPartLength(intZeros, "0")
	}
	d.ShowNullIntegerPart = intZeros > 0
	return d, nil
}
