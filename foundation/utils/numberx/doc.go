// File: doc.go
// Title: Package Documentation for numberx
// Description: Package numberx parses and formats base-10 numbers described
//              by a Descriptor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package numberx parses and formats base-10 numbers.
//
// A Descriptor is a plain configuration value: separators, sign display,
// scientific notation, fractional digit bounds, integer part padding and
// rounding. NewCodec compiles it once into a Codec whose parse and format
// methods can be called from any goroutine.
//
//	c := numberx.MustCodec(numberx.UKStyleNumber, "#amount")
//	v, _ := c.ParseDecimal("1,234.5")  // 1234.5
//	s := c.FormatDecimal(v)            // "1,234.5"
//
// Parsing is strict: a text is accepted only when the formatter of the same
// descriptor could have produced it. Under SignDisplayAuto "+1" is rejected,
// a grouped descriptor rejects "1234", and a descriptor that hides the null
// integer part rejects "0.5".
//
// ReadDecimal and ReadFloat consume the longest number at the start of a text
// and return the rest, which is what template placeholders need.
//
// FromFormatCode accepts spreadsheet number format codes ("#,##0.00",
// "0000", "0.00E+00") and returns the matching Descriptor.
package numberx
