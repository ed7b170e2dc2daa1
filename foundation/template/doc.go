// File: doc.go
// Title: Template Package Documentation
// Description: Declarative parsing and formatting of fixed-grammar texts
//              from placeholders and separators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package template builds bidirectional parsers for small textual formats.

A Template is an ordered list of parts. Placeholders are named, typed fields
that read a value from the start of the remaining text and write it back;
separators are literal texts between them. The same template parses a text
into a Record and formats a Record into a text:

	day := template.MustNumericInt("dd", numberx.FixedWidthInteger(2), 1, 31)
	month := template.MustNumericInt("MM", numberx.FixedWidthInteger(2), 1, 12)
	year := template.MustNumericInt("yyyy", numberx.FixedWidthInteger(4), 0, 9999)

	t := template.New(day, template.Sep("/"), month, template.Sep("/"), year)
	r, _ := t.Parse("05/12/2025")  // Record{"dd": 5, "MM": 12, "yyyy": 2025}
	s, _ := t.Format(r)            // "05/12/2025"

Parsing is sequential and never backtracks: each part must match where the
previous one stopped. It fails when a part does not match, when a
placeholder that appears twice receives two different values, and when text
remains after the last part.

Placeholder factories:

  • FixedLength and PaddedFixedLength read a fixed number of characters
  • Numeric and NumericInt read numbers through a numberx descriptor
  • MappedLiterals reads the first listed key that starts the text
  • RegexBounded reads the longest prefix matching a pattern
  • ToEnd reads everything that is left

Modify derives a placeholder with another value type from an existing one.
Every error names the placeholder label ("#" followed by the name) and the
expected and actual values.
*/
package template
