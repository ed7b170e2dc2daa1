// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides rune aware string helpers for
//              fixed-width text fields.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Padding, trimming and splitting for template fields

// Package stringx provides rune aware string helpers.
//
// All widths are counted in runes so that "é" occupies one position of a
// fixed-width field just like "e".
//
//	head, tail, ok := stringx.SplitAt("abcdef", 3) // "abc", "def", true
//	stringx.Pad("7", 3, '0', stringx.FillLeft)     // "007"
//	stringx.Trim("007", '0', stringx.FillLeft, true) // "7"
//	stringx.Trim("000", '0', stringx.FillLeft, true) // "0"
package stringx
