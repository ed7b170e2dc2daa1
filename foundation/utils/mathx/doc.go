// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the decimal rounding engine used by the
//              number formatter, together with digit level decimal helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Rounding engine on shopspring/decimal

// Package mathx provides decimal rounding.
//
// Overview
//
// Rounding works the same way for both number representations: the value is
// shifted left by the precision, truncated to an integer, and the first
// discarded digit (between -9 and 9, negative for negative values) together
// with the parity of the truncated integer is handed to the Correcter of the
// rounding mode. The correcter answers -1, 0 or +1, which is added before the
// value is shifted back.
//
//	RoundDecimal(decimal.RequireFromString("2.345"), 2, RoundingModeHalfEven) // 2.34
//	RoundFloat(-1.5, 0, RoundingModeHalfCeil)                                 // -1
//
// Only the first discarded digit is inspected, so 2.451 rounded to one digit
// with RoundingModeHalfEven yields 2.4.
//
// RoundDecimal is exact. RoundFloat multiplies in binary floating point and
// is meant for display purposes where that loss is acceptable.
package mathx
