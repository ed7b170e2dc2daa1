// Package timex implements closed-form calendar arithmetic.
//
// Package: timex
// Title: Gregorian and ISO 8601 Calendar Arithmetic
// Description: This package converts between millisecond timestamps and
//              Gregorian dates, ISO 8601 week dates and times of day without
//              iterating over days or months. It backs the date-time template
//              and is independent of the local time zone: every value is UTC.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-19 v0.2.0: Calendar arithmetic replaces the time.Time helpers
//
// Package Overview:
//
// # Gregorian dates
//
// A day offset from 2001-01-01 is split into 400, 100, 4 and 1 year periods.
// The 100 and 1 year quotients are clamped to 3 so the last day of a cycle
// stays in the leap year that ends it. A year is leap when its 1 year
// quotient is 3 and it is not the 25th four-year block of a century, unless
// the century is the fourth of its cycle.
//
// Month and day of month come from the ordinal day. March to December use
// the approximation floor((day-59)/30.6 - 0.018) + 3, always corrected
// against the cumulative month table.
//
// # ISO week dates
//
// Week 1 of an ISO year is the week holding January 4th. A date belongs to
// the ISO year whose first Monday is the latest one not after it.
//
// # DateTime
//
// DateTime derives every field at construction. Setters return a new value
// or a validation error:
//
//	dt, _ := timex.FromTimestamp(1709164800000) // 2024-02-29T00:00:00Z
//	_, err := dt.WithYear(2023)                 // CALENDAR_INCONSISTENCY
//
// FromParts rebuilds a DateTime from the fields a parser collected and
// rejects combinations that contradict each other, such as a weekday that
// does not match the date.
package timex
