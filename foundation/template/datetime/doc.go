// Package datetime provides date-time templates built on the template
// engine.
//
// Package: datetime
// Title: Date-Time Templates
// Description: Binds the tags y, yy, yyyy, R, RR, RRRR, M, MM, MMM, MMMM,
//              I, II, d, dd, D, DDD, i, iii, iiii, a, H, HH, K, KK, m, mm,
//              s, ss, S and SSS to integer placeholders. Names (MMM, MMMM,
//              iii, iiii, a) come from the locale name table of a Context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Tags:
//
//	y, yyyy     year, any width / 4 digits
//	yy          year 2000-2099 as 2 digits
//	R, RR, RRRR ISO week-based year, like y, yy, yyyy
//	M, MM       month 1-12
//	MMM, MMMM   short / long month name
//	I, II       ISO week 1-53
//	d, dd       day of month 1-31
//	D, DDD      day of year 1-366
//	i           ISO weekday 1-7, Monday is 1
//	iii, iiii   short / long weekday name
//	a           day period, AM is 0 and PM is 12
//	H, HH       hour 0-23
//	K, KK       hour 0-11
//	m, mm       minute
//	s, ss       second
//	S, SSS      millisecond
//
// A single letter reads the number without leading zeros, a repeated letter
// reads exactly that many digits.
//
// Usage:
//
//	ctx, err := datetime.NewContext(datetime.Options{Locale: "fr-FR"})
//	tmpl, err := ctx.Compile("{iiii} {d} {MMMM} {yyyy}")
//
//	dt, err := datetime.Parse(tmpl, "vendredi 5 décembre 2025")
//	text, err := datetime.Format(tmpl, dt)
package datetime
