// File: iso.go
// Title: ISO 8601 Week Date Arithmetic
// Description: ISO weeks start on Monday and week 1 of an ISO year is the
//              week containing January 4th. An ISO year is long (53 weeks)
//              when it starts on a Thursday, or on a Wednesday in a leap year.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"fmt"

	"github.com/msto63/formatting/foundation/core/errors"
)

// IsoDate is an ISO 8601 week date
type IsoDate struct {
	isoYear   int
	long      bool
	yearStart int64 // days since 2001-01-01 of the Monday starting week 1
	week      int
	weekday   int
}

// isoYearStartDays returns the offset from 2001-01-01 of the Monday of the
// week containing January 4th of isoYear
func isoYearStartDays(isoYear int) int64 {
	jan4 := yearStartDays(isoYear) + 3
	return jan4 - floorMod(jan4, 7)
}

// IsLongIsoYear reports whether isoYear has 53 weeks
func IsLongIsoYear(isoYear int) bool {
	return isoYearStartDays(isoYear+1)-isoYearStartDays(isoYear) == 53*7
}

// WeeksInIsoYear returns 52 or 53
func WeeksInIsoYear(isoYear int) int {
	if IsLongIsoYear(isoYear) {
		return 53
	}
	return 52
}

// isoDateFromDays derives the week date of the day lying days after
// 2001-01-01 whose Gregorian year is year
func isoDateFromDays(days int64, year int) IsoDate {
	isoYear := year
	start := isoYearStartDays(year)
	if days < start {
		isoYear--
		start = isoYearStartDays(isoYear)
	} else if next := isoYearStartDays(year + 1); days >= next {
		isoYear++
		start = next
	}
	return IsoDate{
		isoYear:   isoYear,
		long:      IsLongIsoYear(isoYear),
		yearStart: start,
		week:      int((days-start)/7) + 1,
		weekday:   int(floorMod(days, 7)) + 1,
	}
}

// NewIsoDate builds a week date from ISO year, week (1-53) and weekday (1-7)
func NewIsoDate(isoYear, week, weekday int) (IsoDate, error) {
	if err := checkYear(isoYear); err != nil {
		return IsoDate{}, errors.OutOfRange(FieldIsoYear.Label(), MinYear, MaxYear, isoYear, true)
	}
	if weeks := WeeksInIsoYear(isoYear); week < 1 || week > weeks {
		return IsoDate{}, errors.OutOfRange(FieldIsoWeek.Label(), 1, weeks, week, true)
	}
	if weekday < 1 || weekday > 7 {
		return IsoDate{}, errors.OutOfRange(FieldWeekday.Label(), 1, 7, weekday, true)
	}
	return IsoDate{
		isoYear:   isoYear,
		long:      IsLongIsoYear(isoYear),
		yearStart: isoYearStartDays(isoYear),
		week:      week,
		weekday:   weekday,
	}, nil
}

// IsoYear returns the ISO week-numbering year
func (d IsoDate) IsoYear() int { return d.isoYear }

// IsLong reports whether the ISO year has 53 weeks
func (d IsoDate) IsLong() bool { return d.long }

// Week returns the ISO week, starting at 1
func (d IsoDate) Week() int { return d.week }

// Weekday returns the day of the week, 1 for Monday to 7 for Sunday
func (d IsoDate) Weekday() int { return d.weekday }

func (d IsoDate) days() int64 {
	return d.yearStart + int64(d.week-1)*7 + int64(d.weekday-1)
}

// Gregorian converts the week date to a Gregorian date
func (d IsoDate) Gregorian() GregorianDate {
	return dateFromDays(d.days())
}

// WithIsoYear moves d to another ISO year keeping week and weekday. Week 53
// cannot be moved to a short year.
func (d IsoDate) WithIsoYear(isoYear int) (IsoDate, error) {
	if d.week == 53 && !IsLongIsoYear(isoYear) {
		return d, errors.CalendarInconsistency("WithIsoYear",
			fmt.Sprintf("ISO year %d has no week 53", isoYear))
	}
	return NewIsoDate(isoYear, d.week, d.weekday)
}

// WithWeek moves d to another week of the same ISO year
func (d IsoDate) WithWeek(week int) (IsoDate, error) {
	return NewIsoDate(d.isoYear, week, d.weekday)
}

// WithWeekday moves d to another day of the same week
func (d IsoDate) WithWeekday(weekday int) (IsoDate, error) {
	return NewIsoDate(d.isoYear, d.week, weekday)
}

// String returns the week date as YYYY-Www-D
func (d IsoDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", d.isoYear, d.week, d.weekday)
}
