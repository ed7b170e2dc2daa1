// File: gregorian.go
// Title: Gregorian Calendar Arithmetic
// Description: Converts between day offsets and Gregorian date parts in
//              constant time. Days are decomposed into 400, 100, 4 and 1 year
//              periods counted from 2001-01-01, the first day of a 400 year
//              leap cycle.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Replaced time.Time helpers by closed-form calendar math

package timex

import (
	"fmt"
	"math"

	"github.com/msto63/formatting/foundation/core/errors"
)

const (
	// MillisPerDay is the number of milliseconds in a calendar day
	MillisPerDay int64 = 86_400_000

	// MaxTimestamp is the largest supported timestamp (ms since 1970-01-01T00:00:00Z)
	MaxTimestamp int64 = 8_640_000_000_000_000

	// MinTimestamp is the smallest supported timestamp
	MinTimestamp = -MaxTimestamp

	// MinYear and MaxYear bound the years reachable within the timestamp range
	MinYear = -271821
	MaxYear = 275760

	// anchorMillis is 2001-01-01T00:00:00Z
	anchorMillis int64 = 978_307_200_000
	anchorYear         = 2001

	daysPer400Years = 146_097
	daysPer100Years = 36_524
	daysPer4Years   = 1_461
	daysPerYear     = 365

	// ordinal day of February 29 in a leap year
	leapDayOrdinal = 60
)

// daysBeforeMonth[m-1] is the number of days preceding month m in a common year
var daysBeforeMonth = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// GregorianDate is a proleptic Gregorian calendar date. All fields are
// computed at construction, the value is immutable.
type GregorianDate struct {
	year       int
	leap       bool
	yearStart  int64 // days since 2001-01-01
	ordinalDay int
	month      int
	monthDay   int
}

// dateFromDays builds the date that lies days after 2001-01-01
func dateFromDays(days int64) GregorianDate {
	q400 := floorDiv(days, daysPer400Years)
	r := days - q400*daysPer400Years

	// the last day of a 400 year cycle would yield a fourth 100 year period
	q100 := min64(r/daysPer100Years, 3)
	r -= q100 * daysPer100Years

	q4 := r / daysPer4Years
	r -= q4 * daysPer4Years

	q1 := min64(r/daysPerYear, 3)
	r -= q1 * daysPerYear

	year := anchorYear + int(400*q400+100*q100+4*q4+q1)
	leap := q1 == 3 && (q4 != 24 || q100 == 3)
	return newGregorianDate(year, leap, days-r, int(r)+1)
}

func newGregorianDate(year int, leap bool, yearStart int64, ordinalDay int) GregorianDate {
	month, monthDay := monthFromOrdinal(ordinalDay, leap)
	return GregorianDate{
		year:       year,
		leap:       leap,
		yearStart:  yearStart,
		ordinalDay: ordinalDay,
		month:      month,
		monthDay:   monthDay,
	}
}

// yearStartDays returns the offset in days of January 1st of year from
// 2001-01-01, running the period decomposition in reverse
func yearStartDays(year int) int64 {
	y := int64(year - anchorYear)
	q400 := floorDiv(y, 400)
	r := y - 400*q400
	q100 := r / 100
	r -= 100 * q100
	q4 := r / 4
	q1 := r - 4*q4
	return q400*daysPer400Years + q100*daysPer100Years + q4*daysPer4Years + q1*daysPerYear
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	y := int64(year - anchorYear)
	r := y - 400*floorDiv(y, 400)
	q100 := r / 100
	r -= 100 * q100
	return r%4 == 3 && (r/4 != 24 || q100 == 3)
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days of month (1-12) in year
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBeforeMonth[month] - daysBeforeMonth[month-1]
}

// monthFromOrdinal derives month and day of month from the ordinal day.
// January and February are compared directly, later months use an
// approximation that is corrected against daysBeforeMonth.
func monthFromOrdinal(ordinalDay int, leap bool) (month, monthDay int) {
	if ordinalDay <= 31 {
		return 1, ordinalDay
	}
	leapDays := 0
	if leap {
		leapDays = 1
	}
	if ordinalDay <= 59+leapDays {
		return 2, ordinalDay - 31
	}

	day := ordinalDay - leapDays
	month = int(math.Floor(float64(day-59)/30.6-0.018)) + 3
	for month < 12 && day > daysBeforeMonth[month] {
		month++
	}
	for month > 3 && day <= daysBeforeMonth[month-1] {
		month--
	}
	return month, day - daysBeforeMonth[month-1]
}

// ordinalFromMonth is the inverse of monthFromOrdinal
func ordinalFromMonth(month, monthDay int, leap bool) int {
	ordinal := daysBeforeMonth[month-1] + monthDay
	if leap && month > 2 {
		ordinal++
	}
	return ordinal
}

// NewGregorianDate builds a date from year, month (1-12) and day of month
func NewGregorianDate(year, month, monthDay int) (GregorianDate, error) {
	if err := checkYear(year); err != nil {
		return GregorianDate{}, err
	}
	if month < 1 || month > 12 {
		return GregorianDate{}, errors.OutOfRange(FieldMonth.Label(), 1, 12, month, true)
	}
	if dim := DaysInMonth(year, month); monthDay < 1 || monthDay > dim {
		return GregorianDate{}, errors.OutOfRange(FieldMonthDay.Label(), 1, dim, monthDay, true)
	}
	leap := IsLeapYear(year)
	return newGregorianDate(year, leap, yearStartDays(year), ordinalFromMonth(month, monthDay, leap)), nil
}

// NewGregorianOrdinalDate builds a date from year and ordinal day (1-366)
func NewGregorianOrdinalDate(year, ordinalDay int) (GregorianDate, error) {
	if err := checkYear(year); err != nil {
		return GregorianDate{}, err
	}
	if diy := DaysInYear(year); ordinalDay < 1 || ordinalDay > diy {
		return GregorianDate{}, errors.OutOfRange(FieldOrdinalDay.Label(), 1, diy, ordinalDay, true)
	}
	return newGregorianDate(year, IsLeapYear(year), yearStartDays(year), ordinalDay), nil
}

// Year returns the Gregorian year
func (d GregorianDate) Year() int { return d.year }

// IsLeapYear reports whether the year of d is a leap year
func (d GregorianDate) IsLeapYear() bool { return d.leap }

// Month returns the month, 1 for January
func (d GregorianDate) Month() int { return d.month }

// MonthDay returns the day of the month, starting at 1
func (d GregorianDate) MonthDay() int { return d.monthDay }

// OrdinalDay returns the day of the year, starting at 1
func (d GregorianDate) OrdinalDay() int { return d.ordinalDay }

// DaysInYear returns the length of the year of d
func (d GregorianDate) DaysInYear() int {
	if d.leap {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of the month of d
func (d GregorianDate) DaysInMonth() int {
	return DaysInMonth(d.year, d.month)
}

// days returns the offset of d from 2001-01-01
func (d GregorianDate) days() int64 {
	return d.yearStart + int64(d.ordinalDay-1)
}

// YearStartTimestamp returns January 1st, 00:00 UTC of the year of d in
// milliseconds since the Unix epoch
func (d GregorianDate) YearStartTimestamp() int64 {
	return anchorMillis + d.yearStart*MillisPerDay
}

// Timestamp returns 00:00 UTC of d in milliseconds since the Unix epoch
func (d GregorianDate) Timestamp() int64 {
	return anchorMillis + d.days()*MillisPerDay
}

// Weekday returns the ISO day of the week, 1 for Monday to 7 for Sunday
func (d GregorianDate) Weekday() int {
	// 2001-01-01 is a Monday
	return int(floorMod(d.days(), 7)) + 1
}

// WithYear moves d to another year keeping month and day. February 29
// cannot be moved to a common year.
func (d GregorianDate) WithYear(year int) (GregorianDate, error) {
	if err := checkYear(year); err != nil {
		return d, err
	}
	leap := IsLeapYear(year)
	if d.month == 2 && d.monthDay == 29 && !leap {
		return d, errors.CalendarInconsistency("WithYear",
			fmt.Sprintf("February 29 does not exist in year %d", year))
	}
	ordinal := d.ordinalDay
	if ordinal >= leapDayOrdinal {
		switch {
		case d.leap && !leap:
			ordinal--
		case !d.leap && leap:
			ordinal++
		}
	}
	return newGregorianDate(year, leap, yearStartDays(year), ordinal), nil
}

// WithMonth moves d to another month of the same year keeping the day
func (d GregorianDate) WithMonth(month int) (GregorianDate, error) {
	if month < 1 || month > 12 {
		return d, errors.OutOfRange(FieldMonth.Label(), 1, 12, month, true)
	}
	if dim := DaysInMonth(d.year, month); d.monthDay > dim {
		return d, errors.OutOfRange(FieldMonthDay.Label(), 1, dim, d.monthDay, true)
	}
	return newGregorianDate(d.year, d.leap, d.yearStart, ordinalFromMonth(month, d.monthDay, d.leap)), nil
}

// WithMonthDay moves d to another day of the same month
func (d GregorianDate) WithMonthDay(monthDay int) (GregorianDate, error) {
	if dim := d.DaysInMonth(); monthDay < 1 || monthDay > dim {
		return d, errors.OutOfRange(FieldMonthDay.Label(), 1, dim, monthDay, true)
	}
	return newGregorianDate(d.year, d.leap, d.yearStart, ordinalFromMonth(d.month, monthDay, d.leap)), nil
}

// WithOrdinalDay moves d to another day of the same year
func (d GregorianDate) WithOrdinalDay(ordinalDay int) (GregorianDate, error) {
	if diy := d.DaysInYear(); ordinalDay < 1 || ordinalDay > diy {
		return d, errors.OutOfRange(FieldOrdinalDay.Label(), 1, diy, ordinalDay, true)
	}
	return newGregorianDate(d.year, d.leap, d.yearStart, ordinalDay), nil
}

// String returns the date as YYYY-MM-DD
func (d GregorianDate) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.monthDay)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.monthDay)
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return errors.OutOfRange(FieldYear.Label(), MinYear, MaxYear, year, true)
	}
	return nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
