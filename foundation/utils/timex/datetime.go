// File: datetime.go
// Title: Calendar Date-Time Value
// Description: DateTime combines a UTC millisecond timestamp with its
//              Gregorian date, ISO week date and time of day. All parts are
//              derived once at construction, so a DateTime is immutable and
//              safe for concurrent use.
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
	"sort"
	"time"

	"github.com/msto63/formatting/foundation/core/errors"
)

// Field identifies one part of a DateTime
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldMonthDay
	FieldOrdinalDay
	FieldIsoYear
	FieldIsoWeek
	FieldWeekday
	FieldMeridiem
	FieldHour23
	FieldHour11
	FieldMinute
	FieldSecond
	FieldMillisecond
)

var fieldNames = [...]string{
	FieldYear:        "year",
	FieldMonth:       "month",
	FieldMonthDay:    "monthDay",
	FieldOrdinalDay:  "ordinalDay",
	FieldIsoYear:     "isoYear",
	FieldIsoWeek:     "isoWeek",
	FieldWeekday:     "weekday",
	FieldMeridiem:    "meridiem",
	FieldHour23:      "hour23",
	FieldHour11:      "hour11",
	FieldMinute:      "minute",
	FieldSecond:      "second",
	FieldMillisecond: "millisecond",
}

// String returns the field name
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label returns the field name as used in error messages
func (f Field) Label() string {
	return "#" + f.String()
}

// DateTime is a point in time with millisecond precision in UTC
type DateTime struct {
	timestamp   int64
	date        GregorianDate
	iso         IsoDate
	millisOfDay int
}

// FromTimestamp builds a DateTime from milliseconds since 1970-01-01T00:00:00Z
func FromTimestamp(timestamp int64) (DateTime, error) {
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return DateTime{}, errors.OutOfRange("#timestamp", MinTimestamp, MaxTimestamp, timestamp, true)
	}
	rel := timestamp - anchorMillis
	days := floorDiv(rel, MillisPerDay)
	date := dateFromDays(days)
	return DateTime{
		timestamp:   timestamp,
		date:        date,
		iso:         isoDateFromDays(days, date.year),
		millisOfDay: int(rel - days*MillisPerDay),
	}, nil
}

// MustFromTimestamp is like FromTimestamp but panics on an out of range
// timestamp. Use it for constants only.
func MustFromTimestamp(timestamp int64) DateTime {
	dt, err := FromTimestamp(timestamp)
	if err != nil {
		panic(err)
	}
	return dt
}

// FromTime builds a DateTime from the instant t
func FromTime(t time.Time) (DateTime, error) {
	return FromTimestamp(t.UnixMilli())
}

// FromDate builds a DateTime at millisOfDay on date
func FromDate(date GregorianDate, millisOfDay int) (DateTime, error) {
	if millisOfDay < 0 || int64(millisOfDay) >= MillisPerDay {
		return DateTime{}, errors.OutOfRange("#millisOfDay", 0, MillisPerDay, millisOfDay, false)
	}
	return FromTimestamp(date.Timestamp() + int64(millisOfDay))
}

// Timestamp returns milliseconds since 1970-01-01T00:00:00Z
func (dt DateTime) Timestamp() int64 { return dt.timestamp }

// Time returns dt as a UTC time.Time
func (dt DateTime) Time() time.Time { return time.UnixMilli(dt.timestamp).UTC() }

// Date returns the Gregorian date part
func (dt DateTime) Date() GregorianDate { return dt.date }

// IsoDate returns the ISO week date part
func (dt DateTime) IsoDate() IsoDate { return dt.iso }

// Year returns the Gregorian year
func (dt DateTime) Year() int { return dt.date.year }

// IsLeapYear reports whether the Gregorian year is a leap year
func (dt DateTime) IsLeapYear() bool { return dt.date.leap }

// Month returns the month, 1 for January
func (dt DateTime) Month() int { return dt.date.month }

// MonthDay returns the day of the month
func (dt DateTime) MonthDay() int { return dt.date.monthDay }

// OrdinalDay returns the day of the year
func (dt DateTime) OrdinalDay() int { return dt.date.ordinalDay }

// IsoYear returns the ISO week-numbering year
func (dt DateTime) IsoYear() int { return dt.iso.isoYear }

// IsoWeek returns the ISO week
func (dt DateTime) IsoWeek() int { return dt.iso.week }

// IsLongIsoYear reports whether the ISO year has 53 weeks
func (dt DateTime) IsLongIsoYear() bool { return dt.iso.long }

// Weekday returns the day of the week, 1 for Monday to 7 for Sunday
func (dt DateTime) Weekday() int { return dt.iso.weekday }

// Hour23 returns the hour in 0-23
func (dt DateTime) Hour23() int { return dt.millisOfDay / 3_600_000 }

// Hour11 returns the hour in 0-11
func (dt DateTime) Hour11() int { return dt.Hour23() % 12 }

// Meridiem returns 0 before noon and 12 from noon on
func (dt DateTime) Meridiem() int { return dt.Hour23() - dt.Hour11() }

// Minute returns the minute in 0-59
func (dt DateTime) Minute() int { return dt.millisOfDay / 60_000 % 60 }

// Second returns the second in 0-59
func (dt DateTime) Second() int { return dt.millisOfDay / 1_000 % 60 }

// Millisecond returns the millisecond in 0-999
func (dt DateTime) Millisecond() int { return dt.millisOfDay % 1_000 }

// MillisOfDay returns the milliseconds elapsed since midnight
func (dt DateTime) MillisOfDay() int { return dt.millisOfDay }

// Get returns the value of field f
func (dt DateTime) Get(f Field) int {
	switch f {
	case FieldYear:
		return dt.Year()
	case FieldMonth:
		return dt.Month()
	case FieldMonthDay:
		return dt.MonthDay()
	case FieldOrdinalDay:
		return dt.OrdinalDay()
	case FieldIsoYear:
		return dt.IsoYear()
	case FieldIsoWeek:
		return dt.IsoWeek()
	case FieldWeekday:
		return dt.Weekday()
	case FieldMeridiem:
		return dt.Meridiem()
	case FieldHour23:
		return dt.Hour23()
	case FieldHour11:
		return dt.Hour11()
	case FieldMinute:
		return dt.Minute()
	case FieldSecond:
		return dt.Second()
	case FieldMillisecond:
		return dt.Millisecond()
	default:
		return 0
	}
}

func (dt DateTime) withDate(date GregorianDate) (DateTime, error) {
	return FromDate(date, dt.millisOfDay)
}

func (dt DateTime) withIsoDate(iso IsoDate) (DateTime, error) {
	return FromDate(iso.Gregorian(), dt.millisOfDay)
}

func (dt DateTime) withTime(hour23, minute, second, millisecond int) (DateTime, error) {
	return FromDate(dt.date, ((hour23*60+minute)*60+second)*1_000+millisecond)
}

// WithYear moves dt to another Gregorian year
func (dt DateTime) WithYear(year int) (DateTime, error) {
	date, err := dt.date.WithYear(year)
	if err != nil {
		return dt, err
	}
	return dt.withDate(date)
}

// WithMonth moves dt to another month
func (dt DateTime) WithMonth(month int) (DateTime, error) {
	date, err := dt.date.WithMonth(month)
	if err != nil {
		return dt, err
	}
	return dt.withDate(date)
}

// WithMonthDay moves dt to another day of the month
func (dt DateTime) WithMonthDay(monthDay int) (DateTime, error) {
	date, err := dt.date.WithMonthDay(monthDay)
	if err != nil {
		return dt, err
	}
	return dt.withDate(date)
}

// WithOrdinalDay moves dt to another day of the year
func (dt DateTime) WithOrdinalDay(ordinalDay int) (DateTime, error) {
	date, err := dt.date.WithOrdinalDay(ordinalDay)
	if err != nil {
		return dt, err
	}
	return dt.withDate(date)
}

// WithIsoYear moves dt to another ISO year keeping week and weekday
func (dt DateTime) WithIsoYear(isoYear int) (DateTime, error) {
	iso, err := dt.iso.WithIsoYear(isoYear)
	if err != nil {
		return dt, err
	}
	return dt.withIsoDate(iso)
}

// WithIsoWeek moves dt to another ISO week
func (dt DateTime) WithIsoWeek(week int) (DateTime, error) {
	iso, err := dt.iso.WithWeek(week)
	if err != nil {
		return dt, err
	}
	return dt.withIsoDate(iso)
}

// WithWeekday moves dt to another day of the same ISO week
func (dt DateTime) WithWeekday(weekday int) (DateTime, error) {
	iso, err := dt.iso.WithWeekday(weekday)
	if err != nil {
		return dt, err
	}
	return dt.withIsoDate(iso)
}

// WithHour23 sets the hour (0-23)
func (dt DateTime) WithHour23(hour int) (DateTime, error) {
	if hour < 0 || hour > 23 {
		return dt, errors.OutOfRange(FieldHour23.Label(), 0, 23, hour, true)
	}
	return dt.withTime(hour, dt.Minute(), dt.Second(), dt.Millisecond())
}

// WithHour11 sets the hour (0-11) keeping the meridiem
func (dt DateTime) WithHour11(hour int) (DateTime, error) {
	if hour < 0 || hour > 11 {
		return dt, errors.OutOfRange(FieldHour11.Label(), 0, 11, hour, true)
	}
	return dt.withTime(dt.Meridiem()+hour, dt.Minute(), dt.Second(), dt.Millisecond())
}

// WithMeridiem sets the meridiem, 0 for AM and 12 for PM
func (dt DateTime) WithMeridiem(meridiem int) (DateTime, error) {
	if meridiem != 0 && meridiem != 12 {
		return dt, errors.LiteralFormatMismatch(FieldMeridiem.Label(), []string{"0", "12"}, meridiem)
	}
	return dt.withTime(meridiem+dt.Hour11(), dt.Minute(), dt.Second(), dt.Millisecond())
}

// WithMinute sets the minute (0-59)
func (dt DateTime) WithMinute(minute int) (DateTime, error) {
	if minute < 0 || minute > 59 {
		return dt, errors.OutOfRange(FieldMinute.Label(), 0, 59, minute, true)
	}
	return dt.withTime(dt.Hour23(), minute, dt.Second(), dt.Millisecond())
}

// WithSecond sets the second (0-59)
func (dt DateTime) WithSecond(second int) (DateTime, error) {
	if second < 0 || second > 59 {
		return dt, errors.OutOfRange(FieldSecond.Label(), 0, 59, second, true)
	}
	return dt.withTime(dt.Hour23(), dt.Minute(), second, dt.Millisecond())
}

// WithMillisecond sets the millisecond (0-999)
func (dt DateTime) WithMillisecond(millisecond int) (DateTime, error) {
	if millisecond < 0 || millisecond > 999 {
		return dt, errors.OutOfRange(FieldMillisecond.Label(), 0, 999, millisecond, true)
	}
	return dt.withTime(dt.Hour23(), dt.Minute(), dt.Second(), millisecond)
}

// String returns dt in ISO 8601 extended format
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d.%03dZ",
		dt.date, dt.Hour23(), dt.Minute(), dt.Second(), dt.Millisecond())
}

// Equal reports whether both values denote the same instant
func (dt DateTime) Equal(other DateTime) bool {
	return dt.timestamp == other.timestamp
}

// Parts holds a partial set of date-time fields, as collected by a parser
type Parts map[Field]int

// FromParts builds a DateTime from parts. Missing fields default to
// 1970-01-01T00:00:00.000. The date is built from year with month and day,
// year with ordinal day, or ISO year with week and weekday, in that order of
// preference. Every other field present must agree with the result.
func FromParts(parts Parts) (DateTime, error) {
	date, err := parts.date()
	if err != nil {
		return DateTime{}, err
	}

	hour, err := parts.hour()
	if err != nil {
		return DateTime{}, err
	}
	minute := parts.get(FieldMinute, 0)
	second := parts.get(FieldSecond, 0)
	millisecond := parts.get(FieldMillisecond, 0)

	checks := []struct {
		field    Field
		value    int
		min, max int
	}{
		{FieldMinute, minute, 0, 59},
		{FieldSecond, second, 0, 59},
		{FieldMillisecond, millisecond, 0, 999},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return DateTime{}, errors.OutOfRange(c.field.Label(), c.min, c.max, c.value, true)
		}
	}

	dt, err := FromDate(date, ((hour*60+minute)*60+second)*1_000+millisecond)
	if err != nil {
		return DateTime{}, err
	}

	fields := make([]Field, 0, len(parts))
	for f := range parts {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	for _, f := range fields {
		if got := dt.Get(f); got != parts[f] {
			return DateTime{}, errors.CalendarInconsistency("FromParts",
				fmt.Sprintf("%s is %d but the other fields give %d (%s)", f.Label(), parts[f], got, dt))
		}
	}
	return dt, nil
}

func (p Parts) get(f Field, def int) int {
	if v, ok := p[f]; ok {
		return v
	}
	return def
}

func (p Parts) has(f Field) bool {
	_, ok := p[f]
	return ok
}

func (p Parts) date() (GregorianDate, error) {
	hasYear := p.has(FieldYear)
	switch {
	case hasYear && (p.has(FieldMonth) || p.has(FieldMonthDay)):
		return NewGregorianDate(p[FieldYear], p.get(FieldMonth, 1), p.get(FieldMonthDay, 1))
	case hasYear && p.has(FieldOrdinalDay):
		return NewGregorianOrdinalDate(p[FieldYear], p[FieldOrdinalDay])
	case p.has(FieldIsoYear):
		iso, err := NewIsoDate(p[FieldIsoYear], p.get(FieldIsoWeek, 1), p.get(FieldWeekday, 1))
		if err != nil {
			return GregorianDate{}, err
		}
		return iso.Gregorian(), nil
	case p.has(FieldOrdinalDay):
		return NewGregorianOrdinalDate(p.get(FieldYear, 1970), p[FieldOrdinalDay])
	default:
		return NewGregorianDate(p.get(FieldYear, 1970), p.get(FieldMonth, 1), p.get(FieldMonthDay, 1))
	}
}

func (p Parts) hour() (int, error) {
	if p.has(FieldHour23) {
		h := p[FieldHour23]
		if h < 0 || h > 23 {
			return 0, errors.OutOfRange(FieldHour23.Label(), 0, 23, h, true)
		}
		return h, nil
	}
	h := p.get(FieldHour11, 0)
	if h < 0 || h > 11 {
		return 0, errors.OutOfRange(FieldHour11.Label(), 0, 11, h, true)
	}
	m := p.get(FieldMeridiem, 0)
	if m != 0 && m != 12 {
		return 0, errors.LiteralFormatMismatch(FieldMeridiem.Label(), []string{"0", "12"}, m)
	}
	return h + m, nil
}
