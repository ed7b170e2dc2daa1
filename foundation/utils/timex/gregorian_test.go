// File: gregorian_test.go
// Title: Gregorian Calendar Tests
// Description: Leap years, month tables and timestamp round trips, checked
//              against the time package where it overlaps.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
)

// ===============================
// Leap Years
// ===============================

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{2004, true},
		{2001, false},
		{1600, true},
		{-4, true},
		{-100, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}

	for year := -2000; year <= 3000; year++ {
		want := time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Month() == time.February
		require.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
}

func TestYearStartMatchesDecomposition(t *testing.T) {
	for year := -1200; year <= 3200; year++ {
		start := yearStartDays(year)
		d := dateFromDays(start)
		require.Equal(t, year, d.Year())
		require.Equal(t, 1, d.OrdinalDay())
		require.Equal(t, IsLeapYear(year), d.IsLeapYear())

		last := dateFromDays(start + int64(DaysInYear(year)) - 1)
		require.Equal(t, year, last.Year())
		require.Equal(t, 12, last.Month())
		require.Equal(t, 31, last.MonthDay())
	}
}

// ===============================
// Months
// ===============================

func TestMonthFromOrdinalTable(t *testing.T) {
	for _, leap := range []bool{false, true} {
		year := 2023
		if leap {
			year = 2024
		}
		ordinal := 0
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				ordinal++
				m, d := monthFromOrdinal(ordinal, leap)
				require.Equal(t, month, m, "ordinal %d leap %v", ordinal, leap)
				require.Equal(t, day, d, "ordinal %d leap %v", ordinal, leap)
				require.Equal(t, ordinal, ordinalFromMonth(month, day, leap))
			}
		}
		assert.Equal(t, DaysInYear(year), ordinal)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 30, DaysInMonth(2023, 4))
	assert.Equal(t, 31, DaysInMonth(2023, 12))
}

// ===============================
// Timestamps
// ===============================

func TestFromTimestampMatchesTimePackage(t *testing.T) {
	const step = 7919*MillisPerDay + 12_345_678
	for ts := MinTimestamp; ts <= MaxTimestamp; ts += step {
		dt, err := FromTimestamp(ts)
		require.NoError(t, err)
		require.Equal(t, ts, dt.Timestamp())

		ref := time.UnixMilli(ts).UTC()
		require.Equal(t, ref.Year(), dt.Year(), "ts %d", ts)
		require.Equal(t, int(ref.Month()), dt.Month(), "ts %d", ts)
		require.Equal(t, ref.Day(), dt.MonthDay(), "ts %d", ts)
		require.Equal(t, ref.YearDay(), dt.OrdinalDay(), "ts %d", ts)
		require.Equal(t, ref.Hour(), dt.Hour23())
		require.Equal(t, ref.Minute(), dt.Minute())
		require.Equal(t, ref.Second(), dt.Second())
		require.Equal(t, ref.Nanosecond()/1e6, dt.Millisecond())

		isoYear, isoWeek := ref.ISOWeek()
		require.Equal(t, isoYear, dt.IsoYear(), "ts %d", ts)
		require.Equal(t, isoWeek, dt.IsoWeek(), "ts %d", ts)
		require.Equal(t, (int(ref.Weekday())+6)%7+1, dt.Weekday(), "ts %d", ts)
	}
}

func TestEveryDayAroundCenturies(t *testing.T) {
	for _, year := range []int{1899, 1999, 2099, 2399} {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3*366; i++ {
			ref := start.AddDate(0, 0, i)
			dt, err := FromTime(ref)
			require.NoError(t, err)

			date, err := NewGregorianDate(ref.Year(), int(ref.Month()), ref.Day())
			require.NoError(t, err)
			require.Equal(t, ref.UnixMilli(), date.Timestamp())
			require.Equal(t, date, dt.Date())
			require.True(t, ref.Equal(dt.Time()))
		}
	}
}

func TestTimestampBounds(t *testing.T) {
	_, err := FromTimestamp(MaxTimestamp + 1)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))

	_, err = FromTimestamp(MinTimestamp - 1)
	assert.Error(t, err)

	minDT := MustFromTimestamp(MinTimestamp)
	assert.Equal(t, MinYear, minDT.Year())
	maxDT := MustFromTimestamp(MaxTimestamp)
	assert.Equal(t, MaxYear, maxDT.Year())
	assert.Equal(t, "275760-09-13T00:00:00.000Z", maxDT.String())
	assert.Equal(t, "-271821-04-20T00:00:00.000Z", minDT.String())
}

// ===============================
// Setters
// ===============================

func TestGregorianWithYear(t *testing.T) {
	leapDay, err := NewGregorianDate(2024, 2, 29)
	require.NoError(t, err)

	_, err = leapDay.WithYear(2023)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeCalendarInconsistency))

	moved, err := leapDay.WithYear(2028)
	require.NoError(t, err)
	assert.Equal(t, "2028-02-29", moved.String())

	march, err := NewGregorianDate(2023, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 60, march.OrdinalDay())

	inLeap, err := march.WithYear(2024)
	require.NoError(t, err)
	assert.Equal(t, 61, inLeap.OrdinalDay())
	assert.Equal(t, "2024-03-01", inLeap.String())

	back, err := inLeap.WithYear(2023)
	require.NoError(t, err)
	assert.Equal(t, march, back)

	jan, err := NewGregorianDate(2024, 1, 15)
	require.NoError(t, err)
	jan2023, err := jan.WithYear(2023)
	require.NoError(t, err)
	assert.Equal(t, 15, jan2023.OrdinalDay())
}

func TestGregorianSetterRanges(t *testing.T) {
	jan31, err := NewGregorianDate(2023, 1, 31)
	require.NoError(t, err)

	_, err = jan31.WithMonth(4)
	require.Error(t, err)
	assert.Equal(t, "Expected #monthDay to be between 1 and 30 (included). Actual: 31", err.Error())

	_, err = jan31.WithMonth(13)
	assert.Equal(t, "Expected #month to be between 1 and 12 (included). Actual: 13", err.Error())

	feb, err := NewGregorianDate(2023, 2, 1)
	require.NoError(t, err)
	_, err = feb.WithMonthDay(29)
	assert.Equal(t, "Expected #monthDay to be between 1 and 28 (included). Actual: 29", err.Error())

	_, err = feb.WithOrdinalDay(366)
	assert.Equal(t, "Expected #ordinalDay to be between 1 and 365 (included). Actual: 366", err.Error())

	dec, err := feb.WithOrdinalDay(365)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", dec.String())

	_, err = NewGregorianDate(2023, 0, 1)
	assert.Error(t, err)
	_, err = NewGregorianOrdinalDate(MaxYear+1, 1)
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    int
	}{
		{2001, 1, 1, 1},
		{1970, 1, 1, 4},
		{2000, 12, 31, 7},
		{2024, 2, 29, 4},
	}
	for _, tt := range tests {
		date, err := NewGregorianDate(tt.y, tt.m, tt.d)
		require.NoError(t, err)
		assert.Equal(t, tt.want, date.Weekday(), date.String())
	}
}
