// File: datetime_test.go
// Title: DateTime Tests
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
)

func TestDateTimeFields(t *testing.T) {
	ref := time.Date(2025, time.December, 5, 17, 4, 9, 123_000_000, time.UTC)
	dt, err := FromTime(ref)
	require.NoError(t, err)

	assert.Equal(t, 2025, dt.Get(FieldYear))
	assert.Equal(t, 12, dt.Get(FieldMonth))
	assert.Equal(t, 5, dt.Get(FieldMonthDay))
	assert.Equal(t, 339, dt.Get(FieldOrdinalDay))
	assert.Equal(t, 2025, dt.Get(FieldIsoYear))
	assert.Equal(t, 49, dt.Get(FieldIsoWeek))
	assert.Equal(t, 5, dt.Get(FieldWeekday))
	assert.Equal(t, 12, dt.Get(FieldMeridiem))
	assert.Equal(t, 17, dt.Get(FieldHour23))
	assert.Equal(t, 5, dt.Get(FieldHour11))
	assert.Equal(t, 4, dt.Get(FieldMinute))
	assert.Equal(t, 9, dt.Get(FieldSecond))
	assert.Equal(t, 123, dt.Get(FieldMillisecond))
	assert.Equal(t, "2025-12-05T17:04:09.123Z", dt.String())
	assert.False(t, dt.IsLeapYear())
	assert.True(t, ref.Equal(dt.Time()))
}

func TestDateTimeSetters(t *testing.T) {
	dt, err := FromTime(time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC))
	require.NoError(t, err)

	_, err = dt.WithYear(2025)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeCalendarInconsistency))

	tests := []struct {
		name string
		set  func(DateTime) (DateTime, error)
		want string
	}{
		{"year", func(d DateTime) (DateTime, error) { return d.WithYear(2000) }, "2000-02-29T23:59:59.999Z"},
		{"month", func(d DateTime) (DateTime, error) { return d.WithMonth(3) }, "2024-03-29T23:59:59.999Z"},
		{"month day", func(d DateTime) (DateTime, error) { return d.WithMonthDay(1) }, "2024-02-01T23:59:59.999Z"},
		{"ordinal day", func(d DateTime) (DateTime, error) { return d.WithOrdinalDay(366) }, "2024-12-31T23:59:59.999Z"},
		{"iso week", func(d DateTime) (DateTime, error) { return d.WithIsoWeek(1) }, "2024-01-04T23:59:59.999Z"},
		{"weekday", func(d DateTime) (DateTime, error) { return d.WithWeekday(1) }, "2024-02-26T23:59:59.999Z"},
		{"iso year", func(d DateTime) (DateTime, error) { return d.WithIsoYear(2020) }, "2020-02-27T23:59:59.999Z"},
		{"hour23", func(d DateTime) (DateTime, error) { return d.WithHour23(0) }, "2024-02-29T00:59:59.999Z"},
		{"hour11", func(d DateTime) (DateTime, error) { return d.WithHour11(1) }, "2024-02-29T13:59:59.999Z"},
		{"meridiem", func(d DateTime) (DateTime, error) { return d.WithMeridiem(0) }, "2024-02-29T11:59:59.999Z"},
		{"minute", func(d DateTime) (DateTime, error) { return d.WithMinute(0) }, "2024-02-29T23:00:59.999Z"},
		{"second", func(d DateTime) (DateTime, error) { return d.WithSecond(30) }, "2024-02-29T23:59:30.999Z"},
		{"millisecond", func(d DateTime) (DateTime, error) { return d.WithMillisecond(0) }, "2024-02-29T23:59:59.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.set(dt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	for _, set := range []func(DateTime) (DateTime, error){
		func(d DateTime) (DateTime, error) { return d.WithHour23(24) },
		func(d DateTime) (DateTime, error) { return d.WithHour11(12) },
		func(d DateTime) (DateTime, error) { return d.WithMeridiem(6) },
		func(d DateTime) (DateTime, error) { return d.WithMinute(60) },
		func(d DateTime) (DateTime, error) { return d.WithSecond(-1) },
		func(d DateTime) (DateTime, error) { return d.WithMillisecond(1000) },
	} {
		_, err := set(dt)
		assert.Error(t, err)
	}
}

func TestFromParts(t *testing.T) {
	tests := []struct {
		name    string
		parts   Parts
		want    string
		wantErr mdwerror.Code
	}{
		{
			name:  "empty parts give the epoch",
			parts: Parts{},
			want:  "1970-01-01T00:00:00.000Z",
		},
		{
			name:  "calendar date",
			parts: Parts{FieldYear: 2025, FieldMonth: 12, FieldMonthDay: 5},
			want:  "2025-12-05T00:00:00.000Z",
		},
		{
			name:  "ordinal date",
			parts: Parts{FieldYear: 2024, FieldOrdinalDay: 60},
			want:  "2024-02-29T00:00:00.000Z",
		},
		{
			name:  "week date",
			parts: Parts{FieldIsoYear: 2004, FieldIsoWeek: 53, FieldWeekday: 6},
			want:  "2005-01-01T00:00:00.000Z",
		},
		{
			name:  "12 hour clock",
			parts: Parts{FieldYear: 2025, FieldHour11: 5, FieldMeridiem: 12, FieldMinute: 30},
			want:  "2025-01-01T17:30:00.000Z",
		},
		{
			name: "redundant but consistent",
			parts: Parts{FieldYear: 2005, FieldMonth: 1, FieldMonthDay: 1, FieldIsoYear: 2004,
				FieldWeekday: 6, FieldHour23: 13, FieldHour11: 1, FieldMeridiem: 12},
			want: "2005-01-01T13:00:00.000Z",
		},
		{
			name:    "weekday contradicts date",
			parts:   Parts{FieldYear: 2025, FieldMonth: 12, FieldMonthDay: 5, FieldWeekday: 1},
			wantErr: mdwerror.CodeCalendarInconsistency,
		},
		{
			name:    "hour23 contradicts hour11",
			parts:   Parts{FieldHour23: 13, FieldHour11: 2},
			wantErr: mdwerror.CodeCalendarInconsistency,
		},
		{
			name:    "no such day",
			parts:   Parts{FieldYear: 2023, FieldMonth: 2, FieldMonthDay: 29},
			wantErr: mdwerror.CodeValueOutOfRange,
		},
		{
			name:    "minute out of range",
			parts:   Parts{FieldMinute: 61},
			wantErr: mdwerror.CodeValueOutOfRange,
		},
		{
			name:    "bad meridiem",
			parts:   Parts{FieldMeridiem: 3},
			wantErr: mdwerror.CodeLiteralMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := FromParts(tt.parts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, mdwerror.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dt.String())
		})
	}
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "#isoWeek", FieldIsoWeek.Label())
	assert.Equal(t, "Field(99)", Field(99).String())
}

func TestFromDateBounds(t *testing.T) {
	date, err := NewGregorianDate(2025, 1, 1)
	require.NoError(t, err)
	_, err = FromDate(date, int(MillisPerDay))
	assert.Error(t, err)
}
