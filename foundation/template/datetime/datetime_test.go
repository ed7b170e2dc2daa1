// File: datetime_test.go
// Title: Date-Time Template Tests
// Description: Tests for the tag placeholders, layout compilation and the
//              conversion between records and date-time values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package datetime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
	"github.com/msto63/formatting/foundation/core/i18n"
	"github.com/msto63/formatting/foundation/template"
	"github.com/msto63/formatting/foundation/utils/timex"
)

func newContext(t *testing.T, locale string) *Context {
	t.Helper()
	c, err := NewContext(Options{Locale: locale})
	require.NoError(t, err)
	return c
}

func dateTime(t *testing.T, year int, month time.Month, day, hour, min, sec, ms int) timex.DateTime {
	t.Helper()
	dt, err := timex.FromTime(time.Date(year, month, day, hour, min, sec, ms*int(time.Millisecond), time.UTC))
	require.NoError(t, err)
	return dt
}

func TestTemplateInverse(t *testing.T) {
	c := newContext(t, "")
	tmpl := c.MustCompile("{dd}/{MM}/{yyyy}")

	r, err := tmpl.Parse("05/12/2025")
	require.NoError(t, err)
	assert.Equal(t, template.Record{"dd": 5, "MM": 12, "yyyy": 2025}, r)

	out, err := tmpl.Format(r)
	require.NoError(t, err)
	assert.Equal(t, "05/12/2025", out)

	dt, err := ToDateTime(r)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), dt.Time())
}

func TestTrailingGarbage(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{dd}/{MM}/{yyyy}")

	_, err := tmpl.Parse("05/12/2025extra")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeTrailingInput))
	assert.Equal(t, "Expected text not consumed by template to be empty. Actual: 'extra'", err.Error())
}

func TestParseErrors(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{dd}/{MM}/{yyyy}")

	tests := []struct {
		name    string
		input   string
		code    mdwerror.Code
		message string
	}{
		{
			name:    "month out of range",
			input:   "05/13/2025",
			code:    mdwerror.CodeValueOutOfRange,
			message: "Expected #MM to be between 1 and 12 (included). Actual: 13",
		},
		{
			name:    "day without leading zero",
			input:   "5/12/2025",
			code:    mdwerror.CodeInvalidLength,
			message: "Expected length of integer part of #dd to be: 2. Actual: 1",
		},
		{
			name:    "wrong separator",
			input:   "05-12-2025",
			code:    mdwerror.CodeLiteralMismatch,
			message: "Expected remaining text for separator at position 2 to start with '/'. Actual: '-12-2025'",
		},
		{
			name:    "short text",
			input:   "05/12/25",
			code:    mdwerror.CodeInvalidLength,
			message: "Expected length of #yyyy to be: 4. Actual: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tmpl.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, tt.code), "code of %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestDayThirtyOneInThirtyDayMonth(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{dd}/{MM}/{yyyy}")

	r, err := tmpl.Parse("31/04/2025")
	require.NoError(t, err)
	_, err = ToDateTime(r)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))
}

func TestLocaleNames(t *testing.T) {
	tests := []struct {
		locale string
		layout string
		text   string
	}{
		{"en-US", "{iiii}, {MMMM} {d}, {yyyy}", "Friday, December 5, 2025"},
		{"en-US", "{iii} {dd} {MMM} {yyyy}", "Fri 05 Dec 2025"},
		{"fr-FR", "{iiii} {d} {MMMM} {yyyy}", "vendredi 5 décembre 2025"},
		{"fr-FR", "{iii} {d} {MMM} {yy}", "ven. 5 déc. 25"},
		{"de-DE", "{iiii}, {d}. {MMMM} {yyyy}", "Freitag, 5. Dezember 2025"},
		{"de-DE", "{iii} {dd}.{MMM} {yyyy}", "Fr. 05.Dez. 2025"},
	}

	want := dateTime(t, 2025, time.December, 5, 0, 0, 0, 0)
	for _, tt := range tests {
		t.Run(tt.locale+" "+tt.layout, func(t *testing.T) {
			tmpl := newContext(t, tt.locale).MustCompile(tt.layout)

			dt, err := Parse(tmpl, tt.text)
			require.NoError(t, err)
			assert.True(t, want.Equal(dt), "got %s", dt)

			out, err := Format(tmpl, dt)
			require.NoError(t, err)
			assert.Equal(t, tt.text, out)
		})
	}
}

func TestDottedLayoutsWithVariableWidthTags(t *testing.T) {
	tests := []struct {
		layout string
		dt     timex.DateTime
		text   string
	}{
		{"{d}.{M}.{yyyy}", dateTime(t, 2025, time.December, 5, 0, 0, 0, 0), "5.12.2025"},
		{"{d}.{M}.{y}", dateTime(t, 2025, time.December, 5, 0, 0, 0, 0), "5.12.2025"},
		{"{d}.{M}.{yyyy} {H}.{mm}", dateTime(t, 2025, time.December, 5, 9, 30, 0, 0), "5.12.2025 9.30"},
		{"{d}.{M}.{yyyy} {H}.{mm}.{s}.{S}", dateTime(t, 2025, time.January, 2, 3, 4, 5, 6), "2.1.2025 3.04.5.6"},
		{"{d}.{M}.{yyyy} {K}.{mm} {a}", dateTime(t, 2025, time.December, 5, 21, 15, 0, 0), "5.12.2025 9.15 PM"},
		{"{R}.{I}.{i}", dateTime(t, 2025, time.December, 5, 0, 0, 0, 0), "2025.49.5"},
	}

	c := newContext(t, "de-DE")
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			tmpl := c.MustCompile(tt.layout)

			out, err := Format(tmpl, tt.dt)
			require.NoError(t, err)
			assert.Equal(t, tt.text, out)

			dt, err := Parse(tmpl, out)
			require.NoError(t, err)
			assert.True(t, tt.dt.Equal(dt), "got %s", dt)
		})
	}
}

func TestWeekdayMustMatchDate(t *testing.T) {
	tmpl := newContext(t, "fr-FR").MustCompile("{iiii} {d} {MMMM} {yyyy}")

	_, err := Parse(tmpl, "lundi 5 décembre 2025")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeCalendarInconsistency))
}

func TestUnknownName(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{MMM}")

	_, err := tmpl.Parse("Foo")
	require.Error(t, err)
	assert.Equal(t,
		"Expected remaining text for #MMM to start with one of [Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec]. Actual: 'Foo'",
		err.Error())
}

func TestTwoDigitYear(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{dd}.{MM}.{yy}")

	r, err := tmpl.Parse("05.12.99")
	require.NoError(t, err)
	assert.Equal(t, 2099, r["yy"])

	r, err = tmpl.Parse("01.01.00")
	require.NoError(t, err)
	assert.Equal(t, 2000, r["yy"])

	_, err = Format(tmpl, dateTime(t, 1999, time.December, 31, 0, 0, 0, 0))
	require.Error(t, err)
	assert.Equal(t, "Expected #yy to be between 2000 and 2099 (included). Actual: 1999", err.Error())
}

func TestTimeOfDay(t *testing.T) {
	c := newContext(t, "")

	tests := []struct {
		layout string
		text   string
		want   timex.DateTime
	}{
		{"{KK}:{mm} {a}", "03:30 PM", dateTime(t, 1970, time.January, 1, 15, 30, 0, 0)},
		{"{K}:{mm} {a}", "0:05 AM", dateTime(t, 1970, time.January, 1, 0, 5, 0, 0)},
		{"{HH}:{mm}:{ss}.{SSS}", "23:59:59.999", dateTime(t, 1970, time.January, 1, 23, 59, 59, 999)},
		{"{H}h{m}m{s}s{S}", "7h5m9s42", dateTime(t, 1970, time.January, 1, 7, 5, 9, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			tmpl := c.MustCompile(tt.layout)
			dt, err := Parse(tmpl, tt.text)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(dt), "got %s", dt)

			out, err := Format(tmpl, dt)
			require.NoError(t, err)
			assert.Equal(t, tt.text, out)
		})
	}
}

func TestIsoWeekDates(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{RRRR}-W{II}-{i}")

	dt, err := Parse(tmpl, "2004-W53-6")
	require.NoError(t, err)
	assert.True(t, dateTime(t, 2005, time.January, 1, 0, 0, 0, 0).Equal(dt))

	out, err := Format(tmpl, dateTime(t, 2007, time.December, 31, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "2008-W01-1", out)
}

func TestOrdinalDates(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{yyyy}-{DDD}")

	dt, err := Parse(tmpl, "2024-366")
	require.NoError(t, err)
	assert.True(t, dateTime(t, 2024, time.December, 31, 0, 0, 0, 0).Equal(dt))

	_, err = Parse(tmpl, "2025-366")
	assert.Error(t, err)
}

func TestRepeatedField(t *testing.T) {
	tmpl := newContext(t, "").MustCompile("{MM} ({MMMM})")

	r, err := tmpl.Parse("12 (December)")
	require.NoError(t, err)
	parts, err := ToParts(r)
	require.NoError(t, err)
	assert.Equal(t, timex.Parts{timex.FieldMonth: 12}, parts)

	r, err = tmpl.Parse("11 (December)")
	require.NoError(t, err)
	_, err = ToParts(r)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInconsistentValue))
	assert.Contains(t, err.Error(), "#month")
}

func TestToPartsRejectsForeignRecords(t *testing.T) {
	_, err := ToParts(template.Record{"weekday": 1})
	assert.Error(t, err)

	_, err = ToParts(template.Record{"dd": "05"})
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	c := newContext(t, "")

	t.Run("escaped braces", func(t *testing.T) {
		tmpl, err := c.Compile("{{{dd}}}")
		require.NoError(t, err)
		assert.Equal(t, "{{{dd}}}", tmpl.String())

		r, err := tmpl.Parse("{05}")
		require.NoError(t, err)
		assert.Equal(t, 5, r["dd"])
	})

	t.Run("only literals", func(t *testing.T) {
		tmpl, err := c.Compile("today")
		require.NoError(t, err)
		assert.Empty(t, tmpl.Fields())
	})

	for _, layout := range []string{"{dd", "{xx}/{MM}", "a}b", "{}"} {
		t.Run("invalid "+layout, func(t *testing.T) {
			_, err := c.Compile(layout)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
		})
	}

	assert.Panics(t, func() { c.MustCompile("{") })
}

func TestContext(t *testing.T) {
	c := newContext(t, "de-DE")
	assert.Equal(t, "de-DE", c.Locale())
	assert.Equal(t, "Januar", c.Names().LongMonths[0])

	assert.Len(t, Tags(), 30)
	for _, tag := range Tags() {
		p, err := c.Placeholder(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, "#"+tag, p.Label())
	}

	_, err := c.Placeholder("Q")
	assert.Error(t, err)
	assert.Panics(t, func() { c.Tag("Q") })

	assert.Equal(t, "2-digit year between 2000 and 2099", c.Tag("yy").Description())
}

func TestAssembledTemplate(t *testing.T) {
	c := newContext(t, "")
	tmpl := template.New(c.Tag("yyyy"), template.Sep("-"), c.Tag("MM"), template.Sep("-"), c.Tag("dd"))

	out, err := Format(tmpl, dateTime(t, 2025, time.March, 7, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-07", out)
}

func TestUnavailableLocale(t *testing.T) {
	_, err := NewContext(Options{Locale: "ja-JP"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeLocaleNotFound))

	crashing := i18n.FuncProvider(func(string) (i18n.NameTable, error) {
		panic("locale data missing")
	})
	_, err = NewContext(Options{Provider: crashing, Locale: "xx"})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeLocaleNotFound))

	failing := i18n.FuncProvider(func(string) (i18n.NameTable, error) {
		return i18n.NameTable{}, errors.New("unsupported")
	})
	_, err = NewContext(Options{Provider: failing, Locale: "xx"})
	assert.Error(t, err)
}

func TestShadowedNamesAreReordered(t *testing.T) {
	table, err := i18n.Builtin().Lookup("en-US")
	require.NoError(t, err)
	table.ShortMonths[2] = "Ma"
	table.ShortMonths[4] = "Mai"

	provider := i18n.FuncProvider(func(string) (i18n.NameTable, error) { return table, nil })
	tmpl := MustContext(Options{Provider: provider, Locale: "xx"}).MustCompile("{MMM}")

	r, err := tmpl.Parse("Mai")
	require.NoError(t, err)
	assert.Equal(t, 5, r["MMM"])

	r, err = tmpl.Parse("Ma")
	require.NoError(t, err)
	assert.Equal(t, 3, r["MMM"])
}

func TestConcurrentUse(t *testing.T) {
	tmpl := newContext(t, "fr-FR").MustCompile("{iiii} {dd} {MMMM} {yyyy} {HH}:{mm}")
	start := dateTime(t, 2025, time.January, 1, 0, 0, 0, 0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for day := 0; day < 50; day++ {
				dt, err := timex.FromTimestamp(start.Timestamp() + int64(g*50+day)*86_400_000 + int64(g)*60_000)
				if !assert.NoError(t, err) {
					return
				}
				text, err := Format(tmpl, dt)
				if !assert.NoError(t, err) {
					return
				}
				back, err := Parse(tmpl, text)
				if assert.NoError(t, err, text) {
					assert.True(t, dt.Equal(back), text)
				}
			}
		}(g)
	}
	wg.Wait()
}
