// File: tags.go
// Title: Date-Time Tags
// Description: The tag vocabulary of date-time templates and the
//              placeholder each tag is bound to. Numeric tags use a
//              variable width for one letter and a zero-padded fixed width
//              for repeated letters; name tags read the locale's names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package datetime

import (
	"fmt"
	"sort"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/i18n"
	"github.com/msto63/formatting/foundation/template"
	"github.com/msto63/formatting/foundation/utils/numberx"
	"github.com/msto63/formatting/foundation/utils/timex"
)

// TwoDigitYearStart is the first year of the window read by "yy" and "RR".
// "00" is 2000 and "99" is 2099.
const TwoDigitYearStart = 2000

type builder func(tag string, names i18n.NameTable) (*template.Placeholder[int], error)

type tagSpec struct {
	field timex.Field
	build builder
}

// unpadded numbers: "5", "12"
var unpadded = numberx.Integer.WithSignDisplay(numberx.SignDisplayNever)

var tagSpecs = map[string]tagSpec{
	"y":    {timex.FieldYear, number(numberx.Integer, timex.MinYear, timex.MaxYear)},
	"yy":   {timex.FieldYear, twoDigitYear},
	"yyyy": {timex.FieldYear, fixed(4, 0, 9999)},
	"R":    {timex.FieldIsoYear, number(numberx.Integer, timex.MinYear, timex.MaxYear)},
	"RR":   {timex.FieldIsoYear, twoDigitYear},
	"RRRR": {timex.FieldIsoYear, fixed(4, 0, 9999)},
	"M":    {timex.FieldMonth, number(unpadded, 1, 12)},
	"MM":   {timex.FieldMonth, fixed(2, 1, 12)},
	"MMM":  {timex.FieldMonth, names(func(t i18n.NameTable) []string { return t.ShortMonths[:] })},
	"MMMM": {timex.FieldMonth, names(func(t i18n.NameTable) []string { return t.LongMonths[:] })},
	"I":    {timex.FieldIsoWeek, number(unpadded, 1, 53)},
	"II":   {timex.FieldIsoWeek, fixed(2, 1, 53)},
	"d":    {timex.FieldMonthDay, number(unpadded, 1, 31)},
	"dd":   {timex.FieldMonthDay, fixed(2, 1, 31)},
	"D":    {timex.FieldOrdinalDay, number(unpadded, 1, 366)},
	"DDD":  {timex.FieldOrdinalDay, fixed(3, 1, 366)},
	"i":    {timex.FieldWeekday, number(unpadded, 1, 7)},
	"iii":  {timex.FieldWeekday, names(func(t i18n.NameTable) []string { return t.ShortWeekdays[:] })},
	"iiii": {timex.FieldWeekday, names(func(t i18n.NameTable) []string { return t.LongWeekdays[:] })},
	"a":    {timex.FieldMeridiem, meridiem},
	"H":    {timex.FieldHour23, number(unpadded, 0, 23)},
	"HH":   {timex.FieldHour23, fixed(2, 0, 23)},
	"K":    {timex.FieldHour11, number(unpadded, 0, 11)},
	"KK":   {timex.FieldHour11, fixed(2, 0, 11)},
	"m":    {timex.FieldMinute, number(unpadded, 0, 59)},
	"mm":   {timex.FieldMinute, fixed(2, 0, 59)},
	"s":    {timex.FieldSecond, number(unpadded, 0, 59)},
	"ss":   {timex.FieldSecond, fixed(2, 0, 59)},
	"S":    {timex.FieldMillisecond, number(unpadded, 0, 999)},
	"SSS":  {timex.FieldMillisecond, fixed(3, 0, 999)},
}

// Tags returns the supported tags in lexical order
func Tags() []string {
	tags := make([]string, 0, len(tagSpecs))
	for tag := range tagSpecs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FieldOf returns the date-time field a tag reads and writes
func FieldOf(tag string) (timex.Field, bool) {
	spec, ok := tagSpecs[tag]
	return spec.field, ok
}

func number(d numberx.Descriptor, min, max int) builder {
	return func(tag string, _ i18n.NameTable) (*template.Placeholder[int], error) {
		return template.NumericInt(tag, d, min, max)
	}
}

func fixed(width, min, max int) builder {
	return number(numberx.FixedWidthInteger(width), min, max)
}

func twoDigitYear(tag string, _ i18n.NameTable) (*template.Placeholder[int], error) {
	base, err := template.NumericInt(tag, numberx.FixedWidthInteger(2), 0, 99)
	if err != nil {
		return nil, err
	}
	label := base.Label()
	last := TwoDigitYearStart + 99

	return template.Modify(base,
		func(v int) (int, error) {
			return TwoDigitYearStart + v, nil
		},
		func(year int) (int, error) {
			if year < TwoDigitYearStart || year > last {
				return 0, errors.OutOfRange(label, TwoDigitYearStart, last, year, true)
			}
			return year - TwoDigitYearStart, nil
		},
		func(string) string {
			return fmt.Sprintf("2-digit year between %d and %d", TwoDigitYearStart, last)
		}), nil
}

// names maps the i-th name to i+1
func names(list func(i18n.NameTable) []string) builder {
	return func(tag string, table i18n.NameTable) (*template.Placeholder[int], error) {
		all := list(table)
		mappings := make([]template.Mapping[int], len(all))
		for i, n := range all {
			mappings[i] = template.Map(n, i+1)
		}
		return literals(tag, mappings), nil
	}
}

func meridiem(tag string, table i18n.NameTable) (*template.Placeholder[int], error) {
	return literals(tag, []template.Mapping[int]{
		template.Map(table.DayPeriods[0], 0),
		template.Map(table.DayPeriods[1], 12),
	}), nil
}

// literals keeps the calendar order of the names unless a name starts
// with an earlier one, e.g. "Mai" and "Mais"; then longer names go first.
func literals(tag string, mappings []template.Mapping[int]) *template.Placeholder[int] {
	if len(template.ShadowedKeys(mappings...)) > 0 {
		sort.SliceStable(mappings, func(i, j int) bool {
			return len(mappings[i].Key) > len(mappings[j].Key)
		})
	}
	return template.MappedLiterals(tag, mappings...)
}
