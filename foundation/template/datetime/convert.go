// File: convert.go
// Title: Records and Date-Time Values
// Description: Converts between the records of date-time templates and
//              timex values. Several tags may denote the same field ("MM"
//              and "MMMM"); their values must agree. Redundant fields such
//              as the weekday are checked against the resulting date.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package datetime

import (
	"sort"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/template"
	"github.com/msto63/formatting/foundation/utils/timex"
)

// ToParts converts a record read by a date-time template into parts
func ToParts(r template.Record) (timex.Parts, error) {
	tags := make([]string, 0, len(r))
	for tag := range r {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	parts := make(timex.Parts, len(tags))
	for _, tag := range tags {
		field, ok := FieldOf(tag)
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleDatetime, "ToParts", tag, "one of the date-time tags")
		}
		v, err := template.Get[int](r, tag)
		if err != nil {
			return nil, err
		}
		if old, seen := parts[field]; seen && old != v {
			return nil, errors.InconsistentValue(field.Label(), old, v)
		}
		parts[field] = v
	}
	return parts, nil
}

// ToDateTime converts a record read by a date-time template into a
// DateTime. Missing fields default to 1970-01-01T00:00:00.000.
func ToDateTime(r template.Record) (timex.DateTime, error) {
	parts, err := ToParts(r)
	if err != nil {
		return timex.DateTime{}, err
	}
	return timex.FromParts(parts)
}

// FromDateTime returns the record holding the value of every tag of t
func FromDateTime(t *template.Template, dt timex.DateTime) (template.Record, error) {
	r := make(template.Record)
	for _, f := range t.Fields() {
		field, ok := FieldOf(f.Name())
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleDatetime, "FromDateTime", f.Name(), "one of the date-time tags")
		}
		r[f.Name()] = dt.Get(field)
	}
	return r, nil
}

// Parse reads text with t and converts the result into a DateTime
func Parse(t *template.Template, text string) (timex.DateTime, error) {
	r, err := t.Parse(text)
	if err != nil {
		return timex.DateTime{}, err
	}
	return ToDateTime(r)
}

// Format writes dt with t
func Format(t *template.Template, dt timex.DateTime) (string, error) {
	r, err := FromDateTime(t, dt)
	if err != nil {
		return "", err
	}
	return t.Format(r)
}
