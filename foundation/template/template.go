// File: template.go
// Title: Template Engine
// Description: A Template is an ordered sequence of placeholders and
//              separators. Parsing folds the parts left to right over the
//              remaining text, collecting values into a Record; formatting
//              writes every part in order. Repeated placeholder names must
//              receive equal values, and no text may be left over.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package template

import (
	"strings"

	"github.com/msto63/formatting/foundation/core/errors"
)

// Part is an element of a template: a placeholder or a Separator
type Part interface {
	String() string
	part()
}

// Record holds parsed values by placeholder name
type Record map[string]any

// Lookup returns the value stored under name
func (r Record) Lookup(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// Get returns the value stored under name as a T
func Get[T any](r Record, name string) (T, error) {
	var zero T
	v, ok := r[name]
	if !ok {
		return zero, errors.MissingValue("#" + name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.ValueType("#"+name, typeName[T](), v)
	}
	return t, nil
}

// Parser turns a text into a record
type Parser func(text string) (Record, error)

// Formatter turns a record into a text
type Formatter func(r Record) (string, error)

// Template is an immutable sequence of parts
type Template struct {
	parts []Part
}

// New creates a template from parts
func New(parts ...Part) *Template {
	return &Template{parts: append([]Part(nil), parts...)}
}

// Parts returns a copy of the template parts
func (t *Template) Parts() []Part {
	return append([]Part(nil), t.parts...)
}

// Fields returns the placeholders of the template in order, repeated
// names included
func (t *Template) Fields() []Field {
	var fields []Field
	for _, p := range t.parts {
		if f, ok := p.(Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Labels returns the distinct placeholder labels in order of appearance
func (t *Template) Labels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, f := range t.Fields() {
		if !seen[f.Name()] {
			seen[f.Name()] = true
			labels = append(labels, f.Label())
		}
	}
	return labels
}

// ToParser returns the parse function of the template
func (t *Template) ToParser() Parser { return t.Parse }

// ToFormatter returns the format function of the template
func (t *Template) ToFormatter() Formatter { return t.Format }

// Parse reads text as a whole. It fails on the first part that does not
// match, on a repeated placeholder receiving a different value, and on
// text left over after the last part.
func (t *Template) Parse(text string) (Record, error) {
	record := make(Record)
	rest := text

	for i, part := range t.parts {
		switch p := part.(type) {
		case Separator:
			r, err := p.Match(i+1, rest)
			if err != nil {
				return nil, err
			}
			rest = r
		case Field:
			v, r, err := p.parseAny(rest)
			if err != nil {
				return nil, err
			}
			if old, ok := record[p.Name()]; ok && !p.equalAny(old, v) {
				return nil, errors.InconsistentValue(p.Label(), old, v)
			}
			record[p.Name()] = v
			rest = r
		}
	}

	if rest != "" {
		return nil, errors.TrailingInput(rest)
	}
	return record, nil
}

// Format writes the values of r in template order
func (t *Template) Format(r Record) (string, error) {
	return t.FormatWith(r.Lookup)
}

// FormatWith is like Format but reads values through lookup
func (t *Template) FormatWith(lookup func(name string) (any, bool)) (string, error) {
	var b strings.Builder
	for _, part := range t.parts {
		switch p := part.(type) {
		case Separator:
			b.WriteString(p.Text())
		case Field:
			v, ok := lookup(p.Name())
			if !ok {
				return "", errors.MissingValue(p.Label())
			}
			s, err := p.formatAny(v)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

// String returns the template as a layout: placeholders in braces,
// separators as they are, e.g. "{dd}/{MM}/{yyyy}"
func (t *Template) String() string {
	var b strings.Builder
	for _, p := range t.parts {
		b.WriteString(p.String())
	}
	return b.String()
}

// Describe lists every distinct placeholder with its description
func (t *Template) Describe() string {
	seen := make(map[string]bool)
	var lines []string
	for _, f := range t.Fields() {
		if seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		lines = append(lines, f.Label()+": "+f.Description())
	}
	return strings.Join(lines, "\n")
}
