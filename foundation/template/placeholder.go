// File: placeholder.go
// Title: Template Placeholders
// Description: A placeholder is a named, typed field of a textual grammar.
//              It reads a value from the start of a text, returning the
//              rest, and writes a value back to text. Factories cover fixed
//              length fields, padded fields, literal mappings, regular
//              expressions and the rest of the input; Modify layers
//              conversions on top of an existing placeholder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package template

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// ParseFunc reads a value from the start of text and returns the rest
type ParseFunc[T any] func(text string) (value T, rest string, err error)

// FormatFunc writes a value as text
type FormatFunc[T any] func(value T) (string, error)

// Placeholder is a named field of type T. Placeholders are immutable and
// safe for concurrent use.
type Placeholder[T any] struct {
	name        string
	description string
	parse       ParseFunc[T]
	format      FormatFunc[T]
}

// Field is the view of a placeholder a Template works with
type Field interface {
	Part
	Name() string
	Label() string
	Description() string

	parseAny(text string) (any, string, error)
	formatAny(value any) (string, error)
	equalAny(a, b any) bool
}

var _ Field = (*Placeholder[string])(nil)

// NewPlaceholder creates a placeholder from a parse and a format function
func NewPlaceholder[T any](name, description string, parse ParseFunc[T], format FormatFunc[T]) *Placeholder[T] {
	return &Placeholder[T]{name: name, description: description, parse: parse, format: format}
}

// Name returns the name the placeholder value is stored under
func (p *Placeholder[T]) Name() string { return p.name }

// Label returns the name used in error messages: "#" followed by the name
func (p *Placeholder[T]) Label() string { return "#" + p.name }

// Description returns a human readable description of the expected text
func (p *Placeholder[T]) Description() string { return p.description }

// Parse reads a value from the start of text
func (p *Placeholder[T]) Parse(text string) (T, string, error) {
	return p.parse(text)
}

// Format writes value as text
func (p *Placeholder[T]) Format(value T) (string, error) {
	return p.format(value)
}

// String returns the template token of the placeholder
func (p *Placeholder[T]) String() string { return "{" + p.name + "}" }

func (p *Placeholder[T]) part() {}

func (p *Placeholder[T]) parseAny(text string) (any, string, error) {
	return p.parse(text)
}

func (p *Placeholder[T]) formatAny(value any) (string, error) {
	v, ok := value.(T)
	if !ok {
		return "", errors.ValueType(p.Label(), typeName[T](), value)
	}
	return p.format(v)
}

func (p *Placeholder[T]) equalAny(a, b any) bool {
	av, aok := a.(T)
	bv, bok := b.(T)
	if !aok || !bok {
		return false
	}
	return equal(av, bv)
}

// equal uses an Equal method when T has one (decimal.Decimal, time.Time)
func equal[T any](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Modify derives a placeholder of type U from p. post converts a parsed T,
// pre converts a U before it is formatted by p. describe rewrites the
// description; nil keeps it. Name and label are preserved.
func Modify[T, U any](p *Placeholder[T], post func(T) (U, error), pre func(U) (T, error), describe func(string) string) *Placeholder[U] {
	description := p.description
	if describe != nil {
		description = describe(description)
	}
	return &Placeholder[U]{
		name:        p.name,
		description: description,
		parse: func(text string) (U, string, error) {
			var zero U
			v, rest, err := p.parse(text)
			if err != nil {
				return zero, text, err
			}
			u, err := post(v)
			if err != nil {
				return zero, text, err
			}
			return u, rest, nil
		},
		format: func(value U) (string, error) {
			v, err := pre(value)
			if err != nil {
				return "", err
			}
			return p.format(v)
		},
	}
}

// FixedLength reads exactly length characters
func FixedLength(name string, length int) *Placeholder[string] {
	label := "#" + name
	return &Placeholder[string]{
		name:        name,
		description: fmt.Sprintf("%d-character string", length),
		parse: func(text string) (string, string, error) {
			head, rest, ok := stringx.SplitAt(text, length)
			if !ok {
				return "", text, errors.LengthMismatch(label, length, stringx.RuneLen(text))
			}
			return head, rest, nil
		},
		format: func(value string) (string, error) {
			if n := stringx.RuneLen(value); n != length {
				return "", errors.LengthMismatch(label, length, n)
			}
			return value, nil
		},
	}
}

// PaddedFixedLength reads length characters and trims fill on the padded
// side. With disallowEmpty a field made only of fill characters yields a
// single fill character instead of the empty string.
func PaddedFixedLength(name string, length int, fill rune, position stringx.FillPosition, disallowEmpty bool) *Placeholder[string] {
	base := FixedLength(name, length)
	label := base.Label()
	quoted := fmt.Sprintf("'%c'", fill)

	post := func(s string) (string, error) {
		return stringx.Trim(s, fill, position, disallowEmpty), nil
	}
	pre := func(s string) (string, error) {
		switch {
		case s == "" && disallowEmpty:
			return "", errors.PatternMismatch(label, "not to be empty", s)
		case disallowEmpty && s == string(fill):
		case position == stringx.FillLeft && strings.HasPrefix(s, string(fill)):
			return "", errors.PatternMismatch(label, "not to start with "+quoted, s)
		case position == stringx.FillRight && strings.HasSuffix(s, string(fill)):
			return "", errors.PatternMismatch(label, "not to end with "+quoted, s)
		}
		return stringx.Pad(s, length, fill, position), nil
	}
	describe := func(d string) string {
		return fmt.Sprintf("%s %s-padded with %s", d, position, quoted)
	}
	return Modify(base, post, pre, describe)
}

// Mapping binds a literal text to a value
type Mapping[T any] struct {
	Key   string
	Value T
}

// Map is a shorthand for Mapping{Key: key, Value: value}
func Map[T any](key string, value T) Mapping[T] {
	return Mapping[T]{Key: key, Value: value}
}

// MappedLiterals reads the value of the first mapping, in the given order,
// whose key starts the text. Keys are not matched by length: when a key is
// a prefix of a later one, list the longer key first. ShadowedKeys reports
// such orders. Formatting writes the key of the first mapping whose value
// equals the given one.
func MappedLiterals[T any](name string, mappings ...Mapping[T]) *Placeholder[T] {
	label := "#" + name
	mappings = append([]Mapping[T](nil), mappings...)
	keys := make([]string, len(mappings))
	values := make([]string, len(mappings))
	for i, m := range mappings {
		keys[i] = m.Key
		values[i] = fmt.Sprint(m.Value)
	}

	return &Placeholder[T]{
		name:        name,
		description: "one of [" + strings.Join(keys, ", ") + "]",
		parse: func(text string) (T, string, error) {
			for _, m := range mappings {
				if strings.HasPrefix(text, m.Key) {
					return m.Value, text[len(m.Key):], nil
				}
			}
			var zero T
			return zero, text, errors.LiteralParseMismatch(label, keys, text)
		},
		format: func(value T) (string, error) {
			for _, m := range mappings {
				if equal(m.Value, value) {
					return m.Key, nil
				}
			}
			return "", errors.LiteralFormatMismatch(label, values, value)
		},
	}
}

// ShadowedKeys returns the keys that MappedLiterals can never read because
// an earlier key is a prefix of them
func ShadowedKeys[T any](mappings ...Mapping[T]) []string {
	var shadowed []string
	for i, later := range mappings {
		for _, earlier := range mappings[:i] {
			if strings.HasPrefix(later.Key, earlier.Key) {
				shadowed = append(shadowed, later.Key)
				break
			}
		}
	}
	return shadowed
}

// RegexBounded reads the longest prefix of the text matching pattern. A
// formatted value must match pattern as a whole. descriptor completes the
// sentence "Expected <label> ..." in error messages, e.g. "to be a word".
func RegexBounded(name, pattern, descriptor string) (*Placeholder[string], error) {
	prefix, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleTemplate, "RegexBounded", pattern, "a valid regular expression")
	}
	prefix.Longest()
	whole := regexp.MustCompile(`^(?:` + pattern + `)$`)
	label := "#" + name

	return &Placeholder[string]{
		name:        name,
		description: "text matching " + pattern,
		parse: func(text string) (string, string, error) {
			loc := prefix.FindStringIndex(text)
			if loc == nil {
				return "", text, errors.PatternMismatch(label, descriptor, text)
			}
			return text[:loc[1]], text[loc[1]:], nil
		},
		format: func(value string) (string, error) {
			if !whole.MatchString(value) {
				return "", errors.PatternMismatch(label, descriptor, value)
			}
			return value, nil
		},
	}, nil
}

// MustRegexBounded is like RegexBounded but panics on an invalid pattern
func MustRegexBounded(name, pattern, descriptor string) *Placeholder[string] {
	p, err := RegexBounded(name, pattern, descriptor)
	if err != nil {
		panic(err)
	}
	return p
}

// ToEnd reads the whole remaining text. Use it as the last template part.
func ToEnd(name string) *Placeholder[string] {
	return &Placeholder[string]{
		name:        name,
		description: "remaining text",
		parse: func(text string) (string, string, error) {
			return text, "", nil
		},
		format: func(value string) (string, error) {
			return value, nil
		},
	}
}
