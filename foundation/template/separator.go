// File: separator.go
// Title: Template Separators
// Description: A separator is a literal text between two placeholders.
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

// Separator is a literal part of a template
type Separator struct {
	text string
}

// Sep creates a separator for text
func Sep(text string) Separator {
	return Separator{text: text}
}

// Text returns the literal text
func (s Separator) Text() string { return s.text }

// Match consumes the separator at the start of text. position is the
// 1-based position of the separator in its template.
func (s Separator) Match(position int, text string) (string, error) {
	if !strings.HasPrefix(text, s.text) {
		return text, errors.SeparatorMismatch(position, s.text, text)
	}
	return text[len(s.text):], nil
}

// String returns the literal text with braces escaped
func (s Separator) String() string {
	r := strings.NewReplacer("{", "{{", "}", "}}")
	return r.Replace(s.text)
}

func (Separator) part() {}
