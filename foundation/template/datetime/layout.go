// File: layout.go
// Title: Template Layouts
// Description: Compiles a layout string such as "{dd}/{MM}/{yyyy}" into a
//              template. Tags are written in braces, everything else is a
//              separator; "{{" and "}}" stand for literal braces. This is
//              the format Template.String produces.
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
	"strings"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/template"
)

// Compile builds the template described by layout
func (c *Context) Compile(layout string) (*template.Template, error) {
	var (
		parts   []template.Part
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, template.Sep(literal.String()))
			literal.Reset()
		}
	}
	fail := func(pos int, problem string) error {
		return errors.InvalidFormat(errors.ModuleDatetime,
			fmt.Sprintf("%q (%s at byte %d)", layout, problem, pos),
			"a layout of {tag} elements and literal text")
	}

	for i := 0; i < len(layout); i++ {
		switch ch := layout[i]; {
		case ch == '{' && strings.HasPrefix(layout[i:], "{{"):
			literal.WriteByte('{')
			i++
		case ch == '}' && strings.HasPrefix(layout[i:], "}}"):
			literal.WriteByte('}')
			i++
		case ch == '}':
			return nil, fail(i, "unmatched '}'")
		case ch == '{':
			end := strings.IndexByte(layout[i:], '}')
			if end < 0 {
				return nil, fail(i, "unterminated '{'")
			}
			tag := layout[i+1 : i+end]
			p, err := c.Placeholder(tag)
			if err != nil {
				return nil, fail(i, fmt.Sprintf("unknown tag %q", tag))
			}
			flush()
			parts = append(parts, p)
			i += end
		default:
			literal.WriteByte(ch)
		}
	}
	flush()

	t := template.New(parts...)
	c.logger.Debug("layout compiled", log.Fields{"layout": layout, "fields": len(t.Fields())})
	return t, nil
}

// MustCompile is like Compile but panics on error
func (c *Context) MustCompile(layout string) *template.Template {
	t, err := c.Compile(layout)
	if err != nil {
		panic(err)
	}
	return t
}
