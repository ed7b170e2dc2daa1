// File: context.go
// Title: Date-Time Template Context
// Description: A Context binds every date-time tag to a placeholder for one
//              locale. The locale's name table is fetched once when the
//              context is built; afterwards the context is read-only and
//              may be shared between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package datetime

import (
	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/i18n"
	"github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/template"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// Options configures a Context
type Options struct {
	// Provider supplies the name table; nil uses i18n.Builtin()
	Provider i18n.Provider

	// Locale is passed to Provider; blank means i18n.DefaultLocale
	Locale string

	Logger *log.Logger
}

// Context holds the placeholders of all tags for one locale
type Context struct {
	locale       string
	names        i18n.NameTable
	placeholders map[string]*template.Placeholder[int]
	logger       *log.Logger
}

// NewContext fetches the name table of opts.Locale and builds the
// placeholders of all tags
func NewContext(opts Options) (*Context, error) {
	if opts.Provider == nil {
		opts.Provider = i18n.Builtin()
	}
	if stringx.IsBlank(opts.Locale) {
		opts.Locale = i18n.DefaultLocale
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	logger := opts.Logger.WithName("datetime").WithField("locale", opts.Locale)

	names, ok := opts.Provider.NameTable(opts.Locale)
	if !ok {
		err := errors.LocaleNotFound(opts.Locale)
		logger.LogError(err)
		return nil, err
	}

	c := &Context{
		locale:       opts.Locale,
		names:        names,
		placeholders: make(map[string]*template.Placeholder[int], len(tagSpecs)),
		logger:       logger,
	}
	for tag, spec := range tagSpecs {
		p, err := spec.build(tag, names)
		if err != nil {
			return nil, err
		}
		c.placeholders[tag] = p
	}

	logger.Debug("context built", log.Field("tags", len(c.placeholders)))
	return c, nil
}

// MustContext is like NewContext but panics on error
func MustContext(opts Options) *Context {
	c, err := NewContext(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the locale the context was built for
func (c *Context) Locale() string { return c.locale }

// Names returns the name table of the context's locale
func (c *Context) Names() i18n.NameTable { return c.names }

// Placeholder returns the placeholder bound to tag
func (c *Context) Placeholder(tag string) (*template.Placeholder[int], error) {
	p, ok := c.placeholders[tag]
	if !ok {
		return nil, errors.InvalidInput(errors.ModuleDatetime, "Placeholder", tag, "one of the date-time tags")
	}
	return p, nil
}

// Tag is like Placeholder but panics for an unknown tag. It is meant for
// templates assembled in code:
//
//	template.New(c.Tag("dd"), template.Sep("/"), c.Tag("MM"))
func (c *Context) Tag(tag string) *template.Placeholder[int] {
	p, err := c.Placeholder(tag)
	if err != nil {
		panic(err)
	}
	return p
}
