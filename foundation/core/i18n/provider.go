// File: provider.go
// Title: Name Table Providers
// Description: Defines the Provider interface consumed by the date-time
//              templates and FuncProvider, which adapts a caller supplied
//              function and turns its failures into "no result".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package i18n

// Provider returns the name table of a locale. ok is false when the locale
// is not supported.
type Provider interface {
	NameTable(locale string) (table NameTable, ok bool)
}

// FuncProvider adapts a function to Provider. An error, a panic or an
// invalid table all yield ok == false.
type FuncProvider func(locale string) (NameTable, error)

// NameTable implements Provider
func (f FuncProvider) NameTable(locale string) (table NameTable, ok bool) {
	defer func() {
		if recover() != nil {
			table, ok = NameTable{}, false
		}
	}()

	t, err := f(locale)
	if err != nil || t.Validate() != nil {
		return NameTable{}, false
	}
	return t, true
}
