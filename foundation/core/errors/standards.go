// File: standards.go
// Title: Text Format Error Standards
// Description: Provides one constructor per validation failure of the
//              parsing and formatting engine. Every constructor produces the
//              user-facing message and records label, expected and actual
//              values as details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-19 v0.2.0: Replaced per-module code tables with validation
//                       constructors for templates, numbers and calendars

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx    = "mathx"
	ModuleTimex    = "timex"
	ModuleNumberx  = "numberx"
	ModuleTemplate = "template"
	ModuleDatetime = "datetime"
	ModuleI18n     = "i18n"
	ModuleConfig   = "config"
)

func validation(code mdwerror.Code) *ErrorBuilder {
	return NewErrorBuilder("").Code(code).Severity(mdwerror.SeverityLow)
}

// LengthMismatch reports a field whose length differs from the expected one
func LengthMismatch(label string, expected, actual int) *mdwerror.Error {
	return validation(mdwerror.CodeInvalidLength).
		Messagef("Expected length of %s to be: %d. Actual: %d", label, expected, actual).
		Detail("label", label).
		Detail("expected", expected).
		Detail("actual", actual).
		Build()
}

// OutOfRange reports a value outside [min, max]. included selects the
// "(included)" or "(excluded)" wording of the bounds.
func OutOfRange(label string, min, max, actual interface{}, included bool) *mdwerror.Error {
	bounds := "excluded"
	if included {
		bounds = "included"
	}
	return validation(mdwerror.CodeValueOutOfRange).
		Messagef("Expected %s to be between %v and %v (%s). Actual: %v", label, min, max, bounds, actual).
		Detail("label", label).
		Detail("min", min).
		Detail("max", max).
		Detail("actual", actual).
		Build()
}

// PatternMismatch reports text that does not match what a field expects.
// descriptor completes the sentence "Expected <label> ...".
func PatternMismatch(label, descriptor, actual string) *mdwerror.Error {
	return validation(mdwerror.CodePatternMismatch).
		Messagef("Expected %s %s. Actual: '%s'", label, descriptor, actual).
		Detail("label", label).
		Detail("expected", descriptor).
		Detail("actual", actual).
		Build()
}

// LiteralParseMismatch reports remaining text that starts with none of keys
func LiteralParseMismatch(label string, keys []string, actual string) *mdwerror.Error {
	return validation(mdwerror.CodeLiteralMismatch).
		Messagef("Expected remaining text for %s to start with one of [%s]. Actual: '%s'",
			label, strings.Join(keys, ", "), actual).
		Detail("label", label).
		Detail("expected", keys).
		Detail("actual", actual).
		Build()
}

// LiteralFormatMismatch reports a value that has no literal mapping
func LiteralFormatMismatch(label string, values []string, actual interface{}) *mdwerror.Error {
	return validation(mdwerror.CodeLiteralMismatch).
		Messagef("%s: expected one of [%s]. Actual: %v", label, strings.Join(values, ", "), actual).
		Detail("label", label).
		Detail("expected", values).
		Detail("actual", actual).
		Build()
}

// SeparatorMismatch reports remaining text that does not start with the
// separator at the given 1-based template position
func SeparatorMismatch(position int, separator, actual string) *mdwerror.Error {
	return validation(mdwerror.CodeLiteralMismatch).
		Messagef("Expected remaining text for separator at position %d to start with '%s'. Actual: '%s'",
			position, separator, actual).
		Detail("position", position).
		Detail("expected", separator).
		Detail("actual", actual).
		Build()
}

// InconsistentValue reports a repeated template field that received two
// different values
func InconsistentValue(label string, first, second interface{}) *mdwerror.Error {
	return validation(mdwerror.CodeInconsistentValue).
		Messagef("%s is present more than once in template and receives differing values '%v' and '%v'",
			label, first, second).
		Detail("label", label).
		Detail("first", first).
		Detail("second", second).
		Build()
}

// TrailingInput reports text left over after a whole template was parsed
func TrailingInput(rest string) *mdwerror.Error {
	return validation(mdwerror.CodeTrailingInput).
		Messagef("Expected text not consumed by template to be empty. Actual: '%s'", rest).
		Detail("expected", "").
		Detail("actual", rest).
		Build()
}

// MissingValue reports a record without a value for a template field
func MissingValue(label string) *mdwerror.Error {
	return validation(mdwerror.CodeMissingValue).
		Messagef("Expected a value for %s in record. Actual: none", label).
		Detail("label", label).
		Build()
}

// ValueType reports a record value of the wrong Go type
func ValueType(label string, expected string, actual interface{}) *mdwerror.Error {
	return validation(mdwerror.CodeInvalidInput).
		Messagef("Expected %s to hold a value of type %s. Actual: %T", label, expected, actual).
		Detail("label", label).
		Detail("expected", expected).
		Detail("actual", fmt.Sprintf("%T", actual)).
		Build()
}

// CalendarInconsistency reports a calendar operation that has no valid result
func CalendarInconsistency(operation, message string) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeCalendarInconsistency).
		Severity(mdwerror.SeverityLow).
		Build()
}

// LocaleNotFound reports a locale without a name table
func LocaleNotFound(locale string) *mdwerror.Error {
	return NewErrorBuilder(ModuleI18n).
		Operation("Lookup").
		Messagef("no name table available for locale '%s'", locale).
		Code(mdwerror.CodeLocaleNotFound).
		Detail("locale", locale).
		Severity(mdwerror.SeverityLow).
		Build()
}
