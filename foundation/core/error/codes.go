// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify parse, format and
//              calendar failures across the foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with text-format codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError    Code = "CONFIG_ERROR"
	CodeMissingConfig  Code = "MISSING_CONFIG"
	CodeInvalidConfig  Code = "INVALID_CONFIG"
	CodeLocaleNotFound Code = "LOCALE_NOT_FOUND"

	// Text parsing and formatting
	CodeInvalidLength     Code = "INVALID_LENGTH"
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodePatternMismatch   Code = "PATTERN_MISMATCH"
	CodeLiteralMismatch   Code = "LITERAL_MISMATCH"
	CodeInconsistentValue Code = "INCONSISTENT_VALUE"
	CodeTrailingInput     Code = "TRAILING_INPUT"
	CodeMissingValue      Code = "MISSING_VALUE"

	// Calendar
	CodeCalendarInconsistency Code = "CALENDAR_INCONSISTENCY"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeLocaleNotFound,
		CodeInvalidLength, CodeValueOutOfRange, CodeInvalidFormat, CodePatternMismatch,
		CodeLiteralMismatch, CodeInconsistentValue, CodeTrailingInput, CodeMissingValue,
		CodeCalendarInconsistency:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeLocaleNotFound:
		return "configuration"
	case CodeInvalidLength, CodeValueOutOfRange, CodeInvalidFormat, CodePatternMismatch,
		CodeLiteralMismatch, CodeInconsistentValue, CodeTrailingInput, CodeMissingValue:
		return "validation"
	case CodeCalendarInconsistency:
		return "calendar"
	default:
		return "generic"
	}
}
