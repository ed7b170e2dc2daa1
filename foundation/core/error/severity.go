// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Input validation failures
//              are low severity, configuration problems are higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for text-format codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unusable configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level of an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeLocaleNotFound,
		CodeInvalidLength, CodeValueOutOfRange, CodeInvalidFormat, CodePatternMismatch,
		CodeLiteralMismatch, CodeInconsistentValue, CodeTrailingInput, CodeMissingValue,
		CodeCalendarInconsistency:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
