// File: level.go
// Title: Log Levels
// Description: Defines the log levels, their short names and the parsing of
//              level names from configuration files and command line flags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with log levels
// - 2026-10-19 v0.2.0: Removed audit level, UnmarshalText for config decoding

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every parsed part of a template
	LevelTrace Level = iota

	// LevelDebug logs compiled templates and locale resolution
	LevelDebug

	// LevelInfo is the default level
	LevelInfo

	// LevelWarn indicates fallbacks, e.g. an unknown locale
	LevelWarn

	// LevelError represents failed operations
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

var levelShortNames = [...]string{"TRC", "DBG", "INF", "WRN", "ERR"}

// String returns the string representation of the log level
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns the three letter representation used by text output
func (l Level) ShortString() string {
	if l < LevelTrace || l > LevelError {
		return "???"
	}
	return levelShortNames[l]
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid log " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
