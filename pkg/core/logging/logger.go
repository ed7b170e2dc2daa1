// ============================================================================
// fmtx - Text format toolkit
// ============================================================================
//
// Package:     logging
// Description: Key-value logger on top of the Foundation logger
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/formatting/foundation/core/log"
)

// Logger wraps the Foundation logger with key-value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name))
}

// Wrap adds key-value methods to an existing logger
func Wrap(logger *mdwlog.Logger) *Logger {
	return &Logger{
		Logger: logger,
		name:   logger.Name(),
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level mdwlog.Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level),
		name:   l.name,
	}
}

// With returns a new logger carrying the key-value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields. Non-string keys and
// a trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
