// ============================================================================
// fmtx - Text format toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, written as {name} in text output
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console, logfmt; default: console)
	Format string

	// Output defaults to stderr so command output on stdout stays clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// CorrelationID ties together the entries of one invocation.
	// A random id is generated when empty.
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// FromConfig returns the logger configuration of the general section
func FromConfig(cfg *config.Config, name string) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg == nil {
		return lc
	}
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	return lc
}

// NewLogger creates a new Foundation logger. Unknown levels fall back to
// info, unknown formats to console.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	id := cfg.CorrelationID
	if id == "" {
		id = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(id)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewCorrelationID returns a random correlation id
func NewCorrelationID() string {
	return uuid.NewString()
}
