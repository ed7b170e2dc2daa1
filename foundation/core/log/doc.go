// Package log provides structured logging for the formatting packages and
// the fmtx command.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Parsing code logs rejected input at debug level
//              through LogError, which carries the error code and the label
//              of the offending field.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Reduced to what the formatting toolkit needs
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithName("datetime").
//		WithField("locale", "fr-FR")
//
//	logger.Debug("compiled template", log.Field("layout", "{dd}/{MM}/{yyyy}"))
//
//	if _, err := tmpl.Parse(text); err != nil {
//		logger.LogError(err)
//	}
//
//	timer := logger.StartTimer("load locales")
//	// ...
//	timer.Stop()
package log
