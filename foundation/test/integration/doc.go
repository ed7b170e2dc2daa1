// Package integration provides integration tests for the foundation library.
//
// Package: integration
// Title: Foundation Integration Tests
// Description: Tests that verify the interaction between the foundation
//              packages: error codes across module boundaries, texts flowing
//              through templates into calendar values and back, and the
//              agreement of number formatting with decimal rounding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-19 v0.2.0: Rewritten for the template, numberx and datetime packages
//
// Test Categories:
//
// Module Integration Tests (integration_test.go):
// - Error codes and labels surviving template and calendar boundaries
// - Text -> Record -> DateTime -> text round trips per locale
// - Templates mixing date, literal and number placeholders
// - Formatter rounding matching mathx rounding for every mode
//
// Performance Tests (performance_test.go):
// - Number parse/format and date template parse/format benchmarks
// - Concurrent use of shared templates
package integration
