// Package errors provides the standard error constructors for the foundation
// packages.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Wraps the core error type with one constructor per kind of
//              validation failure (length, range, pattern, literal set,
//              repeated field, trailing input, calendar inconsistency) so that
//              every package reports failures with the same wording. Messages
//              always name the field label and show expected and actual values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Validation constructors for the text format engine
//
// Usage:
//
//	err := errors.LengthMismatch("#dd", 2, 1)
//	// Expected length of #dd to be: 2. Actual: 1
//
//	err = errors.OutOfRange("#MM", 1, 12, 13, true)
//	// Expected #MM to be between 1 and 12 (included). Actual: 13
//
//	custom := errors.NewErrorBuilder(errors.ModuleNumberx).
//		Operation("Parse").
//		Message("number is not finite").
//		Code(mdwerror.CodeInvalidInput).
//		Build()
package errors
