// Package error provides the structured error type shared by the foundation
// packages.
//
// Package: error
// Title: Structured Error Handling
// Description: Every parse, format and calendar operation returns *Error
//              values through the normal return channel. An error carries a
//              human-readable message naming the field label, a Code for
//              programmatic branching, a Severity and a details map holding
//              the expected and actual values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Text-format error codes, no stack capture
//
// Usage:
//   import mdwerror "github.com/msto63/formatting/foundation/core/error"
//
//   err := mdwerror.New("Expected length of #dd to be: 2. Actual: 1").
//     WithCode(mdwerror.CodeInvalidLength).
//     WithDetail("label", "#dd")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidLength) {
//     // report the offending field
//   }
package error
