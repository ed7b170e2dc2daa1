// ============================================================================
// fmtx - Text format toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit packages
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for the fmtx packages
const (
	// Toolkit version
	Toolkit = "0.2.0"

	// Package versions
	Template = "0.2.0"
	Numberx  = "0.2.0"
	Datetime = "0.1.0"
	Timex    = "0.2.0"
	Mathx    = "0.2.0"
	I18n     = "0.2.0"
)

// Components lists the package names known to ComponentVersion
var Components = []string{"template", "numberx", "datetime", "timex", "mathx", "i18n"}

// ComponentVersion returns the version for a given package name
func ComponentVersion(name string) string {
	switch name {
	case "template":
		return Template
	case "numberx":
		return Numberx
	case "datetime":
		return Datetime
	case "timex":
		return Timex
	case "mathx":
		return Mathx
	case "i18n":
		return I18n
	default:
		return Toolkit
	}
}
