// File: locale.go
// Title: Locale Detection
// Description: Picks the best available locale for a list of preferences
//              given in Accept-Language syntax, e.g. from the LANGUAGE
//              environment variable or a command line flag.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-19 v0.2.0: Parsing and matching delegated to golang.org/x/text

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/msto63/formatting/foundation/utils/stringx"
)

// DetectLocale returns the available locale best matching preferences,
// e.g. "fr-CH, fr;q=0.9, en;q=0.8". It falls back to the default locale.
func (c *Catalog) DetectLocale(preferences string) string {
	if stringx.IsBlank(preferences) {
		return c.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(preferences)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultLocale
	}
	return c.keys[index]
}

// EnvironmentLocale returns the user's locale preference from LC_ALL,
// LC_TIME or LANG in Accept-Language syntax, or "" when none is set.
// "de_DE.UTF-8" becomes "de-DE".
func EnvironmentLocale() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(name)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
