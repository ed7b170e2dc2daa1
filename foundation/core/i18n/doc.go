// Package i18n provides the locale name tables used by date-time templates.
//
// Package: i18n
// Title: Locale Name Tables
// Description: A Catalog maps BCP 47 locales to NameTables holding weekday,
//              month and day period names. en-US is built in, fr-FR and de-DE
//              ship as embedded locale files, and more tables are read from
//              TOML or YAML files in a directory. Requests are resolved to
//              the best available locale with golang.org/x/text/language.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of translation management
// - 2026-10-19 v0.2.0: Reworked into a name table catalog
//
// Locale file (TOML):
//
//	locale = "it-IT"
//	short_weekdays = ["lun", "mar", "mer", "gio", "ven", "sab", "dom"]
//	long_weekdays = ["lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato", "domenica"]
//	short_months = ["gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"]
//	long_months = ["gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
//	               "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"]
//	day_periods = ["AM", "PM"]
//
// Usage:
//
//	catalog, err := i18n.NewCatalog(i18n.Options{LocalesDir: "./locales"})
//	if err != nil {
//		return err
//	}
//	names, err := catalog.Lookup("fr-CA") // resolves to fr-FR
//
//	go catalog.Watch(ctx, time.Second)
package i18n
