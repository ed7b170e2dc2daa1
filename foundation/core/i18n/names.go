// File: names.go
// Title: Locale Name Tables
// Description: Defines the NameTable holding the weekday, month and day
//              period names of one locale, and its decoding from TOML and
//              YAML locale files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of TOML/YAML translation files
// - 2026-10-19 v0.2.0: Translation maps replaced by fixed-size name tables

package i18n

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// NameTable holds the names a locale uses for calendar values.
// Weekdays start with Monday; day periods are AM then PM.
type NameTable struct {
	ShortWeekdays [7]string
	LongWeekdays  [7]string
	ShortMonths   [12]string
	LongMonths    [12]string
	DayPeriods    [2]string
}

// nameFile is the on-disk layout of a locale file
type nameFile struct {
	Locale        string   `toml:"locale" yaml:"locale"`
	ShortWeekdays []string `toml:"short_weekdays" yaml:"short_weekdays"`
	LongWeekdays  []string `toml:"long_weekdays" yaml:"long_weekdays"`
	ShortMonths   []string `toml:"short_months" yaml:"short_months"`
	LongMonths    []string `toml:"long_months" yaml:"long_months"`
	DayPeriods    []string `toml:"day_periods" yaml:"day_periods"`
}

// Format represents the locale file format
type Format int

const (
	// FormatAuto picks the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// FormatFromPath returns the format matching the extension of path
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return FormatAuto, false
	}
}

// Validate checks that every name is present and that names within one
// list are distinct, so that a parsed name maps back to a single value.
func (t NameTable) Validate() error {
	lists := []struct {
		name  string
		names []string
	}{
		{"short_weekdays", t.ShortWeekdays[:]},
		{"long_weekdays", t.LongWeekdays[:]},
		{"short_months", t.ShortMonths[:]},
		{"long_months", t.LongMonths[:]},
		{"day_periods", t.DayPeriods[:]},
	}
	for _, list := range lists {
		seen := make(map[string]int, len(list.names))
		for i, n := range list.names {
			if stringx.IsBlank(n) {
				return errors.InvalidInput(errors.ModuleI18n, "Validate", fmt.Sprintf("%s[%d] = %q", list.name, i, n), "a non-blank name")
			}
			if j, dup := seen[n]; dup {
				return errors.InvalidInput(errors.ModuleI18n, "Validate",
					fmt.Sprintf("%s[%d] = %s[%d] = %q", list.name, j, list.name, i, n), "distinct names")
			}
			seen[n] = i
		}
	}
	return nil
}

// DecodeNameTable decodes a locale file. It returns the locale named in the
// file, which may be empty.
func DecodeNameTable(data []byte, format Format) (string, NameTable, error) {
	var file nameFile
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return "", NameTable{}, errors.InvalidFormat(errors.ModuleI18n, err.Error(), "a TOML name table")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return "", NameTable{}, errors.InvalidFormat(errors.ModuleI18n, err.Error(), "a YAML name table")
		}
	default:
		return "", NameTable{}, errors.InvalidInput(errors.ModuleI18n, "DecodeNameTable", format, "toml or yaml")
	}

	table, err := file.table()
	if err != nil {
		return "", NameTable{}, err
	}
	return file.Locale, table, nil
}

func (f nameFile) table() (NameTable, error) {
	var t NameTable
	copies := []struct {
		name string
		dst  []string
		src  []string
	}{
		{"short_weekdays", t.ShortWeekdays[:], f.ShortWeekdays},
		{"long_weekdays", t.LongWeekdays[:], f.LongWeekdays},
		{"short_months", t.ShortMonths[:], f.ShortMonths},
		{"long_months", t.LongMonths[:], f.LongMonths},
		{"day_periods", t.DayPeriods[:], f.DayPeriods},
	}
	for _, c := range copies {
		if len(c.src) != len(c.dst) {
			return NameTable{}, errors.LengthMismatch(c.name, len(c.dst), len(c.src))
		}
		copy(c.dst, c.src)
	}
	return t, t.Validate()
}

// englishNames is the built-in table for en-US
var englishNames = NameTable{
	ShortWeekdays: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	LongWeekdays:  [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	ShortMonths:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	LongMonths: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	DayPeriods: [2]string{"AM", "PM"},
}
