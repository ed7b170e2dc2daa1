// File: catalog_test.go
// Title: Locale Catalog Tests
// Description: Tests for name table decoding, locale resolution, file
//              loading, reloading and the function provider.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Name table catalog tests

package i18n

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
)

const italianTOML = `
locale = "it-IT"
short_weekdays = ["lun", "mar", "mer", "gio", "ven", "sab", "dom"]
long_weekdays = ["lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato", "domenica"]
short_months = ["gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"]
long_months = ["gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"]
day_periods = ["AM", "PM"]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestBuiltinLocales(t *testing.T) {
	c := Builtin()
	assert.Equal(t, []string{"de-DE", "en-US", "fr-FR"}, c.Locales())
	assert.Equal(t, "en-US", c.DefaultLocale())

	fr, err := c.Lookup("fr-FR")
	require.NoError(t, err)
	assert.Equal(t, "lundi", fr.LongWeekdays[0])
	assert.Equal(t, "févr.", fr.ShortMonths[1])

	de, err := c.Lookup("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "März", de.LongMonths[2])
	assert.Equal(t, "So.", de.ShortWeekdays[6])

	en, err := c.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, englishNames, en)
}

func TestResolve(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name    string
		locale  string
		want    string
		wantErr bool
	}{
		{"exact", "de-DE", "de-DE", false},
		{"blank uses default", " ", "en-US", false},
		{"language only", "fr", "fr-FR", false},
		{"other region", "fr-CA", "fr-FR", false},
		{"lower case", "de-de", "de-DE", false},
		{"unsupported language", "ja-JP", "", true},
		{"malformed tag", "not a locale", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Resolve(tt.locale)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, mdwerror.HasCode(err, mdwerror.CodeLocaleNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviderInterface(t *testing.T) {
	var p Provider = Builtin()

	_, ok := p.NameTable("ja")
	assert.False(t, ok)

	table, ok := p.NameTable("en")
	require.True(t, ok)
	assert.Equal(t, "PM", table.DayPeriods[1])
}

func TestDetectLocale(t *testing.T) {
	c := Builtin()

	assert.Equal(t, "fr-FR", c.DetectLocale("fr-CH, fr;q=0.9, en;q=0.8"))
	assert.Equal(t, "de-DE", c.DetectLocale("ja;q=0.9, de;q=0.5"))
	assert.Equal(t, "en-US", c.DetectLocale(""))
	assert.Equal(t, "en-US", c.DetectLocale("ja"))
}

func TestEnvironmentLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "de-DE", EnvironmentLocale())

	t.Setenv("LC_TIME", "C")
	assert.Equal(t, "en-US", EnvironmentLocale())
}

func TestDecodeNameTable(t *testing.T) {
	locale, table, err := DecodeNameTable([]byte(italianTOML), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "it-IT", locale)
	assert.Equal(t, "dicembre", table.LongMonths[11])

	t.Run("wrong length", func(t *testing.T) {
		_, _, err := DecodeNameTable([]byte("short_weekdays = [\"a\"]\n"), FormatTOML)
		require.Error(t, err)
		assert.Equal(t, "Expected length of short_weekdays to be: 7. Actual: 1", err.Error())
	})

	t.Run("duplicate names", func(t *testing.T) {
		yml := `
short_weekdays: [a, b, c, d, e, f, g]
long_weekdays: [a, b, c, d, e, f, g]
short_months: [a, b, c, d, e, f, g, h, i, j, k, k]
long_months: [a, b, c, d, e, f, g, h, i, j, k, l]
day_periods: [am, pm]
`
		_, _, err := DecodeNameTable([]byte(yml), FormatYAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "distinct names")
	})

	t.Run("unknown YAML key", func(t *testing.T) {
		_, _, err := DecodeNameTable([]byte("weekdays: [a]\n"), FormatYAML)
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	})

	t.Run("broken TOML", func(t *testing.T) {
		_, _, err := DecodeNameTable([]byte("locale = "), FormatTOML)
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	})
}

func TestCatalogLocalesDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "it.toml", italianTOML)
	writeFile(t, dir, "README.md", "ignored")

	c, err := NewCatalog(Options{LocalesDir: dir, DefaultLocale: "it-IT"})
	require.NoError(t, err)
	assert.Equal(t, "it-IT", c.DefaultLocale())
	assert.Contains(t, c.Locales(), "it-IT")

	table, err := c.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "gennaio", table.LongMonths[0])

	t.Run("format filter", func(t *testing.T) {
		_, err := NewCatalog(Options{LocalesDir: dir, DefaultLocale: "it-IT", Format: FormatYAML})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeLocaleNotFound))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewCatalog(Options{LocalesDir: filepath.Join(dir, "nope")})
		require.Error(t, err)
	})
}

func TestCatalogAddAndLoad(t *testing.T) {
	c, err := NewCatalog(Options{})
	require.NoError(t, err)

	custom := englishNames
	custom.DayPeriods = [2]string{"a.m.", "p.m."}
	require.NoError(t, c.Add("en-GB", custom))

	table, err := c.Lookup("en-GB")
	require.NoError(t, err)
	assert.Equal(t, "a.m.", table.DayPeriods[0])

	bad := englishNames
	bad.LongMonths[1] = "January"
	assert.Error(t, c.Add("en-AU", bad))

	dir := t.TempDir()
	path := writeFile(t, dir, "it-IT.toml", italianTOML)
	require.NoError(t, c.Load(path))
	resolved, err := c.Resolve("it")
	require.NoError(t, err)
	assert.Equal(t, "it-IT", resolved)

	assert.Error(t, c.Load(writeFile(t, dir, "it.json", "{}")))
}

func TestReloadKeepsAddedTables(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCatalog(Options{LocalesDir: dir})
	require.NoError(t, err)
	require.NoError(t, c.Add("en-GB", englishNames))

	writeFile(t, dir, "it-IT.toml", italianTOML)
	require.NoError(t, c.Reload())
	assert.Contains(t, c.Locales(), "it-IT")
	assert.Contains(t, c.Locales(), "en-GB")

	writeFile(t, dir, "broken.toml", "locale = ")
	assert.Error(t, c.Reload())
	assert.Contains(t, c.Locales(), "it-IT")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCatalog(Options{LocalesDir: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx, 20*time.Millisecond) }()

	hasMonth := func(locale, month string) bool {
		table, err := c.Lookup(locale)
		return err == nil && table.LongMonths[0] == month
	}

	// the watcher may start after the first write, so writes repeat until
	// an event reaches it
	assert.Eventually(t, func() bool {
		writeFile(t, dir, "it-IT.toml", italianTOML)
		return hasMonth("it-IT", "gennaio")
	}, 5*time.Second, 100*time.Millisecond, "created file not loaded")

	writeFile(t, dir, "broken.toml", "locale = ")
	time.Sleep(200 * time.Millisecond)
	assert.True(t, hasMonth("it-IT", "gennaio"), "failed reload dropped the previous tables")

	require.NoError(t, os.Remove(filepath.Join(dir, "broken.toml")))
	writeFile(t, dir, "it-IT.toml", strings.Replace(italianTOML, `"gennaio"`, `"Gennaio"`, 1))
	assert.Eventually(t, func() bool { return hasMonth("it-IT", "Gennaio") },
		5*time.Second, 20*time.Millisecond, "changed file not reloaded")

	require.NoError(t, os.Remove(filepath.Join(dir, "it-IT.toml")))
	assert.Eventually(t, func() bool {
		_, err := c.Resolve("it-IT")
		return err != nil
	}, 5*time.Second, 20*time.Millisecond, "removed file still loaded")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	assert.Error(t, Builtin().Watch(context.Background(), 0))
}

func TestWatchMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCatalog(Options{LocalesDir: dir})
	require.NoError(t, err)
	require.NoError(t, os.Remove(dir))

	err = c.Watch(context.Background(), time.Millisecond)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInternal))
}

func TestFuncProvider(t *testing.T) {
	tests := []struct {
		name   string
		fn     FuncProvider
		wantOK bool
	}{
		{"table", func(string) (NameTable, error) { return englishNames, nil }, true},
		{"error", func(string) (NameTable, error) { return NameTable{}, errors.New("unsupported") }, false},
		{"panic", func(string) (NameTable, error) { panic("formatter crashed") }, false},
		{"invalid table", func(string) (NameTable, error) { return NameTable{}, nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := tt.fn.NameTable("xx")
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, NameTable{}, table)
			}
		})
	}
}
