// File: catalog.go
// Title: Locale Name Table Catalog
// Description: Implements the Catalog that stores the name tables of all
//              known locales and resolves a requested locale to the best
//              available one. en-US is built in, fr-FR and de-DE are embedded
//              locale files, further tables are loaded from a directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of the translation manager
// - 2026-10-19 v0.2.0: Reworked into a name table catalog with language
//                       matching from golang.org/x/text

package i18n

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/utils/stringx"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en-US"

//go:embed locales/*.toml locales/*.yaml
var embeddedLocales embed.FS

// Options defines configuration options for a Catalog
type Options struct {
	DefaultLocale string      // Fallback for blank lookups, default "en-US"
	LocalesDir    string      // Optional directory with additional locale files
	Format        Format      // Restricts the files read from LocalesDir
	Logger        *log.Logger // Receives loading diagnostics
}

// Catalog maps locales to name tables. It is safe for concurrent use.
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale string
	localesDir    string
	format        Format
	logger        *log.Logger

	builtin map[string]NameTable
	files   map[string]NameTable
	added   map[string]NameTable

	tables  map[string]NameTable
	keys    []string
	matcher language.Matcher
}

// NewCatalog creates a catalog with the built-in tables and, if configured,
// the tables found in opts.LocalesDir
func NewCatalog(opts Options) (*Catalog, error) {
	if stringx.IsBlank(opts.DefaultLocale) {
		opts.DefaultLocale = DefaultLocale
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	def, err := canonical(opts.DefaultLocale)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		defaultLocale: def,
		localesDir:    opts.LocalesDir,
		format:        opts.Format,
		logger:        opts.Logger.WithName("i18n"),
		builtin:       map[string]NameTable{DefaultLocale: englishNames},
		files:         map[string]NameTable{},
		added:         map[string]NameTable{},
	}

	if err := c.loadEmbedded(); err != nil {
		return nil, err
	}
	if c.localesDir != "" {
		timer := c.logger.StartTimer("load locales").WithField("dir", c.localesDir)
		files, err := c.loadDir(c.localesDir)
		timer.StopWithError(err)
		if err != nil {
			return nil, err
		}
		c.files = files
	}

	c.rebuild()
	if _, ok := c.tables[c.defaultLocale]; !ok {
		return nil, errors.LocaleNotFound(c.defaultLocale)
	}
	return c, nil
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns a shared catalog holding only the built-in and embedded tables
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := NewCatalog(Options{})
		if err != nil {
			// the embedded files are part of the build
			panic(err)
		}
		builtinCatalog = c
	})
	return builtinCatalog
}

// DefaultLocale returns the locale used for blank lookups
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the canonical names of all available locales, sorted
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.tables))
	for k := range c.tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the available locale that best matches locale. A blank
// locale resolves to the default locale. "fr" and "fr-CA" both resolve to
// "fr-FR" when that is the only French table.
func (c *Catalog) Resolve(locale string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(locale)
}

// Lookup returns the name table best matching locale
func (c *Catalog) Lookup(locale string) (NameTable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key, err := c.resolve(locale)
	if err != nil {
		return NameTable{}, err
	}
	return c.tables[key], nil
}

func (c *Catalog) resolve(locale string) (string, error) {
	if stringx.IsBlank(locale) {
		locale = c.defaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.LocaleNotFound(locale)
	}
	if _, ok := c.tables[tag.String()]; ok {
		return tag.String(), nil
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return "", errors.LocaleNotFound(locale)
	}
	return c.keys[index], nil
}

// NameTable implements Provider
func (c *Catalog) NameTable(locale string) (NameTable, bool) {
	t, err := c.Lookup(locale)
	return t, err == nil
}

// Add registers table for locale, replacing any table with the same name
func (c *Catalog) Add(locale string, table NameTable) error {
	key, err := canonical(locale)
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.added[key] = table
	c.rebuild()
	c.logger.Debug("locale added", log.Field("locale", key))
	return nil
}

// Load reads a single locale file and adds its table. The locale is taken
// from the file content, or from the file name when the content has none.
func (c *Catalog) Load(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.OperationFailed(errors.ModuleI18n, "Load", err)
	}
	locale, table, err := decodeFile(filepath.Base(file), data, FormatAuto)
	if err != nil {
		return err
	}
	return c.Add(locale, table)
}

// Reload re-reads LocalesDir. Tables registered with Add or Load are kept.
func (c *Catalog) Reload() error {
	if c.localesDir == "" {
		return nil
	}
	files, err := c.loadDir(c.localesDir)
	if err != nil {
		c.logger.WarnWithErr("reload failed, keeping previous tables", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = files
	c.rebuild()
	c.logger.Debug("locales reloaded", log.Field("count", len(c.tables)))
	return nil
}

func (c *Catalog) loadEmbedded() error {
	entries, err := fs.ReadDir(embeddedLocales, "locales")
	if err != nil {
		return errors.OperationFailed(errors.ModuleI18n, "loadEmbedded", err)
	}
	for _, entry := range entries {
		data, err := embeddedLocales.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return errors.OperationFailed(errors.ModuleI18n, "loadEmbedded", err)
		}
		locale, table, err := decodeFile(entry.Name(), data, FormatAuto)
		if err != nil {
			return err
		}
		key, err := canonical(locale)
		if err != nil {
			return err
		}
		c.builtin[key] = table
	}
	return nil
}

func (c *Catalog) loadDir(dir string) (map[string]NameTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleI18n, "loadDir", err)
	}

	tables := make(map[string]NameTable)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := FormatFromPath(entry.Name())
		if !ok || (c.format != FormatAuto && c.format != format) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.OperationFailed(errors.ModuleI18n, "loadDir", err)
		}
		locale, table, err := decodeFile(entry.Name(), data, format)
		if err != nil {
			return nil, err
		}
		key, err := canonical(locale)
		if err != nil {
			return nil, err
		}
		tables[key] = table
		c.logger.Debug("locale file loaded", log.Fields{"file": entry.Name(), "locale": key})
	}
	return tables, nil
}

// rebuild merges the table sources and recreates the matcher.
// The caller holds the write lock, or is the constructor.
func (c *Catalog) rebuild() {
	tables := make(map[string]NameTable, len(c.builtin)+len(c.files)+len(c.added))
	for _, src := range []map[string]NameTable{c.builtin, c.files, c.added} {
		for k, v := range src {
			tables[k] = v
		}
	}

	// the first tag is the matcher's fallback, so the default goes first
	keys := make([]string, 0, len(tables))
	for k := range tables {
		if k != c.defaultLocale {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := tables[c.defaultLocale]; ok {
		keys = append([]string{c.defaultLocale}, keys...)
	}

	tags := make([]language.Tag, len(keys))
	for i, k := range keys {
		tags[i] = language.MustParse(k)
	}

	c.tables = tables
	c.keys = keys
	c.matcher = language.NewMatcher(tags)
}

func decodeFile(name string, data []byte, format Format) (string, NameTable, error) {
	if format == FormatAuto {
		var ok bool
		if format, ok = FormatFromPath(name); !ok {
			return "", NameTable{}, errors.InvalidInput(errors.ModuleI18n, "decodeFile", name, "a .toml, .yaml or .yml file")
		}
	}
	locale, table, err := DecodeNameTable(data, format)
	if err != nil {
		return "", NameTable{}, err
	}
	if stringx.IsBlank(locale) {
		locale = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return locale, table, nil
}

func canonical(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.InvalidInput(errors.ModuleI18n, "canonical", locale, "a BCP 47 language tag")
	}
	return tag.String(), nil
}
