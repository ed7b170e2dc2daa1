package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/utils/mathx"
	"github.com/msto63/formatting/foundation/utils/numberx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "FMTX_CONFIG"

// Config holds the complete fmtx configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Number  NumberConfig  `toml:"number" yaml:"number"`
	Date    DateConfig    `toml:"date" yaml:"date"`
}

// GeneralConfig holds logging and locale settings
type GeneralConfig struct {
	LogLevel      string   `toml:"log_level" yaml:"log_level"`
	LogFormat     string   `toml:"log_format" yaml:"log_format"`
	Locale        string   `toml:"locale" yaml:"locale"`
	LocalesDir    string   `toml:"locales_dir" yaml:"locales_dir"`
	WatchDebounce Duration `toml:"watch_debounce" yaml:"watch_debounce"`
}

// NumberConfig describes a number format. Preset or FormatCode selects the
// base descriptor, the remaining fields override single settings.
type NumberConfig struct {
	Preset              string  `toml:"preset" yaml:"preset"`
	FormatCode          string  `toml:"format_code" yaml:"format_code"`
	ThousandSeparator   *string `toml:"thousand_separator" yaml:"thousand_separator"`
	FractionalSeparator string  `toml:"fractional_separator" yaml:"fractional_separator"`
	MinFractionalDigits *int    `toml:"min_fractional_digits" yaml:"min_fractional_digits"`
	MaxFractionalDigits *int    `toml:"max_fractional_digits" yaml:"max_fractional_digits"`
	SignDisplay         string  `toml:"sign_display" yaml:"sign_display"`
	ScientificNotation  string  `toml:"scientific_notation" yaml:"scientific_notation"`
	RoundingMode        string  `toml:"rounding_mode" yaml:"rounding_mode"`
	Padding             int     `toml:"padding" yaml:"padding"`
	FillChar            string  `toml:"fill_char" yaml:"fill_char"`
	MinIntegerLength    int     `toml:"min_integer_length" yaml:"min_integer_length"`
}

// DateConfig holds the default date layout
type DateConfig struct {
	Layout string `toml:"layout" yaml:"layout"`
	// Locale overrides General.Locale for month and weekday names
	Locale string `toml:"locale" yaml:"locale"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var presets = map[string]numberx.Descriptor{
	"integer":     numberx.Integer,
	"uk":          numberx.UKStyleNumber,
	"german":      numberx.GermanStyleNumber,
	"french":      numberx.FrenchStyleNumber,
	"scientific":  numberx.ScientificNumber,
	"engineering": numberx.EngineeringNumber,
}

// Presets returns the preset names accepted by NumberConfig.Preset
func Presets() []string {
	return []string{"integer", "uk", "german", "french", "scientific", "engineering"}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows
// the file extension, anything but .yaml and .yml is read as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("Load").
			Messagef("config file not found: %s", path).
			Code(mdwerror.CodeMissingConfig).
			Detail("path", path).
			Build()
	}
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleConfig, "Load", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return nil, invalidConfig(path, err)
		}
	default:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, invalidConfig(path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, invalidConfig(path, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by FMTX_CONFIG or the first existing
// default location
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return nil, errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("LoadFromEnv").
		Message("no configuration file found").
		Code(mdwerror.CodeMissingConfig).
		Detail("paths", DefaultPaths()).
		Build()
}

// DefaultPaths lists the locations LoadFromEnv tries in order
func DefaultPaths() []string {
	paths := []string{
		"./fmtx.toml",
		"./fmtx.yaml",
		"./configs/fmtx.toml",
		"./configs/fmtx.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "fmtx", "config.toml"),
			filepath.Join(home, ".config", "fmtx", "config.yaml"))
	}
	return paths
}

func invalidConfig(path string, cause error) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("Load").
		Messagef("failed to parse config file %s", path).
		Cause(cause).
		Code(mdwerror.CodeInvalidConfig).
		Detail("path", path).
		Build()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.General.WatchDebounce.Duration == 0 {
		c.General.WatchDebounce.Duration = 500 * time.Millisecond
	}

	if c.Number.Preset == "" && c.Number.FormatCode == "" {
		c.Number.Preset = "uk"
	}

	if c.Date.Layout == "" {
		c.Date.Layout = "{yyyy}-{MM}-{dd}"
	}
}

// expandEnvVars expands environment variables in path settings
func (c *Config) expandEnvVars() {
	c.General.LocalesDir = os.ExpandEnv(c.General.LocalesDir)
}

// DateLocale returns the locale used for date names
func (c *Config) DateLocale() string {
	if c.Date.Locale != "" {
		return c.Date.Locale
	}
	return c.General.Locale
}

// Validate checks settings that can be checked without a locale catalog
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return c.invalid("general.log_level", err)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return c.invalid("general.log_format", err)
	}
	if c.General.WatchDebounce.Duration < 0 {
		return c.invalid("general.watch_debounce",
			fmt.Errorf("negative debounce %s", c.General.WatchDebounce.Duration))
	}
	if _, err := c.NumberDescriptor(); err != nil {
		return err
	}
	return nil
}

func (c *Config) invalid(key string, cause error) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("Validate").
		Messagef("invalid value for %s", key).
		Cause(cause).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Build()
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		return log.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() log.Format {
	format, err := log.ParseFormat(c.General.LogFormat)
	if err != nil {
		return log.FormatConsole
	}
	return format
}

// NumberDescriptor builds the number descriptor described by the number
// section and validates it
func (c *Config) NumberDescriptor() (numberx.Descriptor, error) {
	n := c.Number

	var d numberx.Descriptor
	switch {
	case n.FormatCode != "":
		var err error
		if d, err = numberx.FromFormatCode(n.FormatCode); err != nil {
			return d, c.invalid("number.format_code", err)
		}
	default:
		preset, ok := presets[strings.ToLower(n.Preset)]
		if !ok {
			return d, c.invalid("number.preset",
				fmt.Errorf("unknown preset %q, expected one of %s", n.Preset, strings.Join(Presets(), ", ")))
		}
		d = preset
	}

	if n.ThousandSeparator != nil {
		d = d.WithThousandSeparator(*n.ThousandSeparator)
	}
	if n.FractionalSeparator != "" {
		d = d.WithFractionalSeparator(n.FractionalSeparator)
	}
	if n.MinFractionalDigits != nil || n.MaxFractionalDigits != nil {
		min, max := d.MinimumFractionalDigits, d.MaximumFractionalDigits
		if n.MinFractionalDigits != nil {
			min = *n.MinFractionalDigits
		}
		if n.MaxFractionalDigits != nil {
			max = *n.MaxFractionalDigits
		}
		d = d.WithFractionalDigits(min, max)
	}
	if n.SignDisplay != "" {
		var s numberx.SignDisplay
		if err := s.UnmarshalText([]byte(n.SignDisplay)); err != nil {
			return d, c.invalid("number.sign_display", err)
		}
		d = d.WithSignDisplay(s)
	}
	if n.ScientificNotation != "" {
		var s numberx.ScientificNotation
		if err := s.UnmarshalText([]byte(n.ScientificNotation)); err != nil {
			return d, c.invalid("number.scientific_notation", err)
		}
		d = d.WithScientificNotation(s)
	}
	if n.RoundingMode != "" {
		mode, err := mathx.ParseRoundingMode(n.RoundingMode)
		if err != nil {
			return d, c.invalid("number.rounding_mode", err)
		}
		d = d.WithRoundingMode(mode)
	}

	fill := n.FillChar
	if fill == "" {
		fill = "0"
	}
	if n.Padding > 0 {
		d = d.WithPadding(n.Padding, fill)
	}
	if n.MinIntegerLength > 0 {
		d = d.WithMinimumIntegerPartLength(n.MinIntegerLength, fill)
	}

	if err := d.Validate(); err != nil {
		return d, c.invalid("number", err)
	}
	return d, nil
}
