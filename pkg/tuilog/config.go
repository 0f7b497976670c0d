package tuilog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
)

// Config is the immutable configuration snapshot a sink is built from.
// Construct it with DefaultConfig and the chained With* setters, or as a
// struct literal. Zero fields are normalized to their defaults when the
// sink is created; after that the config is never mutated.
type Config struct {
	// Template is the display format, see the Placeholder* constants.
	Template string
	// TimeFormat is the time.Format layout for the {time} placeholder.
	TimeFormat string
	// Colors is the per-level display palette.
	Colors Colors
	// Stdout mirrors every formatted line to standard output when true.
	Stdout bool
	// Capacity is the maximum number of retained entries.
	Capacity int
}

// DefaultConfig returns the configuration used by Init.
func DefaultConfig() Config {
	return Config{
		Template:   DefaultTemplate,
		TimeFormat: DefaultTimeFormat,
		Colors:     DefaultColors(),
		Stdout:     true,
		Capacity:   DefaultCapacity,
	}
}

// WithTemplate returns a copy of the config with the format template set.
func (c Config) WithTemplate(template string) Config {
	c.Template = template
	return c
}

// WithTimeFormat returns a copy of the config with the {time} layout set.
func (c Config) WithTimeFormat(layout string) Config {
	c.TimeFormat = layout
	return c
}

// WithColors returns a copy of the config with the palette replaced.
func (c Config) WithColors(colors Colors) Config {
	c.Colors = colors
	return c
}

// WithStdout returns a copy of the config with stdout mirroring toggled.
func (c Config) WithStdout(enabled bool) Config {
	c.Stdout = enabled
	return c
}

// WithCapacity returns a copy of the config with the buffer capacity set.
func (c Config) WithCapacity(capacity int) Config {
	c.Capacity = capacity
	return c
}

// Validate reports configuration values that can never be normalized into
// something usable.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("tuilog: buffer capacity must not be negative, got %d", c.Capacity)
	}
	return nil
}

// normalized fills zero fields with their defaults.
func (c Config) normalized() Config {
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
	if c.Colors.isZero() {
		c.Colors = DefaultColors()
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	return c
}

// fileConfig is the on-disk schema shared by the TOML and JSON5 loaders.
// Pointer fields distinguish "absent" from an explicit zero value.
type fileConfig struct {
	Template   *string     `toml:"template" json:"template"`
	TimeFormat *string     `toml:"time_format" json:"time_format"`
	Stdout     *bool       `toml:"stdout" json:"stdout"`
	Capacity   *int        `toml:"capacity" json:"capacity"`
	Colors     *fileColors `toml:"colors" json:"colors"`
}

// fileColors holds colors as [r, g, b, a] channel arrays in 0..1.
type fileColors struct {
	Trace []float64 `toml:"trace" json:"trace"`
	Debug []float64 `toml:"debug" json:"debug"`
	Info  []float64 `toml:"info" json:"info"`
	Warn  []float64 `toml:"warn" json:"warn"`
	Error []float64 `toml:"error" json:"error"`
}

// LoadConfig reads a configuration file and merges it over the defaults.
// The format is chosen by extension: ".toml", or ".json"/".json5".
// A colors section must set all five levels; a partial palette is
// rejected so that missing levels cannot silently render invisible.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tuilog: failed to read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("tuilog: failed to parse %s: %w", path, err)
		}
	case ".json", ".json5":
		if err := json5.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("tuilog: failed to parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("tuilog: unsupported config extension %q (want .toml, .json or .json5)", ext)
	}

	cfg := DefaultConfig()
	if fc.Template != nil {
		cfg.Template = *fc.Template
	}
	if fc.TimeFormat != nil {
		cfg.TimeFormat = *fc.TimeFormat
	}
	if fc.Stdout != nil {
		cfg.Stdout = *fc.Stdout
	}
	if fc.Capacity != nil {
		cfg.Capacity = *fc.Capacity
	}
	if fc.Colors != nil {
		colors, err := fc.Colors.palette()
		if err != nil {
			return Config{}, err
		}
		cfg.Colors = colors
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc *fileColors) palette() (Colors, error) {
	channels := []struct {
		name string
		c    []float64
	}{
		{"trace", fc.Trace},
		{"debug", fc.Debug},
		{"info", fc.Info},
		{"warn", fc.Warn},
		{"error", fc.Error},
	}
	var missing []string
	for _, ch := range channels {
		if ch.c == nil {
			missing = append(missing, ch.name)
			continue
		}
		if len(ch.c) != 4 {
			return Colors{}, fmt.Errorf("tuilog: color %q must have exactly 4 channels [r, g, b, a], got %d", ch.name, len(ch.c))
		}
	}
	if len(missing) > 0 {
		return Colors{}, fmt.Errorf("tuilog: colors section must set all five levels, missing: %s", strings.Join(missing, ", "))
	}
	conv := func(c []float64) Color {
		return RGBA(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
	}
	return Colors{
		Trace: conv(fc.Trace),
		Debug: conv(fc.Debug),
		Info:  conv(fc.Info),
		Warn:  conv(fc.Warn),
		Error: conv(fc.Error),
	}, nil
}
