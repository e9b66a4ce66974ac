// SPDX-License-Identifier: MIT

// Package config loads the TOML configuration of the exact command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/exact/codec"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "EXACT_CONFIG"

// OutputText selects human-readable output instead of a document format.
const OutputText = "text"

// ErrInvalid is returned when a config value is out of its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the complete command configuration.
type Config struct {
	LogLevel     string `toml:"log_level"`     // debug | info | warn | error
	LogFormat    string `toml:"log_format"`    // text | json
	OutputFormat string `toml:"output_format"` // text | json | yaml | toml
	FloatBits    int    `toml:"float_bits"`    // 32 | 64
	Precision    int    `toml:"precision"`     // digits for evaluated values, -1 = shortest

	Codec CodecConfig `toml:"codec"`
}

// CodecConfig holds document codec settings.
type CodecConfig struct {
	MaxDepth int `toml:"max_depth"` // 0 disables the limit
	Indent   int `toml:"indent"`    // 0 writes compact JSON
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := Config{
		Precision: -1,
		Codec:     CodecConfig{MaxDepth: codec.DefaultMaxDepth, Indent: codec.DefaultIndent},
	}
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	// Zero is a valid setting for these keys, so only fill them when absent.
	if !md.IsDefined("precision") {
		cfg.Precision = -1
	}
	if !md.IsDefined("codec", "max_depth") {
		cfg.Codec.MaxDepth = codec.DefaultMaxDepth
	}
	if !md.IsDefined("codec", "indent") {
		cfg.Codec.Indent = codec.DefaultIndent
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by EXACT_CONFIG, then the default
// locations. With no file anywhere it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	defaultPaths := []string{
		"./exact.toml",
		filepath.Join(os.Getenv("HOME"), ".config/exact/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.OutputFormat == "" {
		c.OutputFormat = OutputText
	}
	if c.FloatBits == 0 {
		c.FloatBits = 64
	}
}

// Validate checks every value against its allowed set.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	if c.OutputFormat != OutputText {
		if _, err := codec.ParseFormat(c.OutputFormat); err != nil {
			return fmt.Errorf("%w: output_format %q", ErrInvalid, c.OutputFormat)
		}
	}
	if c.FloatBits != 32 && c.FloatBits != 64 {
		return fmt.Errorf("%w: float_bits %d", ErrInvalid, c.FloatBits)
	}
	if c.Precision < -1 || c.Precision > 30 {
		return fmt.Errorf("%w: precision %d", ErrInvalid, c.Precision)
	}
	if c.Codec.MaxDepth < 0 {
		return fmt.Errorf("%w: codec.max_depth %d", ErrInvalid, c.Codec.MaxDepth)
	}
	if c.Codec.Indent < 0 || c.Codec.Indent > 8 {
		return fmt.Errorf("%w: codec.indent %d", ErrInvalid, c.Codec.Indent)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Logger builds a structured logger writing to w in LogFormat at LogLevel.
// verbose forces the debug level.
func (c *Config) Logger(w io.Writer, verbose bool) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// CodecOptions returns the codec options described by the configuration.
func (c *Config) CodecOptions(logger *slog.Logger) []codec.Option {
	return []codec.Option{
		codec.WithLogger(logger),
		codec.WithMaxDepth(c.Codec.MaxDepth),
		codec.WithIndent(c.Codec.Indent),
	}
}
