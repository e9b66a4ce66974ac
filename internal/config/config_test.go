// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exact/codec"
	"github.com/katalvlaran/exact/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exact.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, config.OutputText, cfg.OutputFormat)
	require.Equal(t, 64, cfg.FloatBits)
	require.Equal(t, -1, cfg.Precision)
	require.Equal(t, codec.DefaultMaxDepth, cfg.Codec.MaxDepth)
	require.Equal(t, codec.DefaultIndent, cfg.Codec.Indent)
}

func TestLoad_Values(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, `
log_level = "debug"
log_format = "json"
output_format = "yaml"
float_bits = 32
precision = 0

[codec]
max_depth = 64
indent = 4
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "yaml", cfg.OutputFormat)
	require.Equal(t, 32, cfg.FloatBits)
	require.Equal(t, 0, cfg.Precision)
	require.Equal(t, 64, cfg.Codec.MaxDepth)
	require.Equal(t, 4, cfg.Codec.Indent)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_CodecZeroValues(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, "[codec]\nmax_depth = 0\nindent = 0\n"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Codec.MaxDepth)
	require.Equal(t, 0, cfg.Codec.Indent)

	cfg, err = config.Load(writeConfig(t, "[codec]\nindent = 4\n"))
	require.NoError(t, err)
	require.Equal(t, codec.DefaultMaxDepth, cfg.Codec.MaxDepth)
	require.Equal(t, 4, cfg.Codec.Indent)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`log_level = "loud"`,
		`log_format = "xml"`,
		`output_format = "csv"`,
		`float_bits = 16`,
		`precision = 99`,
		"[codec]\nindent = 12",
		`unknown = 1`,
	} {
		_, err := config.Load(writeConfig(t, body))
		require.ErrorIs(t, err, config.ErrInvalid, body)
	}

	_, err := config.Load(writeConfig(t, `float_bits = "x"`))
	require.Error(t, err)
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, `output_format = "json"`)
	t.Setenv(config.EnvVar, path)
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, "json", cfg.OutputFormat)

	t.Setenv(config.EnvVar, filepath.Join(t.TempDir(), "none.toml"))
	_, err = config.LoadFromEnv()
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	var buf bytes.Buffer
	log := cfg.Logger(&buf, false)
	log.Debug("hidden")
	log.Info("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	cfg.Logger(&buf, true).Debug("verbose")
	require.Contains(t, buf.String(), "verbose")

	buf.Reset()
	cfg.LogFormat = "json"
	cfg.Logger(&buf, false).Info("structured")
	require.Contains(t, buf.String(), `"msg":"structured"`)

	require.Len(t, cfg.CodecOptions(slog.Default()), 3)
}
