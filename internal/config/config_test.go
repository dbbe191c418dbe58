// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndvisynth/internal/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Equal(t, 300, cfg.N)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "outputs", cfg.Out)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want *config.Config
	}{
		{"full.yaml", &config.Config{N: 1000, Seed: 7, Out: "build/data", LogLevel: "debug", LogFormat: "json"}},
		{"partial.yaml", &config.Config{N: 150, Seed: 42, Out: "outputs", LogLevel: "info", LogFormat: "text"}},
		{"empty.yaml", config.Default()},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()
			got, err := config.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Load(%s) (-want +got):\n%s", tc.file, diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noise")

	_, err = config.Load(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DoesNotValidate(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidSampleCount)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"boundary 101", func(c *config.Config) { c.N = 101 }, nil},
		{"boundary 100", func(c *config.Config) { c.N = 100 }, config.ErrInvalidSampleCount},
		{"small", func(c *config.Config) { c.N = 50 }, config.ErrInvalidSampleCount},
		{"negative", func(c *config.Config) { c.N = -1 }, config.ErrInvalidSampleCount},
		{"no out", func(c *config.Config) { c.Out = "" }, config.ErrInvalidOutput},
		{"format", func(c *config.Config) { c.LogFormat = "xml" }, config.ErrInvalidLogFormat},
		{"level", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrInvalidLogLevel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg.LogLevel = name
		got, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
}
