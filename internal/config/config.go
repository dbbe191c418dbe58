// SPDX-License-Identifier: MIT

// Package config holds the run settings of the ndvisynth command and loads
// them from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// MinSamples is the exclusive lower bound on N accepted by the command.
const MinSamples = 100

// Defaults applied by Default and kept for keys a config file omits.
const (
	DefaultN         = 300
	DefaultSeed      = 42
	DefaultOut       = "outputs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// ErrInvalidSampleCount is returned when N does not exceed MinSamples.
	ErrInvalidSampleCount = errors.New("config: sample count must be greater than 100")

	// ErrInvalidOutput is returned when the output directory is empty.
	ErrInvalidOutput = errors.New("config: output directory is required")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: log format must be text or json")

	// ErrInvalidLogLevel is returned for an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Config is the complete set of knobs for one generation run.
type Config struct {
	N         int    `yaml:"n"`
	Seed      int64  `yaml:"seed"`
	Out       string `yaml:"out"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text | json
}

// Default returns the settings used when neither a file nor flags set a value.
func Default() *Config {
	return &Config{
		N:         DefaultN,
		Seed:      DefaultSeed,
		Out:       DefaultOut,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected. The result
// is not validated so that flags can still override file values.
func Load(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file decodes to io.EOF and keeps the defaults.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings before any file is touched.
func (c *Config) Validate() error {
	if c.N <= MinSamples {
		return fmt.Errorf("n=%d: %w", c.N, ErrInvalidSampleCount)
	}
	if c.Out == "" {
		return ErrInvalidOutput
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%q: %w", c.LogFormat, ErrInvalidLogFormat)
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error"; case-insensitive).
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%q: %w", c.LogLevel, ErrInvalidLogLevel)
	}
	return l, nil
}
