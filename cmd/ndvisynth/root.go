// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndvisynth/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	n         int
	seed      int64
	out       string
	config    string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var fl rootFlags

	cmd := &cobra.Command{
		Use:   "ndvisynth",
		Short: "Generate a synthetic NDVI deforestation dataset",
		Long: "ndvisynth simulates before/after RED and NIR reflectance for N land samples,\n" +
			"derives NDVI, labels each sample as deforested or intact, and saves the\n" +
			"table as synthetic_deforestation_dataset.xlsx and .csv in the output directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &fl)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := cmd.Flags()
	f.IntVar(&fl.n, "n", config.DefaultN, "number of samples (must be greater than 100)")
	f.Int64Var(&fl.seed, "seed", config.DefaultSeed, "random seed")
	f.StringVar(&fl.out, "out", config.DefaultOut, "output directory")
	f.StringVar(&fl.config, "config", "", "optional YAML config file; explicit flags win")
	f.StringVar(&fl.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	f.StringVar(&fl.logFormat, "log-format", config.DefaultLogFormat, "log format: text or json")

	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly set
// flags, then validates the result.
func resolveConfig(cmd *cobra.Command, fl *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if fl.config != "" {
		loaded, err := config.Load(fl.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("n") {
		cfg.N = fl.n
	}
	if f.Changed("seed") {
		cfg.Seed = fl.seed
	}
	if f.Changed("out") {
		cfg.Out = fl.out
	}
	if f.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = fl.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
