// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/ndvisynth/builder"
	"github.com/katalvlaran/ndvisynth/dataset"
	"github.com/katalvlaran/ndvisynth/export"
	"github.com/katalvlaran/ndvisynth/internal/config"
	"github.com/katalvlaran/ndvisynth/internal/logging"
)

// sinks lists the output formats in the order they are written and reported.
var sinks = []export.Sink{export.XLSX{}, export.CSV{}}

// run generates the dataset described by a validated cfg, writes every sink
// into cfg.Out and prints the summary to stdout. Logs go to logw.
func run(stdout, logw io.Writer, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat, logw)
	log := logging.New("ndvisynth")

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	samples, err := builder.BuildDeforestation(cfg.N, cfg.Seed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	tbl, err := dataset.FromSamples(samples)
	if err != nil {
		return fmt.Errorf("tabulate: %w", err)
	}
	log.Debug("dataset generated", slog.Int("rows", tbl.Rows()), slog.Int64("seed", cfg.Seed))

	paths, err := export.ExportAll(cfg.Out, export.BaseName, tbl, sinks...)
	if err != nil {
		return err
	}
	for i, p := range paths {
		fmt.Fprintf(stdout, "Saved %-5s -> %s\n", sinks[i].Name(), p)
	}
	fmt.Fprintf(stdout, "Rows: %d | Columns: %d\n", tbl.Rows(), tbl.Cols())

	s, err := dataset.Summarize(tbl)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	log.Info("class balance",
		slog.Int("rows", s.Rows),
		slog.Int("deforested", s.Deforested),
		slog.Int("intact", s.Intact),
		slog.Float64("deforested_rate", s.DeforestedRate),
		slog.Float64("ndvi_diff_separation", s.Separation()),
	)
	for _, c := range s.Columns {
		log.Debug("column", slog.String("name", c.Name), slog.Float64("mean", c.Mean), slog.Float64("std", c.Std))
	}
	return nil
}
