// SPDX-License-Identifier: MIT

// Package logging sets up the diagnostics stream of the ndvisynth command.
// Dataset output goes to files and the summary to stdout; everything logged
// here goes to a separate writer (stderr unless a test supplies a buffer), so
// piping stdout never mixes in log records.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the process-wide slog logger at level. format is the
// log_format config value: "json" emits one JSON object per record, anything
// else the key=value text form. A nil or missing w means os.Stderr.
func Init(level slog.Level, format string, w ...io.Writer) {
	out := io.Writer(os.Stderr)
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(h))
}

// New returns the installed logger tagged with component, the name the
// command logs its generation and class-balance records under.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
