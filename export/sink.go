// SPDX-License-Identifier: MIT

// Package export writes dataset tables to tabular files and reads them back.
//
// Two interchangeable formats implement the same pair of interfaces:
//
//	CSV  - comma-delimited text, floats in shortest round-trip form.
//	XLSX - one "Sheet1" worksheet with numeric cells.
//
// Both emit one header row (schema order) followed by one row per sample.
// Writes are not atomic: a failed write may leave a partial file behind.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/ndvisynth/dataset"
)

// BaseName is the file name stem shared by every export.
const BaseName = "synthetic_deforestation_dataset"

// Sink serializes a table in one tabular format.
type Sink interface {
	// Name is a short human-readable format name ("CSV", "Excel").
	Name() string
	// Ext is the file extension including the dot.
	Ext() string
	// Write encodes the header and every row of t to w.
	Write(w io.Writer, t *dataset.Table) error
}

// Source decodes a table previously written by the matching Sink.
type Source interface {
	Read(r io.Reader) (*dataset.Table, error)
}

// WriteFile creates (or truncates) path and writes t through s.
func WriteFile(path string, s Sink, t *dataset.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", s.Name(), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export %s: close %s: %w", s.Name(), path, cerr)
		}
	}()

	if err = s.Write(f, t); err != nil {
		return fmt.Errorf("export %s: write %s: %w", s.Name(), path, err)
	}
	return nil
}

// ExportAll writes t once per sink into dir as <base><ext> and returns the
// written paths in sink order. The first failure aborts the remaining sinks.
func ExportAll(dir, base string, t *dataset.Table, sinks ...Sink) ([]string, error) {
	paths := make([]string, 0, len(sinks))
	for _, s := range sinks {
		p := filepath.Join(dir, base+s.Ext())
		if err := WriteFile(p, s, t); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ReadFile opens path and decodes it with src.
func ReadFile(path string, src Source) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	t, err := src.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// formatCell renders a typed table cell in its default textual form.
func formatCell(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// tableFromRecords parses a header plus string records into a table.
func tableFromRecords(header []string, records [][]string) (*dataset.Table, error) {
	if !dataset.MatchHeader(header) {
		return nil, fmt.Errorf("header %q: %w", header, dataset.ErrSchemaMismatch)
	}
	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) != dataset.NumColumns {
			return nil, fmt.Errorf("record %d has %d fields: %w", i+1, len(rec), dataset.ErrSchemaMismatch)
		}
		row := make([]float64, dataset.NumColumns)
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("record %d column %s: %w", i+1, header[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return dataset.FromRows(rows)
}
