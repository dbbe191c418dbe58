// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/ndvisynth/dataset"
)

// CSV is the comma-delimited text format.
type CSV struct{}

var (
	_ Sink   = CSV{}
	_ Source = CSV{}
)

// Name implements Sink.
func (CSV) Name() string { return "CSV" }

// Ext implements Sink.
func (CSV) Ext() string { return ".csv" }

// Write implements Sink.
func (CSV) Write(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}

	record := make([]string, t.Cols())
	for i := 0; i < t.Rows(); i++ {
		for j := range record {
			v, err := t.Cell(i, j)
			if err != nil {
				return err
			}
			record[j] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read implements Source.
func (CSV) Read(r io.Reader) (*dataset.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header: %w", dataset.ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	t, err := tableFromRecords(header, records)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return t, nil
}
