// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/ndvisynth/dataset"
)

// SheetName is the single worksheet every XLSX export carries.
const SheetName = "Sheet1"

// XLSX is the spreadsheet format. Cells are typed: integer columns become
// integer cells and measurement columns become numeric cells.
type XLSX struct{}

var (
	_ Sink   = XLSX{}
	_ Source = XLSX{}
)

// Name implements Sink.
func (XLSX) Name() string { return "Excel" }

// Ext implements Sink.
func (XLSX) Ext() string { return ".xlsx" }

// Write implements Sink.
func (XLSX) Write(w io.Writer, t *dataset.Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	header := t.Header()
	cells := make([]interface{}, len(header))
	for j, name := range header {
		cells[j] = excelize.Cell{StyleID: bold, Value: name}
	}
	if err = sw.SetRow("A1", cells); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}

	var ref string
	for i := 0; i < t.Rows(); i++ {
		row := make([]interface{}, t.Cols())
		for j := range row {
			if row[j], err = t.Cell(i, j); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
		}
		// Row 1 holds the header.
		if ref, err = excelize.CoordinatesToCellName(1, i+2); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err = sw.SetRow(ref, row); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return fmt.Errorf("xlsx: flush: %w", err)
	}

	return f.Write(w)
}

// Read implements Source. Only SheetName is consulted.
func (XLSX) Read(r io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx: missing header: %w", dataset.ErrSchemaMismatch)
	}

	t, err := tableFromRecords(rows[0], rows[1:])
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	return t, nil
}
