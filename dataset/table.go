// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndvisynth/builder"
	"github.com/katalvlaran/ndvisynth/matrix"
)

// Table is an immutable N×NumColumns dataset. The zero value is not usable;
// build one with FromSamples or FromRows.
type Table struct {
	data *matrix.Dense
}

// FromSamples lays samples out in schema order.
// Errors: ErrEmptyTable for no samples; matrix.ErrNaNInf for non-finite values.
func FromSamples(samples []builder.Sample) (*Table, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("FromSamples: %w", ErrEmptyTable)
	}
	m, err := matrix.NewDense(len(samples), NumColumns)
	if err != nil {
		return nil, fmt.Errorf("FromSamples: %w", err)
	}
	for i, s := range samples {
		if err = setRow(m, i, sampleRow(s)); err != nil {
			return nil, fmt.Errorf("FromSamples: sample %d: %w", s.SampleID, err)
		}
	}

	return &Table{data: m}, nil
}

// FromRows builds a table from raw rows in schema order, as read back from an
// export. Integer columns must hold whole numbers that fit in int
// (ErrNonIntegral) and the label must be 0 or 1 (ErrBadLabel), so Cell and
// Samples never wrap or reinterpret a value.
func FromRows(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrEmptyTable)
	}
	for i, r := range rows {
		if len(r) != NumColumns {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(r), NumColumns, ErrSchemaMismatch)
		}
		for j, c := range columns {
			if c.Kind != KindInt {
				continue
			}
			if err := checkIntCell(j, r[j]); err != nil {
				return nil, fmt.Errorf("FromRows: row %d column %s = %v: %w", i, c.Name, r[j], err)
			}
		}
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	return &Table{data: m}, nil
}

// intLow and intHigh bound the float64 values that convert to int without
// wrapping: [intLow, intHigh). Both are exact powers of two.
var (
	intLow  = float64(math.MinInt)
	intHigh = -intLow
)

// checkIntCell enforces the KindInt contract for column j: a whole number
// that fits in int, and 0 or 1 for the label.
func checkIntCell(j int, v float64) error {
	if v != math.Trunc(v) || v < intLow || v >= intHigh {
		return ErrNonIntegral
	}
	if j == ColLabel && v != 0 && v != 1 {
		return ErrBadLabel
	}
	return nil
}

func sampleRow(s builder.Sample) []float64 {
	row := make([]float64, NumColumns)
	row[ColSampleID] = float64(s.SampleID)
	row[ColREDBefore] = s.REDBefore
	row[ColNIRBefore] = s.NIRBefore
	row[ColREDAfter] = s.REDAfter
	row[ColNIRAfter] = s.NIRAfter
	row[ColNDVIBefore] = s.NDVIBefore
	row[ColNDVIAfter] = s.NDVIAfter
	row[ColNDVIDiff] = s.NDVIDiff
	row[ColLabel] = float64(s.Label())
	return row
}

func setRow(m *matrix.Dense, i int, row []float64) error {
	for j, v := range row {
		if err := m.Set(i, j, v); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of data rows (header excluded).
func (t *Table) Rows() int { return t.data.Rows() }

// Cols returns the schema width.
func (t *Table) Cols() int { return t.data.Cols() }

// Header returns the column names in export order.
func (t *Table) Header() []string { return Header() }

// At returns the raw numeric value at (i, j).
func (t *Table) At(i, j int) (float64, error) { return t.data.At(i, j) }

// Row returns a copy of row i in schema order.
func (t *Table) Row(i int) ([]float64, error) { return t.data.Row(i) }

// Cell returns the typed value at (i, j): int for KindInt columns, float64 otherwise.
func (t *Table) Cell(i, j int) (any, error) {
	v, err := t.data.At(i, j)
	if err != nil {
		return nil, err
	}
	if columns[j].Kind == KindInt {
		return int(v), nil
	}
	return v, nil
}

// Samples converts the table back into builder samples.
func (t *Table) Samples() ([]builder.Sample, error) {
	out := make([]builder.Sample, t.Rows())
	for i := range out {
		r, err := t.data.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = builder.Sample{
			SampleID:   int(r[ColSampleID]),
			REDBefore:  r[ColREDBefore],
			NIRBefore:  r[ColNIRBefore],
			REDAfter:   r[ColREDAfter],
			NIRAfter:   r[ColNIRAfter],
			NDVIBefore: r[ColNDVIBefore],
			NDVIAfter:  r[ColNDVIAfter],
			NDVIDiff:   r[ColNDVIDiff],
			Deforested: r[ColLabel] == 1,
		}
	}
	return out, nil
}

// Validate checks the dataset invariants row by row and returns the first
// violation: contiguous ids, binary labels, NDVI range and the exact
// NDVI_diff identity.
func (t *Table) Validate() error {
	for i := 0; i < t.Rows(); i++ {
		r, err := t.data.Row(i)
		if err != nil {
			return err
		}
		if r[ColSampleID] != float64(i) {
			return fmt.Errorf("row %d: sample_id %v: %w", i, r[ColSampleID], ErrNonContiguousIDs)
		}
		if l := r[ColLabel]; l != 0 && l != 1 {
			return fmt.Errorf("row %d: label %v: %w", i, l, ErrBadLabel)
		}
		for _, j := range []int{ColNDVIBefore, ColNDVIAfter} {
			if r[j] < -1 || r[j] > 1 {
				return fmt.Errorf("row %d: %s=%v: %w", i, columns[j].Name, r[j], ErrNDVIRange)
			}
		}
		if r[ColNDVIBefore]-r[ColNDVIAfter] != r[ColNDVIDiff] {
			return fmt.Errorf("row %d: %w", i, ErrNDVIMismatch)
		}
	}
	return nil
}
