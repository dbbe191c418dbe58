// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/ndvisynth/matrix"
)

// ColumnStat is the mean and sample standard deviation of one column.
type ColumnStat struct {
	Name string
	Mean float64
	Std  float64
}

// Summary describes class balance and the NDVI_diff signal of a table.
type Summary struct {
	Rows int
	Cols int

	Deforested     int
	Intact         int
	DeforestedRate float64

	// Mean NDVI_diff per class; zero when the class is empty.
	MeanDiffDeforested float64
	MeanDiffIntact     float64

	Columns []ColumnStat
}

// Separation is the gap between the class means of NDVI_diff. A learnable
// dataset has a positive separation.
func (s Summary) Separation() float64 {
	return s.MeanDiffDeforested - s.MeanDiffIntact
}

// Summarize computes per-class and per-column statistics of t.
func Summarize(t *Table) (Summary, error) {
	if t == nil || t.data == nil {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptyTable)
	}

	var s Summary
	s.Rows, s.Cols = t.data.Shape()

	var loss, keep []int
	for i := 0; i < t.Rows(); i++ {
		l, err := t.data.At(i, ColLabel)
		if err != nil {
			return Summary{}, fmt.Errorf("Summarize: %w", err)
		}
		if l == 1 {
			loss = append(loss, i)
		} else {
			keep = append(keep, i)
		}
	}
	s.Deforested, s.Intact = len(loss), len(keep)
	s.DeforestedRate = float64(s.Deforested) / float64(s.Rows)

	var err error
	if s.MeanDiffDeforested, err = classMean(t.data, loss, ColNDVIDiff); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	if s.MeanDiffIntact, err = classMean(t.data, keep, ColNDVIDiff); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	means, err := matrix.ColumnMeans(t.data)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	stds, err := matrix.ColumnStds(t.data)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	s.Columns = make([]ColumnStat, NumColumns)
	for j, c := range columns {
		s.Columns[j] = ColumnStat{Name: c.Name, Mean: means[j], Std: stds[j]}
	}

	return s, nil
}

// classMean averages column col over the given rows (0 for no rows).
func classMean(m *matrix.Dense, rows []int, col int) (float64, error) {
	sub, err := m.Induced(rows, []int{col})
	if err != nil {
		return 0, err
	}
	means, err := matrix.ColumnMeans(sub)
	if err != nil {
		return 0, err
	}
	return means[0], nil
}
