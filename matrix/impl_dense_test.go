// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndvisynth/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies that dimension accessors agree.
func TestRowsColsShape(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
}

// TestSetRejectsNonFinite checks the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 0), "rejected write must not land")
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRowIsACopy(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 99
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cl := m.Clone()
	MustSet(t, cl, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, cl, 0, 0))

	// Numeric policy survives the copy.
	require.ErrorIs(t, cl.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestInduced(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 1, sub.Cols())
	require.Equal(t, 8.0, MustAt(t, sub, 0, 0))
	require.Equal(t, 2.0, MustAt(t, sub, 1, 0))

	empty, err := m.Induced(nil, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 2, empty.Cols())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSet_RejectsNonFinite checks that Set reports the numeric policy with the
// Set context and leaves the stored value untouched.
func TestSet_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 1, 2, []float64{1, 2})
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := m.Set(0, 1, v)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Contains(t, err.Error(), "Dense.Set(0,1)")
		require.Equal(t, 2.0, MustAt(t, m, 0, 1))
	}
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(0))
	require.NoError(t, matrix.ValidateFinite(-1e300))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(1)), matrix.ErrNaNInf)
}
