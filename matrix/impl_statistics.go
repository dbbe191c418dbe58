// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column summary statistics (mean, sample standard deviation)
//     as deterministic passes over the row-major buffer.
//
// Exposed API:
//   - ColumnMeans(X) -> means            // Σ_i X[i,j] / r
//   - ColumnStds(X)  -> stds             // sqrt(Σ_i (X[i,j]-mean_j)² / (r-1))
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the flat buffer; other Matrix values use At.
//   - Zero-row matrices (0×N) yield zero vectors of length N.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans = "ColumnMeans"
	opColumnStds  = "ColumnStds"
)

// ColumnMeans returns the arithmetic mean of every column.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	sums, err := columnSums(X, nil)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r := X.Rows()
	if r == 0 {
		return sums, nil
	}

	invR := 1.0 / float64(r)
	for j := range sums {
		sums[j] *= invR
	}

	return sums, nil
}

// ColumnStds returns the sample standard deviation (denominator r-1) of every
// column. Columns of a matrix with fewer than two rows have std 0.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c) for the means plus O(r*c) for the squared deviations.
func ColumnStds(X Matrix) ([]float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	r := X.Rows()
	if r < 2 {
		return make([]float64, X.Cols()), nil
	}

	sq, err := columnSums(X, means)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	invDen := 1.0 / float64(r-1)
	for j := range sq {
		sq[j] = math.Sqrt(sq[j] * invDen)
	}

	return sq, nil
}

// columnSums accumulates Σ_i X[i,j] when center is nil, or Σ_i (X[i,j]-center[j])²
// otherwise. Shared by the mean and std kernels to keep one traversal order.
func columnSums(X Matrix, center []float64) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	out := make([]float64, c)

	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if center != nil {
					v -= center[j]
					v *= v
				}
				out[j] += v
			}
		}

		return out, nil
	}

	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			if center != nil {
				v -= center[j]
				v *= v
			}
			out[j] += v
		}
	}

	return out, nil
}
