// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind tabular datasets.
//
// What & Why:
//
//	Dense is a row-major float64 buffer with safe accessors: At/Set return
//	sentinel errors instead of panicking, and Set enforces a finite-only numeric
//	policy by default so NaN/±Inf never enter a dataset silently.
//	Induced materializes row/column subsets (e.g., one class of samples), and the
//	statistics kernels (ColumnMeans, ColumnStds) summarize columns in a fixed
//	i→j traversal, so results are deterministic for equal inputs.
//
// Errors:
//
//	ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf, ErrNilMatrix,
//	ErrDimensionMismatch. Check them with errors.Is.
//
// Complexity:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); Induced O(r'*c');
//	ColumnMeans/ColumnStds O(r*c).
package matrix
