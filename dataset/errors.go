// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Sentinel errors; match with errors.Is.
var (
	// ErrEmptyTable is returned when a table would have no rows.
	ErrEmptyTable = errors.New("dataset: table has no rows")

	// ErrSchemaMismatch is returned when a header or row width differs from the schema.
	ErrSchemaMismatch = errors.New("dataset: schema mismatch")

	// ErrNonIntegral is returned when an integer column holds a fractional value.
	ErrNonIntegral = errors.New("dataset: non-integral value in integer column")

	// ErrNonContiguousIDs is returned when sample_id is not exactly 0..N-1 in order.
	ErrNonContiguousIDs = errors.New("dataset: sample ids are not contiguous")

	// ErrBadLabel is returned when label_deforested is not 0 or 1.
	ErrBadLabel = errors.New("dataset: label must be 0 or 1")

	// ErrNDVIMismatch is returned when NDVI_diff != NDVI_before - NDVI_after.
	ErrNDVIMismatch = errors.New("dataset: NDVI_diff does not match NDVI_before - NDVI_after")

	// ErrNDVIRange is returned when an NDVI value falls outside [-1, 1].
	ErrNDVIRange = errors.New("dataset: NDVI out of [-1, 1]")
)
