// SPDX-License-Identifier: MIT

// Package dataset holds the tabular form of generated samples: a fixed
// nine-column schema and an immutable Table backed by matrix.Dense.
//
// Columns, in export order:
//
//	sample_id, RED_before, NIR_before, RED_after, NIR_after,
//	NDVI_before, NDVI_after, NDVI_diff, label_deforested
//
// sample_id and label_deforested are integer columns; the rest are float64.
// Tables are built once (FromSamples or FromRows) and never mutated; every
// accessor returns copies.
package dataset
