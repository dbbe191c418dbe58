// Package ndvisynth generates synthetic, labeled NDVI datasets for
// deforestation-detection experiments: RED and NIR reflectance before and
// after an interval, the derived vegetation index, and a binary
// deforested/intact label.
//
// 🚀 What is ndvisynth?
//
//	A small, deterministic data tool that brings together:
//		• Generation: seeded per-sample reflectance simulation with Gaussian noise
//		• Tabulation: a fixed nine-column schema backed by a dense matrix
//		• Statistics: class balance, NDVI_diff separation, column mean/std
//		• Export: Excel workbook and CSV with identical logical content
//		• CLI: one command with flags or a YAML config file
//
// ✨ Why ndvisynth?
//
//   - Reproducible: equal (n, seed) give bit-for-bit equal tables
//   - Validated: every table can be checked against its NDVI invariants
//   - Round-trip: both file formats read back into the same table
//
// Everything is organized under a few subpackages:
//
//	builder/  - Sample, NDVI and BuildDeforestation with functional options
//	matrix/   - row-major Dense storage, submatrix copies, column statistics
//	dataset/  - schema, Table, validation and Summarize
//	export/   - Sink/Source interfaces with CSV and XLSX implementations
//	cmd/ndvisynth/ - the command-line entry point
//
// Quick example:
//
//	ndvisynth --n 300 --seed 42 --out outputs
//
//	Saved Excel -> outputs/synthetic_deforestation_dataset.xlsx
//	Saved CSV   -> outputs/synthetic_deforestation_dataset.csv
//	Rows: 300 | Columns: 9
//
//	go install github.com/katalvlaran/ndvisynth/cmd/ndvisynth@latest
package ndvisynth
