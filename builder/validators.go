// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce parameter contracts
// in the dataset builders.
//
// Each function returns an error wrapped via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrBadSize" otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrOptionViolation,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateSigma enforces a finite, non-negative noise sigma.
func validateSigma(method string, sigma float64) error {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return builderErrorf(method, ErrOptionViolation, "noise sigma must be finite and ≥ 0, got %f", sigma)
	}

	return nil
}
