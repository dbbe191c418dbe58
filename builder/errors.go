// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` (see builderErrorf).
//   • Builders MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid dataset size (e.g., n < MinSamples).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates that resolved options are unusable at build
// time (e.g., a probability outside [0,1] that bypassed the WithX constructors).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a sentinel with method context and a formatted detail:
// "<Method>: <detail>: <sentinel>". errors.Is keeps matching the sentinel.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
