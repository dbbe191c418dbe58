// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builder by mutating a builderConfig instance
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every draw of the builder.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// When set, it takes precedence over the seed argument of the builder.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise sets the Gaussian reflectance noise sigma (>=0).
// Panics if sigma < 0 or not finite. Zero disables noise.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithDeforestRate sets the probability that a sample is deforested.
// Panics if p is outside [0,1].
func WithDeforestRate(p float64) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic("builder: WithDeforestRate(p∉[0,1])")
	}
	return func(c *builderConfig) {
		c.deforestRate = p
	}
}
