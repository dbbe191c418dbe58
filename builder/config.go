// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil   (BuildDeforestation falls back to its seed argument)
//   • noiseSigma   = DefaultNoiseSigma   (0.02)
//   • deforestRate = DefaultDeforestRate (0.5)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by the dataset builders.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "seed a local stream".
	rng *rand.Rand

	noiseSigma   float64 // >=0, stddev of reflectance noise
	deforestRate float64 // in [0,1]
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		noiseSigma:   DefaultNoiseSigma,
		deforestRate: DefaultDeforestRate,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
