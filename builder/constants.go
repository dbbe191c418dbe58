// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder
//
// constants.go - simulation parameters of the deforestation model.
//
// The values are fixed model constants; they are reproduced exactly and are
// not tuned. Only NoiseSigma and DeforestRate can be overridden via options.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodDeforestation is the canonical name for BuildDeforestation.
	MethodDeforestation = "BuildDeforestation"
)

//-----------------------------------------------------------------------------
// Sizes
//-----------------------------------------------------------------------------

// MinSamples is the smallest sample count BuildDeforestation accepts.
const MinSamples = 1

//-----------------------------------------------------------------------------
// Spectral model
//-----------------------------------------------------------------------------

const (
	// NDVIEpsilon stabilizes the NDVI denominator (NIR + RED + ε).
	NDVIEpsilon = 1e-6

	// VegMin and VegMax bound the latent vegetation density draw.
	VegMin = 0.3
	VegMax = 0.9

	// REDBase and REDVegGain: RED_before = REDBase + REDVegGain*(1-veg) + noise.
	REDBase    = 0.25
	REDVegGain = 0.25

	// NIRBase and NIRVegGain: NIR_before = NIRBase + NIRVegGain*veg + noise.
	NIRBase    = 0.55
	NIRVegGain = 0.40

	// REDLossShift and NIRLossShift are the after-interval shifts applied to
	// deforested samples (RED rises, NIR drops).
	REDLossShift = 0.20
	NIRLossShift = 0.30

	// DefaultNoiseSigma is the stddev of every Gaussian reflectance perturbation.
	DefaultNoiseSigma = 0.02

	// DefaultDeforestRate is the probability that a sample is labeled deforested.
	DefaultDeforestRate = 0.5
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for probability parameters, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0
