// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder
//
// impl_deforestation.go - deterministic before/after reflectance generator.
//
// Purpose (single responsibility):
//   • Emit n independent labeled samples of RED/NIR reflectance before and after
//     an interval, plus the derived NDVI features.
//
// Contract:
//   • BuildDeforestation(n, seed, opts...) returns exactly n samples with
//     SampleID 0..n-1, or an error wrapping ErrBadSize when n < MinSamples.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.
//
// Draw order per sample (fixed; changing it changes every golden value):
//   1. label:      u ~ U[0,1), deforested = u < deforestRate
//   2. vegetation: veg ~ U[VegMin, VegMax)
//   3. noise:      RED_before, NIR_before, RED_after, NIR_after (one N(0,σ) each)

package builder

// -----------------------------------------------------------------------------
// Parameter bundle and resolver (keeps impl decoupled from builderConfig).
// -----------------------------------------------------------------------------

// deforestationParams holds all resolved knobs for the generator.
type deforestationParams struct {
	sigma float64 // Gaussian noise sigma ≥ 0
	rate  float64 // deforestation probability in [0,1]
}

// extractDeforestationParams maps builderConfig → deforestationParams.
func extractDeforestationParams(cfg builderConfig) deforestationParams {
	return deforestationParams{
		sigma: cfg.noiseSigma,
		rate:  cfg.deforestRate,
	}
}

// -----------------------------------------------------------------------------
// Public API
// -----------------------------------------------------------------------------

// BuildDeforestation returns n synthetic samples.
//
// Model (veg is the latent vegetation density):
//
//	RED_before = 0.25 + 0.25*(1-veg) + N(0,σ)
//	NIR_before = 0.55 + 0.40*veg     + N(0,σ)
//	deforested: RED_after = RED_before + 0.20 + N(0,σ); NIR_after = NIR_before - 0.30 + N(0,σ)
//	otherwise:  RED_after = RED_before + N(0,σ);        NIR_after = NIR_before + N(0,σ)
//
// RNG selection: a stream attached through WithSeed/WithRand wins; otherwise a
// local stream is seeded from 'seed'.
//
// Errors:
//   - ErrBadSize when n < MinSamples (checked before any allocation).
//   - ErrOptionViolation when resolved parameters are out of range.
//
// Complexity: O(n) time, O(n) memory.
func BuildDeforestation(n int, seed int64, opts ...BuilderOption) ([]Sample, error) {
	if err := validateMin(MethodDeforestation, n, MinSamples); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	p := extractDeforestationParams(cfg)
	if err := validateSigma(MethodDeforestation, p.sigma); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodDeforestation, p.rate); err != nil {
		return nil, err
	}

	rng := rngFrom(cfg, seed)
	out := make([]Sample, n)

	const vegSpan = VegMax - VegMin

	var (
		deforested           bool
		veg                  float64
		redB, nirB           float64
		redA, nirA           float64
		ndviB, ndviA         float64
		noiseRedA, noiseNirA float64
	)
	for i := 0; i < n; i++ {
		deforested = rng.Float64() < p.rate
		veg = VegMin + vegSpan*rng.Float64()

		redB = REDBase + REDVegGain*(1-veg) + p.sigma*rng.NormFloat64()
		nirB = NIRBase + NIRVegGain*veg + p.sigma*rng.NormFloat64()

		noiseRedA = p.sigma * rng.NormFloat64()
		noiseNirA = p.sigma * rng.NormFloat64()
		if deforested {
			redA = redB + REDLossShift + noiseRedA
			nirA = nirB - NIRLossShift + noiseNirA
		} else {
			redA = redB + noiseRedA
			nirA = nirB + noiseNirA
		}

		ndviB = NDVI(nirB, redB)
		ndviA = NDVI(nirA, redA)

		out[i] = Sample{
			SampleID:   i,
			REDBefore:  redB,
			NIRBefore:  nirB,
			REDAfter:   redA,
			NIRAfter:   nirA,
			NDVIBefore: ndviB,
			NDVIAfter:  ndviA,
			NDVIDiff:   ndviB - ndviA,
			Deforested: deforested,
		}
	}

	return out, nil
}
