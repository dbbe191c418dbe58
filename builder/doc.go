// Package builder synthesizes reproducible spectral datasets for deforestation
// detection experiments. It follows the functional-options pattern: every knob
// flows through BuilderOption into an immutable builderConfig, and every random
// draw comes from one explicitly constructed *rand.Rand.
//
// The package offers the following key components:
//
//   - Sample: one simulated location with RED/NIR reflectance before and after
//     an interval, the derived NDVI pair, their difference and the ground-truth
//     deforestation label.
//   - BuildDeforestation(n, seed, opts...): emits n independent samples with
//     SampleID 0..n-1 in generation order.
//   - NDVI(nir, red): normalized difference vegetation index stabilized by
//     NDVIEpsilon, so the denominator never reaches zero.
//   - Options:
//     - WithSeed / WithRand: attach a shared RNG stream (overrides the seed argument).
//     - WithNoise:           Gaussian reflectance noise sigma (default 0.02).
//     - WithDeforestRate:    probability that a sample is deforested (default 0.5).
//
// Guarantees:
//
//   - Determinism: equal (n, seed, options) produce bit-for-bit equal samples.
//   - No global RNG state is touched; the stream is advanced sequentially in a
//     fixed order (label draw, vegetation draw, then the noise draws).
//   - Invalid sizes return ErrBadSize; option constructors panic on meaningless
//     input; runtime validation never panics.
//
// Example:
//
//	samples, err := builder.BuildDeforestation(300, 42)
//	if err != nil {
//		return err
//	}
//	fmt.Println(samples[0].NDVIDiff)
package builder
