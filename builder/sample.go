// SPDX-License-Identifier: MIT
// Package: ndvisynth/builder

package builder

// Sample is one simulated location observed before and after an interval.
// Values are plain scalars; a Sample is never mutated once emitted.
type Sample struct {
	SampleID   int     // 0-based, equals the generation index
	REDBefore  float64 // red reflectance, before
	NIRBefore  float64 // near-infrared reflectance, before
	REDAfter   float64 // red reflectance, after
	NIRAfter   float64 // near-infrared reflectance, after
	NDVIBefore float64 // NDVI(NIRBefore, REDBefore)
	NDVIAfter  float64 // NDVI(NIRAfter, REDAfter)
	NDVIDiff   float64 // NDVIBefore - NDVIAfter; positive means vegetation loss
	Deforested bool    // ground-truth label
}

// Label returns the ground-truth class as 0/1.
func (s Sample) Label() int {
	if s.Deforested {
		return 1
	}

	return 0
}

// NDVI returns (nir - red) / (nir + red + NDVIEpsilon).
func NDVI(nir, red float64) float64 {
	return (nir - red) / (nir + red + NDVIEpsilon)
}
