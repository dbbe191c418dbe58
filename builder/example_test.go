// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ndvisynth/builder"
)

// ExampleBuildDeforestation shows the size and id contract of the generator.
func ExampleBuildDeforestation() {
	samples, err := builder.BuildDeforestation(300, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	first, last := samples[0], samples[len(samples)-1]
	fmt.Println(len(samples), first.SampleID, last.SampleID)
	fmt.Println(first.NDVIDiff == first.NDVIBefore-first.NDVIAfter)
	// Output:
	// 300 0 299
	// true
}

// ExampleNDVI evaluates the stabilized index on a dense canopy reading.
func ExampleNDVI() {
	fmt.Printf("%.3f\n", builder.NDVI(0.85, 0.30))
	// Output:
	// 0.478
}
