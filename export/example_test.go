// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/ndvisynth/builder"
	"github.com/katalvlaran/ndvisynth/dataset"
	"github.com/katalvlaran/ndvisynth/export"
)

// ExampleCSV writes a small dataset and prints the header line and row count.
func ExampleCSV() {
	samples, _ := builder.BuildDeforestation(5, 42)
	tbl, _ := dataset.FromSamples(samples)

	var buf bytes.Buffer
	if err := (export.CSV{}).Write(&buf, tbl); err != nil {
		fmt.Println(err)
		return
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	fmt.Println(lines[0])
	fmt.Println(len(lines) - 1)
	// Output:
	// sample_id,RED_before,NIR_before,RED_after,NIR_after,NDVI_before,NDVI_after,NDVI_diff,label_deforested
	// 5
}
