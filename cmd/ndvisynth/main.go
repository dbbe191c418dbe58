// SPDX-License-Identifier: MIT

// ndvisynth generates a labeled synthetic deforestation dataset and writes it
// as both an Excel workbook and a CSV file.
//
// Usage:
//
//	ndvisynth [--n 300] [--seed 42] [--out outputs] [--config file.yaml]
//	          [--log-level info] [--log-format text|json]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
