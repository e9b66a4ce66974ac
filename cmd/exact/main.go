// SPDX-License-Identifier: MIT

// Command exact converts numbers to exact expression trees and evaluates
// documents of scalars, vectors and matrices.
package main

import (
	"os"

	"github.com/katalvlaran/exact/cmd/exact/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
