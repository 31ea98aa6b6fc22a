// SPDX-License-Identifier: MIT

// numlab - numerical methods from the command line
package main

import (
	"os"

	"github.com/katalvlaran/numlab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
