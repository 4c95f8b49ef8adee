// SPDX-License-Identifier: MIT

// Command tbrpa computes RPA spin and charge susceptibilities of tight-binding
// models described by a YAML run file.
//
//	tbrpa run --config run.yaml [--threads N] [--store DIR]
//	tbrpa mesh --config run.yaml
//	tbrpa bands --config run.yaml --path "G:0,0,0;X:0.5,0,0" --points 40
//	tbrpa groups
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
