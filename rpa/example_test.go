// SPDX-License-Identifier: MIT
package rpa_test

import (
	"fmt"

	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/rpa"
)

func ExampleDyson() {
	x0, _ := matrix.NewDenseFrom([][]complex128{{0.5}})
	u, _ := matrix.NewDenseFrom([][]complex128{{1}})
	xs, xc, _ := rpa.Dyson(x0, u, u)
	fmt.Printf("%.3f %.3f\n", real(xs.Get(0, 0)), real(xc.Get(0, 0)))
	// Output: 1.000 0.333
}

func ExampleLinspace() {
	fmt.Println(rpa.Linspace(100.0, 300.0, 3))
	// Output: [100 200 300]
}
