// SPDX-License-Identifier: MIT
package rpa

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tbrpa/matrix"
)

// Dyson dresses x0 with the spin and charge interactions:
//
//	Xs = (I − S·X0)⁻¹·X0,   Xc = (I + C·X0)⁻¹·X0.
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrSingular.
func Dyson(x0, s, c *matrix.Dense) (xs, xc *matrix.Dense, err error) {
	if xs, err = dress(x0, s, -1); err != nil {
		return nil, nil, rpaErrorf("Dyson spin", err)
	}
	if xc, err = dress(x0, c, 1); err != nil {
		return nil, nil, rpaErrorf("Dyson charge", err)
	}

	return xs, xc, nil
}

// dress returns (I + sign·V·X0)⁻¹·X0.
func dress(x0, v *matrix.Dense, sign complex128) (*matrix.Dense, error) {
	vx, err := matrix.Mul(v, x0)
	if err != nil {
		return nil, err
	}
	a, _ := matrix.NewIdentity(x0.Rows())
	vx.ScaleInPlace(sign)
	if a, err = matrix.Add(a, vx); err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(inv, x0)
}

// Instability returns λs = max Re eig(X0·S) and λc = max Re eig(−X0·C).
// The RPA denominators become singular as either approaches one.
func Instability(x0, s, c *matrix.Dense) (ls, lc float64, err error) {
	xs, err := matrix.Mul(x0, s)
	if err != nil {
		return 0, 0, rpaErrorf("Instability", err)
	}
	if ls, err = matrix.LargestRealEigenvalue(xs); err != nil {
		return 0, 0, rpaErrorf("Instability", err)
	}
	xc, err := matrix.Mul(x0, c)
	if err != nil {
		return 0, 0, rpaErrorf("Instability", err)
	}
	xc.ScaleInPlace(-1)
	if lc, err = matrix.LargestRealEigenvalue(xc); err != nil {
		return 0, 0, rpaErrorf("Instability", err)
	}

	return ls, lc, nil
}

// Rescale returns the factors fs, fc to apply to S and C so that the largest
// instability over all tuples is at most target. x0[i] pairs with s[i], c[i].
// A factor is 1 when the corresponding λ is already below one.
func Rescale(x0, s, c []*matrix.Dense, target float64) (fs, fc float64, err error) {
	if len(s) != len(x0) || len(c) != len(x0) {
		return 0, 0, rpaErrorf("Rescale", fmt.Errorf("%d/%d/%d matrices: %w", len(x0), len(s), len(c), matrix.ErrDimensionMismatch))
	}
	maxS, maxC := math.Inf(-1), math.Inf(-1)
	for i := range x0 {
		ls, lc, err := Instability(x0[i], s[i], c[i])
		if err != nil {
			return 0, 0, rpaErrorf("Rescale", err)
		}
		maxS, maxC = math.Max(maxS, ls), math.Max(maxC, lc)
	}
	fs, fc = 1, 1
	if maxS >= 1 {
		fs = target / maxS
	}
	if maxC >= 1 {
		fc = target / maxC
	}

	return fs, fc, nil
}
