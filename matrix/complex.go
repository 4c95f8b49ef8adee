// SPDX-License-Identifier: MIT
// Package matrix - complex scalar helpers.
//
// Go's complex128 already carries the arithmetic; this file only adds the
// tolerance-based equality the rest of the module relies on plus a few polar and
// exponential helpers used by the Hamiltonian builder and structure factors.

package matrix

import (
	"math"
	"math/cmplx"
)

// ComplexTol is the absolute tolerance used for complex equality:
// a ≈ b iff |re(a)−re(b)| < ComplexTol and |im(a)−im(b)| < ComplexTol.
const ComplexTol = 1e-10

// ComplexEqual reports whether a and b agree component-wise within ComplexTol.
// NaN never compares equal; infinities are not normalized.
func ComplexEqual(a, b complex128) bool {
	return ComplexEqualTol(a, b, ComplexTol)
}

// ComplexEqualTol is ComplexEqual with an explicit tolerance.
func ComplexEqualTol(a, b complex128, tol float64) bool {
	return math.Abs(real(a)-real(b)) < tol && math.Abs(imag(a)-imag(b)) < tol
}

// Abs2 returns |z|² without the square root.
func Abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Expi returns exp(iθ) = cos θ + i sin θ.
func Expi(theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(c, s)
}

// FromPolar builds r·exp(iθ).
func FromPolar(r, theta float64) complex128 {
	return cmplx.Rect(r, theta)
}

// Phase returns z/|z|, or 1 when z is exactly zero.
func Phase(z complex128) complex128 {
	r := cmplx.Abs(z)
	if r == 0 {
		return 1
	}
	return z / complex(r, 0)
}

// IsNaN reports whether either component of z is NaN.
func IsNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}
