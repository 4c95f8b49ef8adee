// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape, nil and Hermiticity checks.
//  - Return plain sentinels (tagged by validator name) so call sites wrap uniformly.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateHermitian checks m is square and m[i,j] ≈ conj(m[j,i]) within tol,
// diagonal included (imaginary parts must vanish).
// Complexity: O(n²) over the upper triangle.
func ValidateHermitian(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !IsHermitianTol(m, tol) {
		return validatorErrorf("ValidateHermitian", ErrNotHermitian)
	}

	return nil
}

// IsHermitian reports whether m is square and equals its conjugate transpose
// within ComplexTol.
func IsHermitian(m *Dense) bool {
	return m != nil && m.r == m.c && IsHermitianTol(m, ComplexTol)
}

// IsHermitianTol is IsHermitian with an explicit tolerance; m must be square.
func IsHermitianTol(m *Dense, tol float64) bool {
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a := m.data[i*n+j]
			b := m.data[j*n+i]
			if !ComplexEqualTol(a, complex(real(b), -imag(b)), tol) {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m is square and m[i,j] ≈ m[j,i] within ComplexTol.
func IsSymmetric(m *Dense) bool {
	if m == nil || m.r != m.c {
		return false
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !ComplexEqual(m.data[i*n+j], m.data[j*n+i]) {
				return false
			}
		}
	}

	return true
}
