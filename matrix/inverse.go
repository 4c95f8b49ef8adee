// SPDX-License-Identifier: MIT
// Package matrix - determinant and inverse by row reduction.

package matrix

import (
	"math"
	"math/cmplx"
)

// singularRelTol is the relative pivot threshold: a pivot whose magnitude is not
// above singularRelTol * max|a[i,j]| is treated as zero.
const singularRelTol = 1e-14

// maxAbs returns max |m[i,j]| (0 for the zero matrix).
func maxAbs(m *Dense) float64 {
	var worst float64
	for _, v := range m.data {
		worst = math.Max(worst, cmplx.Abs(v))
	}

	return worst
}

// pivotRow returns the row in [k, n) holding the largest |a[row,k]|.
func pivotRow(a []complex128, n, k int) (int, float64) {
	best, bestAbs := k, cmplx.Abs(a[k*n+k])
	for i := k + 1; i < n; i++ {
		if v := cmplx.Abs(a[i*n+k]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best, bestAbs
}

// swapRows exchanges rows i and j of an n-column row-major buffer.
func swapRows(a []complex128, cols, i, j int) {
	if i == j {
		return
	}
	ri := a[i*cols : (i+1)*cols]
	rj := a[j*cols : (j+1)*cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Determinant returns det(m), computing it by partial-pivot Gaussian
// elimination on a copy and caching the value on m. Any subsequent write to m
// invalidates the cache.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) on a cache miss, O(1) on a hit.
func (m *Dense) Determinant() (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if m.detValid {
		return m.det, nil
	}
	var (
		n   = m.r
		a   = make([]complex128, len(m.data))
		det = complex(1, 0)
	)
	copy(a, m.data)
	for k := 0; k < n; k++ {
		p, pAbs := pivotRow(a, n, k)
		if pAbs == 0 {
			det = 0
			break
		}
		if p != k {
			swapRows(a, n, p, k)
			det = -det
		}
		pivot := a[k*n+k]
		det *= pivot
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}
	m.det, m.detValid = det, true

	return det, nil
}

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting on the
// augmented system [A | I].
//
// Implementation:
//   - Stage 1: validate square; copy A and build I.
//   - Stage 2: for each column k pick the largest pivot, swap rows, normalize the
//     pivot row, eliminate column k from every other row.
//   - Stage 3: the right half now holds A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the best pivot is not above singularRelTol·max|A|.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		n     = m.r
		a     = make([]complex128, len(m.data))
		inv   = make([]complex128, len(m.data))
		scale = maxAbs(m)
		i, j  int
	)
	if scale == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	copy(a, m.data)
	for i = 0; i < n; i++ {
		inv[i*n+i] = 1
	}
	threshold := singularRelTol * scale
	for k := 0; k < n; k++ {
		p, pAbs := pivotRow(a, n, k)
		if pAbs <= threshold {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		swapRows(a, n, p, k)
		swapRows(inv, n, p, k)

		// Normalize the pivot row.
		rp := 1 / a[k*n+k]
		for j = 0; j < n; j++ {
			a[k*n+j] *= rp
			inv[k*n+j] *= rp
		}
		// Eliminate column k everywhere else.
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f := a[i*n+k]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
				inv[i*n+j] -= f * inv[k*n+j]
			}
		}
	}

	return &Dense{r: n, c: n, data: inv}, nil
}
