// SPDX-License-Identifier: MIT
// Package matrix provides element-wise and product kernels on Dense.
// All functions validate inputs up front, never mutate operands and return a
// freshly allocated result.

package matrix

import (
	"math"
	"math/cmplx"
)

// addSub computes out = a + sign*b for sign ∈ {+1, −1}.
//
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: single flat loop over the backing slices.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign complex128, tag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add computes A + B.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes A − B.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs C = A × B with an i→k→j loop order so the inner loop walks
// contiguous rows of B and C.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	var (
		rows, inner, cols = a.r, a.c, b.c
		out               = &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
		i, k, j           int
		aik               complex128
		rowOut, rowB      []complex128
	)
	for i = 0; i < rows; i++ {
		rowOut = out.data[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			if aik == 0 {
				continue // sparse rows are common in interaction matrices
			}
			rowB = b.data[k*cols : (k+1)*cols]
			for j = 0; j < cols; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return out, nil
}

// MulVec computes y = A·x.
func MulVec(a *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if len(x) != a.c {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	y := make([]complex128, a.r)
	for i := 0; i < a.r; i++ {
		var sum complex128
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Scale returns alpha·m.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m, false), nil
}

// ConjTranspose returns the Hermitian adjoint mᴴ.
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	return transpose(m, true), nil
}

func transpose(m *Dense, conj bool) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if conj {
				v = cmplx.Conj(v)
			}
			out.data[j*m.r+i] = v
		}
	}

	return out
}

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| for equally shaped matrices.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, err
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, err
	}
	var worst float64
	for i := range a.data {
		worst = math.Max(worst, cmplx.Abs(a.data[i]-b.data[i]))
	}

	return worst, nil
}

// FrobeniusNorm returns sqrt(Σ |m[i,j]|²).
func FrobeniusNorm(m *Dense) float64 {
	var sum float64
	for _, v := range m.data {
		sum += Abs2(v)
	}

	return math.Sqrt(sum)
}

// HasNaN reports whether any entry has a NaN component.
func HasNaN(m *Dense) bool {
	for _, v := range m.data {
		if IsNaN(v) {
			return true
		}
	}

	return false
}
