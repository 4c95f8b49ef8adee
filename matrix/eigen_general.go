// SPDX-License-Identifier: MIT
// Package matrix - fallback eigenvalue path for non-Hermitian input.
//
// A complex n×n matrix M = A + iB is embedded as the real 2n×2n block matrix
// [[A, −B], [B, A]], whose spectrum is σ(M) ∪ conj(σ(M)). Real parts are
// preserved by conjugation, so the largest real part of the embedding equals the
// largest real part of σ(M). The embedding is handed to gonum's LAPACK-backed
// general eigensolver.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the 2n eigenvalues of the real embedding of m, i.e. every
// eigenvalue of m together with its complex conjugate, in no particular order.
// It is the non-Hermitian fallback; Hermitian callers should use EigenHermitian.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O((2n)³).
func Eigenvalues(m *Dense) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenGeneral, err)
	}
	n := m.r
	emb := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.data[i*n+j]
			emb.Set(i, j, real(v))
			emb.Set(i, j+n, -imag(v))
			emb.Set(i+n, j, imag(v))
			emb.Set(i+n, j+n, real(v))
		}
	}
	var eig mat.Eigen
	if ok := eig.Factorize(emb, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigenGeneral, ErrEigenFailed)
	}

	return eig.Values(nil), nil
}

// LargestRealEigenvalue returns max Re(λ) over the eigenvalues of a square,
// not necessarily Hermitian, matrix. Hermitian input takes the EigenHermitian
// path; everything else goes through Eigenvalues.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
func LargestRealEigenvalue(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opEigenGeneral, err)
	}
	if IsHermitian(m) {
		res, err := EigenHermitian(m)
		if err != nil {
			return 0, matrixErrorf(opEigenGeneral, err)
		}
		return res.Values[len(res.Values)-1], nil
	}
	values, err := Eigenvalues(m)
	if err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, v := range values {
		best = math.Max(best, real(v))
	}

	return best, nil
}
