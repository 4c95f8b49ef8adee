// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tbrpa/matrix"
)

// TestEigenHermitian_2x2Analytic checks the closed-form roots of λ² − tr·λ + det.
func TestEigenHermitian_2x2Analytic(t *testing.T) {
	cases := []struct {
		name string
		rows [][]complex128
		want []float64
	}{
		// det = 6 − |1+i|² = 4, tr = 5 → {1, 4}.
		{"ComplexOffDiag", [][]complex128{{2, 1 + 1i}, {1 - 1i, 3}}, []float64{1, 4}},
		// |b|² = 1/4 → (5 ∓ √2)/2 ≈ {1.293, 3.707}.
		{"HalfImaginary", [][]complex128{{2, 0.5i}, {-0.5i, 3}}, []float64{(5 - math.Sqrt2) / 2, (5 + math.Sqrt2) / 2}},
		{"AlreadyDiagonal", [][]complex128{{3, 0}, {0, -1}}, []float64{-1, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := MustFrom(t, tc.rows)
			res, err := matrix.EigenHermitian(a)
			require.NoError(t, err)
			assert.True(t, res.Converged)
			require.InDeltaSlice(t, tc.want, res.Values, 1e-12)
			RequireEigenPairs(t, a, res, 1e-12)
		})
	}
}

// TestEigenHermitian_Diagonal verifies that a diagonal input is returned sorted
// with permuted unit vectors.
func TestEigenHermitian_Diagonal(t *testing.T) {
	diag := []float64{4, -2, 7, 0, 1.5, -3, 2, 9}
	a, err := matrix.NewDiagonal(diag)
	require.NoError(t, err)

	res, err := matrix.EigenHermitian(a)
	require.NoError(t, err)

	want := append([]float64(nil), diag...)
	sort.Float64s(want)
	require.InDeltaSlice(t, want, res.Values, 1e-14)
	RequireEigenPairs(t, a, res, 1e-12)
}

// TestEigenHermitian_RandomUpTo8 covers the general tridiagonalization path.
func TestEigenHermitian_RandomUpTo8(t *testing.T) {
	for n := 2; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandomHermitian(t, n, int64(100+n))
			res, err := matrix.EigenHermitian(a)
			require.NoError(t, err)
			assert.True(t, res.Converged)
			RequireEigenPairs(t, a, res, 1e-10)

			// Trace is invariant.
			tr, err := matrix.Trace(a)
			require.NoError(t, err)
			var sum float64
			for _, v := range res.Values {
				sum += v
			}
			assert.InDelta(t, real(tr), sum, 1e-10)
		})
	}
}

// TestEigenHermitian_LargerMatrix exercises an orbital²-sized problem.
func TestEigenHermitian_LargerMatrix(t *testing.T) {
	a := RandomHermitian(t, 25, 7)
	res, err := matrix.EigenHermitian(a)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	RequireEigenPairs(t, a, res, 1e-9)
}

// TestEigenHermitian_Degenerate checks repeated eigenvalues keep V unitary.
func TestEigenHermitian_Degenerate(t *testing.T) {
	// J − I for the 4×4 all-ones J has spectrum {−1, −1, −1, 3}.
	a := MustDense(t, 4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				require.NoError(t, a.Set(i, j, 1))
			}
		}
	}
	res, err := matrix.EigenHermitian(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-1, -1, -1, 3}, res.Values, 1e-12)
	RequireEigenPairs(t, a, res, 1e-12)
}

// TestEigenHermitian_MatchesGonumOnRealSymmetric cross-checks the spectrum with
// gonum's symmetric solver.
func TestEigenHermitian_MatchesGonumOnRealSymmetric(t *testing.T) {
	const n = 7
	rng := rand.New(rand.NewSource(42))
	a := MustDense(t, n, n)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := 2*rng.Float64() - 1
			sym.SetSym(i, j, v)
			require.NoError(t, a.Set(i, j, complex(v, 0)))
			require.NoError(t, a.Set(j, i, complex(v, 0)))
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	want := es.Values(nil)
	sort.Float64s(want)

	res, err := matrix.EigenHermitian(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, res.Values, 1e-10)
}

// TestEigenHermitian_Errors covers the structural and numerical failures.
func TestEigenHermitian_Errors(t *testing.T) {
	_, err := matrix.EigenHermitian(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.EigenHermitian(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.EigenHermitian(MustFrom(t, [][]complex128{{1, 2}, {3, 4}}))
	assert.ErrorIs(t, err, matrix.ErrNotHermitian)

	// Imaginary diagonal is not Hermitian either.
	_, err = matrix.EigenHermitian(MustFrom(t, [][]complex128{{1 + 1i, 0}, {0, 1}}))
	assert.ErrorIs(t, err, matrix.ErrNotHermitian)
}

// TestEigenHermitian_OneByOne accepts any scalar and returns its real part.
func TestEigenHermitian_OneByOne(t *testing.T) {
	res, err := matrix.EigenHermitian(MustFrom(t, [][]complex128{{2.5 + 3i}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, res.Values)
	assert.Equal(t, complex128(1), res.Vectors.Get(0, 0))
}

// TestEigenHermitian_SweepCap reports non-convergence instead of hiding it.
func TestEigenHermitian_SweepCap(t *testing.T) {
	a := RandomHermitian(t, 8, 3)

	res, err := matrix.EigenHermitian(a, matrix.WithMaxSweeps(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)

	_, err = matrix.EigenHermitian(a, matrix.WithMaxSweeps(1), matrix.WithStrictConvergence())
	assert.ErrorIs(t, err, matrix.ErrEigenNotConverged)
}

// TestEigenHermitian_SweepCapPerEigenvalue converges with a total sweep count
// above the cap, since the cap restarts for every eigenvalue.
func TestEigenHermitian_SweepCapPerEigenvalue(t *testing.T) {
	const limit = 30
	a := RandomHermitian(t, 48, 11)

	res, err := matrix.EigenHermitian(a, matrix.WithMaxSweeps(limit), matrix.WithStrictConvergence())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Greater(t, res.Sweeps, limit)
}

func TestEigenOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithMaxSweeps(0) })
	assert.Panics(t, func() { matrix.WithOffDiagTolerance(-1) })
	assert.Panics(t, func() { matrix.WithOffDiagTolerance(math.NaN()) })
}

// TestLargestRealEigenvalue compares the fallback against known spectra.
func TestLargestRealEigenvalue(t *testing.T) {
	// Upper triangular: eigenvalues are the diagonal.
	a := MustFrom(t, [][]complex128{
		{1 + 2i, 5, 3i},
		{0, 0.5, 1},
		{0, 0, -4 + 1i},
	})
	got, err := matrix.LargestRealEigenvalue(a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-10)

	// Hermitian input takes the EigenHermitian path.
	h := MustFrom(t, [][]complex128{{2, 1 + 1i}, {1 - 1i, 3}})
	got, err = matrix.LargestRealEigenvalue(h)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-12)

	_, err = matrix.LargestRealEigenvalue(MustDense(t, 2, 1))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestEigenvalues_ConjugatePairs checks the embedding yields σ(M) ∪ conj(σ(M)).
func TestEigenvalues_ConjugatePairs(t *testing.T) {
	a := MustFrom(t, [][]complex128{{2 + 1i, 1}, {0, -1}})
	vals, err := matrix.Eigenvalues(a)
	require.NoError(t, err)
	require.Len(t, vals, 4)

	want := []complex128{2 + 1i, 2 - 1i, -1, -1}
	for _, w := range want {
		found := false
		for _, v := range vals {
			if matrix.ComplexEqualTol(v, w, 1e-9) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "missing eigenvalue %v in %v", w, vals)
	}
}
