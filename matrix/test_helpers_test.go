// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures (seeded random Hermitian matrices).
//   - Keep assertion boilerplate out of the individual tests.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a Dense from rows or fails the test.
func MustFrom(t testing.TB, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandomHermitian returns a seeded n×n Hermitian matrix with entries in [-1,1].
func RandomHermitian(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, complex(2*rng.Float64()-1, 0)))
		for j := i + 1; j < n; j++ {
			v := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, cmplx.Conj(v)))
		}
	}

	return m
}

// RandomWellConditioned returns a seeded diagonally dominant n×n complex matrix.
func RandomWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			if i == j {
				v += complex(float64(2*n), 0)
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// RequireClose asserts max|a−b| <= tol.
func RequireClose(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	diff, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqualf(t, diff, tol, "max abs diff %g exceeds %g", diff, tol)
}

// RequireEigenPairs asserts A·V ≈ V·diag(Λ), VᴴV ≈ I and ascending Λ.
func RequireEigenPairs(t testing.TB, a *matrix.Dense, res *matrix.EigenResult, tol float64) {
	t.Helper()
	n := a.Rows()
	require.Len(t, res.Values, n)
	for i := 1; i < n; i++ {
		require.LessOrEqual(t, res.Values[i-1], res.Values[i], "eigenvalues must be ascending")
	}

	av, err := matrix.Mul(a, res.Vectors)
	require.NoError(t, err)
	lambda, err := matrix.NewDiagonal(res.Values)
	require.NoError(t, err)
	vl, err := matrix.Mul(res.Vectors, lambda)
	require.NoError(t, err)
	RequireClose(t, av, vl, tol)

	vh, err := matrix.ConjTranspose(res.Vectors)
	require.NoError(t, err)
	vhv, err := matrix.Mul(vh, res.Vectors)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	RequireClose(t, id, vhv, tol)
}
