// SPDX-License-Identifier: MIT

// Package matrix provides dense complex linear algebra for tight-binding work.
//
// What it offers:
//
//   - Complex scalar helpers with a fixed absolute tolerance (ComplexTol = 1e-10).
//   - Dense: a row-major complex128 matrix with bounds-checked accessors and a
//     cached determinant that every write invalidates.
//   - Kernels: Add, Sub, Mul, Scale, Transpose, ConjTranspose, Trace.
//   - Determinant and Inverse by partial-pivot row reduction (Gauss–Jordan).
//   - EigenHermitian: Householder tridiagonalization followed by implicit-shift
//     QL iteration, eigenvalues ascending, eigenvectors orthonormal.
//   - LargestRealEigenvalue: fallback for non-Hermitian input through gonum.
//
// Error policy:
//
//	Every user-triggered failure returns a package sentinel (ErrNonSquare,
//	ErrDimensionMismatch, ErrSingular, ErrNotHermitian, ...) wrapped with an
//	operation tag. Match with errors.Is. Panics are reserved for nonsensical
//	option values.
//
// Concurrency:
//
//	Dense is not safe for concurrent mutation. Concurrent reads are fine as
//	long as nobody writes; note that Determinant fills its cache on first use,
//	so call it once before sharing a matrix across goroutines.
package matrix
