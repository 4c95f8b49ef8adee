// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag);
// tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when row slices handed to a constructor are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions
	// (Add/Sub with different shapes, Mul with a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotHermitian signals that A − Aᴴ is not zero within ComplexTol.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian")

	// ErrSingular is returned when no usable pivot exists during row reduction.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenNotConverged is returned in strict mode when the QL iteration cap
	// is reached before the off-diagonal norm falls below tolerance.
	ErrEigenNotConverged = errors.New("matrix: eigen decomposition did not converge")

	// ErrEigenFailed indicates that the general (non-Hermitian) fallback could not
	// factorize its input.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags used by matrixErrorf.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
	opEigen         = "EigenHermitian"
	opEigenGeneral  = "LargestRealEigenvalue"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
