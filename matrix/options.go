// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Hermitian eigensolver.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: option constructors panic only on nonsensical values
//     (programmer error); kernels never panic on user data.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxSweeps caps the number of implicit QL sweeps per eigenvalue.
	// The counter restarts for every eigenvalue, so an n×n solve may run up
	// to n·DefaultMaxSweeps sweeps in total.
	DefaultMaxSweeps = 300

	// DefaultOffDiagTolerance bounds the sum of squared off-diagonal entries of
	// the tridiagonal matrix (relative to max(1, max|d|²)) for convergence.
	DefaultOffDiagTolerance = 2e-14
)

const (
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
	panicOffDiagInvalid   = "matrix: WithOffDiagTolerance: tol must be finite and > 0"
)

// EigenOption mutates eigensolver options.
type EigenOption func(*eigenOptions)

type eigenOptions struct {
	maxSweeps int
	offDiag   float64
	strict    bool
}

func defaultEigenOptions() eigenOptions {
	return eigenOptions{maxSweeps: DefaultMaxSweeps, offDiag: DefaultOffDiagTolerance}
}

func gatherEigenOptions(opts ...EigenOption) eigenOptions {
	o := defaultEigenOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxSweeps sets the per-eigenvalue QL sweep cap. EigenResult.Sweeps
// counts all eigenvalues and may exceed n. Panics if n <= 0.
func WithMaxSweeps(n int) EigenOption {
	if n <= 0 {
		panic(panicMaxSweepsInvalid)
	}
	return func(o *eigenOptions) { o.maxSweeps = n }
}

// WithOffDiagTolerance sets the convergence tolerance on the squared
// off-diagonal norm. Panics on non-positive or non-finite values.
func WithOffDiagTolerance(tol float64) EigenOption {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicOffDiagInvalid)
	}
	return func(o *eigenOptions) { o.offDiag = tol }
}

// WithStrictConvergence makes EigenHermitian return ErrEigenNotConverged
// instead of a best-effort result flagged Converged=false.
func WithStrictConvergence() EigenOption {
	return func(o *eigenOptions) { o.strict = true }
}
