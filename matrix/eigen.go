// SPDX-License-Identifier: MIT
// Package matrix - dense Hermitian eigensolver.
//
// Pipeline:
//   1. Householder reflections reduce A to tridiagonal T = Qᴴ A Q.
//   2. A diagonal unitary phase matrix makes the sub-diagonal of T real.
//   3. Implicit-shift QL iteration diagonalizes the real tridiagonal matrix,
//      accumulating the (real) Givens rotations into the complex Q.
//   4. Eigenvalues are read back as re(diag(Vᴴ A V)) and sorted ascending.

package matrix

import (
	"math"
	"math/cmplx"
	"sort"
)

// machEps is the float64 unit roundoff used for QL deflation.
const machEps = 2.220446049250313e-16

// EigenResult is the outcome of EigenHermitian.
//
// Values are ascending; column j of Vectors is the unit eigenvector for
// Values[j]. Converged is false when the sweep cap was reached; the values and
// vectors are then a best-effort approximation.
type EigenResult struct {
	Values    []float64
	Vectors   *Dense
	Converged bool
	Sweeps    int // total QL sweeps over all eigenvalues
}

// EigenHermitian diagonalizes a Hermitian matrix.
//
// Implementation:
//   - Stage 1: validate square; 1×1 input is returned as (re a, [1]) without a
//     Hermiticity check; larger input must satisfy A ≈ Aᴴ within ComplexTol.
//   - Stage 2: tridiagonalize a working copy, accumulating Q.
//   - Stage 3: QL iteration (Wilkinson-style shift, WithMaxSweeps per eigenvalue).
//   - Stage 4: Rayleigh-quotient eigenvalues, ascending sort.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
//   - ErrEigenNotConverged only with WithStrictConvergence.
//
// Complexity: O(n³) time, O(n²) space.
func EigenHermitian(a *Dense, opts ...EigenOption) (*EigenResult, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherEigenOptions(opts...)
	n := a.r
	if n == 1 {
		v, _ := NewIdentity(1)
		return &EigenResult{Values: []float64{real(a.data[0])}, Vectors: v, Converged: true}, nil
	}
	if err := ValidateHermitian(a, ComplexTol); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	work := a.Clone()
	q, _ := NewIdentity(n)
	d, e := tridiagonalize(work, q)
	sweeps, capped := tqlImplicit(d, e, q, o.maxSweeps)

	// Off-diagonal residue relative to the spectrum scale.
	var off, scale float64
	for i := 0; i < n-1; i++ {
		off += e[i] * e[i]
	}
	for _, v := range d {
		scale = math.Max(scale, v*v)
	}
	converged := !capped && off < o.offDiag*math.Max(1, scale)

	values, vectors := rayleighSorted(a, q)
	res := &EigenResult{Values: values, Vectors: vectors, Converged: converged, Sweeps: sweeps}
	if !converged && o.strict {
		return res, matrixErrorf(opEigen, ErrEigenNotConverged)
	}

	return res, nil
}

// tridiagonalize reduces the Hermitian matrix w in place to tridiagonal form and
// accumulates the unitary transform into q (q ← q·H₀·H₁·…·D).
// It returns the real diagonal d and the real, non-negative sub-diagonal e
// (e[i] couples i and i+1, e[n−1] = 0).
func tridiagonalize(w, q *Dense) ([]float64, []float64) {
	var (
		n    = w.r
		wd   = w.data
		qd   = q.data
		v    = make([]complex128, n)
		u    = make([]complex128, n)
		i, j int
	)
	for k := 0; k < n-2; k++ {
		// x = w[k+1:, k]; nothing to do when the tail below x[0] already vanishes.
		var tail float64
		for i = k + 2; i < n; i++ {
			tail += Abs2(wd[i*n+k])
		}
		if tail == 0 {
			continue
		}
		alpha := wd[(k+1)*n+k]
		xnorm := math.Sqrt(tail + Abs2(alpha))
		phase := Phase(alpha)

		// Householder vector v = x + phase·‖x‖·e₁, zero outside [k+1, n).
		clear(v)
		for i = k + 1; i < n; i++ {
			v[i] = wd[i*n+k]
		}
		v[k+1] += phase * complex(xnorm, 0)
		var vnorm2 float64
		for i = k + 1; i < n; i++ {
			vnorm2 += Abs2(v[i])
		}
		tau := 2 / vnorm2

		// u = τ·B·v on the trailing block B = w[k+1:, k+1:].
		for i = k + 1; i < n; i++ {
			var s complex128
			for j = k + 1; j < n; j++ {
				s += wd[i*n+j] * v[j]
			}
			u[i] = complex(tau, 0) * s
		}
		// K = (τ/2)·vᴴu is real for Hermitian B; w = u − K·v.
		var vu complex128
		for i = k + 1; i < n; i++ {
			vu += cmplx.Conj(v[i]) * u[i]
		}
		kk := complex(tau/2*real(vu), 0)
		for i = k + 1; i < n; i++ {
			u[i] -= kk * v[i]
		}
		// B ← B − v·uᴴ − u·vᴴ.
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				wd[i*n+j] -= v[i]*cmplx.Conj(u[j]) + u[i]*cmplx.Conj(v[j])
			}
		}
		// Column k collapses onto its first sub-diagonal entry: H·x = −phase·‖x‖·e₁.
		sub := -phase * complex(xnorm, 0)
		wd[(k+1)*n+k] = sub
		wd[k*n+k+1] = cmplx.Conj(sub)
		for i = k + 2; i < n; i++ {
			wd[i*n+k] = 0
			wd[k*n+i] = 0
		}

		// q ← q·H, H = I − τ·v·vᴴ.
		for r := 0; r < n; r++ {
			var s complex128
			for j = k + 1; j < n; j++ {
				s += qd[r*n+j] * v[j]
			}
			s *= complex(tau, 0)
			for j = k + 1; j < n; j++ {
				qd[r*n+j] -= s * cmplx.Conj(v[j])
			}
		}
	}

	d := make([]float64, n)
	e := make([]float64, n)
	for i = 0; i < n; i++ {
		d[i] = real(wd[i*n+i])
	}

	// Phase fix: D = diag(d₀…d_{n−1}), d₀ = 1, d_{i+1} = d_i·e_i/|e_i|, so that
	// Dᴴ·T·D has the real sub-diagonal |e_i|; q ← q·D.
	dph := complex(1, 0)
	for i = 0; i < n-1; i++ {
		ei := wd[(i+1)*n+i]
		mag := cmplx.Abs(ei)
		e[i] = mag
		if mag > 0 {
			dph *= ei / complex(mag, 0)
		}
		for r := 0; r < n; r++ {
			qd[r*n+i+1] *= dph
		}
	}
	w.detValid, q.detValid = false, false

	return d, e
}

// tqlImplicit diagonalizes the symmetric tridiagonal (d, e) by implicit-shift
// QL iteration and applies every rotation to the columns of z.
// maxSweeps bounds the sweeps spent on each l. It returns the total number of
// sweeps and whether any eigenvalue hit the cap.
func tqlImplicit(d, e []float64, z *Dense, maxSweeps int) (int, bool) {
	var (
		n      = len(d)
		zd     = z.data
		sweeps int
		capped bool
	)
	for l := 0; l < n; l++ {
		iter := 0
		for {
			// Look for a negligible off-diagonal element to split the matrix.
			m := l
			for ; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= machEps*dd {
					break
				}
			}
			if m == l {
				break
			}
			if iter == maxSweeps {
				capped = true
				break
			}
			iter++
			sweeps++

			// Shift from the trailing 2×2 block of the active window.
			g := (d[l+1] - d[l]) / (2 * e[l])
			r := math.Hypot(g, 1)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c, p := 1.0, 1.0, 0.0
			underflow := false
			for i := m - 1; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					d[i+1] -= p
					e[m] = 0
					underflow = true
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2*c*b
				p = s * r
				d[i+1] = g + p
				g = c*r - b

				// Rotate columns i and i+1 of z.
				cs, sn := complex(c, 0), complex(s, 0)
				for k := 0; k < n; k++ {
					zi := zd[k*n+i]
					zf := zd[k*n+i+1]
					zd[k*n+i+1] = sn*zi + cs*zf
					zd[k*n+i] = cs*zi - sn*zf
				}
			}
			if underflow {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}

	return sweeps, capped
}

// rayleighSorted returns λ_j = re((Vᴴ A V)_jj) sorted ascending together with
// V's columns permuted to match.
func rayleighSorted(a, v *Dense) ([]float64, *Dense) {
	n := a.r
	av, _ := Mul(a, v)
	lambda := make([]float64, n)
	for j := 0; j < n; j++ {
		var s complex128
		for i := 0; i < n; i++ {
			s += cmplx.Conj(v.data[i*n+j]) * av.data[i*n+j]
		}
		lambda[j] = real(s)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return lambda[order[x]] < lambda[order[y]] })

	values := make([]float64, n)
	vectors := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for dst, src := range order {
		values[dst] = lambda[src]
		for i := 0; i < n; i++ {
			vectors.data[i*n+dst] = v.data[i*n+src]
		}
	}

	return values, vectors
}
