// SPDX-License-Identifier: MIT
package tb

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/tbrpa/lattice"
)

// Hopping is one matrix element t(From, To, R) of the real-space Hamiltonian.
type Hopping struct {
	From, To int
	R        lattice.Vec3 // reduced lattice vector, integral
	T        complex128   // amplitude in eV
}

// HoppingTable groups hoppings by orbital pair, with one-sided off-diagonal
// pairs completed by Hermitian conjugation.
type HoppingTable struct {
	n     int
	pairs [][]Hopping // pairs[i*n+j]
}

// NewHoppingTable indexes hops for n orbitals.
//
// Implementation:
//   - Stage 1: validate indices and integrality of R; bucket by (From, To).
//   - Stage 2: for each off-diagonal pair empty in one direction, synthesize
//     t(i,j,−R) = conj(t(j,i,R)); empty in both directions is an error.
//
// Errors: ErrBadHopping, ErrMissingHopping.
// Complexity: O(n² + |hops|).
func NewHoppingTable(n int, hops []Hopping) (*HoppingTable, error) {
	if n <= 0 {
		return nil, tbErrorf("NewHoppingTable", ErrNoOrbitals)
	}
	ht := &HoppingTable{n: n, pairs: make([][]Hopping, n*n)}
	for _, h := range hops {
		if h.From < 0 || h.From >= n || h.To < 0 || h.To >= n || !h.R.IsIntegral(1e-9) {
			return nil, tbErrorf("NewHoppingTable", fmt.Errorf("%w: %d→%d R=%v", ErrBadHopping, h.From, h.To, h.R))
		}
		idx := h.From*n + h.To
		ht.pairs[idx] = append(ht.pairs[idx], h)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ij, ji := ht.pairs[i*n+j], ht.pairs[j*n+i]
			switch {
			case len(ij) == 0 && len(ji) == 0:
				return nil, tbErrorf("NewHoppingTable", fmt.Errorf("%w: orbitals %d and %d", ErrMissingHopping, i, j))
			case len(ij) == 0:
				ht.pairs[i*n+j] = mirror(ji)
			case len(ji) == 0:
				ht.pairs[j*n+i] = mirror(ij)
			}
		}
	}

	return ht, nil
}

func mirror(hops []Hopping) []Hopping {
	out := make([]Hopping, len(hops))
	for k, h := range hops {
		out[k] = Hopping{From: h.To, To: h.From, R: h.R.Neg(), T: cmplx.Conj(h.T)}
	}

	return out
}

// Pair returns the hoppings from orbital i to orbital j.
func (ht *HoppingTable) Pair(i, j int) []Hopping { return ht.pairs[i*ht.n+j] }

// Orbitals returns the orbital count.
func (ht *HoppingTable) Orbitals() int { return ht.n }
