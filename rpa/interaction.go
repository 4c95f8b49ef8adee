// SPDX-License-Identifier: MIT
package rpa

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/tb"
)

// Interaction holds the Hubbard–Kanamori parameters in eV.
type Interaction struct {
	U  float64 // intra-orbital
	Up float64 // inter-orbital U′
	J  float64 // Hund's coupling
	Jp float64 // pair hopping J′

	OffSite []OffSite
}

// OffSite is a density-density interaction V between orbitals A and B at
// lattice separations R.
type OffSite struct {
	A, B int
	V    float64
	R    []lattice.Vec3
}

// IsZero reports an interaction without any non-zero term.
func (in Interaction) IsZero() bool {
	if in.U != 0 || in.Up != 0 || in.J != 0 || in.Jp != 0 {
		return false
	}
	for _, o := range in.OffSite {
		if o.V != 0 {
			return false
		}
	}

	return true
}

// BuildInteraction returns the spin (S) and charge (C) interaction matrices
// at q for the given orbitals, N²×N² in GetIndex order.
//
// On-site entries (all four orbitals in one interaction group):
//
//	l1=l2=l3=l4      S = U    C = U
//	l1=l3 ≠ l2=l4    S = U′   C = −U′ + 2J
//	l1=l2 ≠ l3=l4    S = J    C = 2U′ − J
//	l1=l4 ≠ l2=l3    S = J′   C = J′
//
// Each off-site term adds 2·V·Σ_R cos(2π q·R) to C[(a,a),(b,b)] and to
// C[(b,b),(a,a)]. For a = b the entry is added once.
//
// Errors: ErrBadInteraction.
func BuildInteraction(orbitals []tb.Orbital, in Interaction, q lattice.Vec3) (s, c *matrix.Dense, err error) {
	n := len(orbitals)
	if n == 0 {
		return nil, nil, rpaErrorf("BuildInteraction", tb.ErrNoOrbitals)
	}
	n2 := n * n
	s, _ = matrix.NewDense(n2, n2)
	c, _ = matrix.NewDense(n2, n2)

	for l1 := 0; l1 < n; l1++ {
		for l2 := 0; l2 < n; l2++ {
			for l3 := 0; l3 < n; l3++ {
				for l4 := 0; l4 < n; l4++ {
					g := orbitals[l1].Group
					if orbitals[l2].Group != g || orbitals[l3].Group != g || orbitals[l4].Group != g {
						continue
					}
					sv, cv, ok := onSite(in, l1, l2, l3, l4)
					if !ok {
						continue
					}
					i, j := GetIndex(l1, l2, n), GetIndex(l3, l4, n)
					s.AddAt(i, j, complex(sv, 0))
					c.AddAt(i, j, complex(cv, 0))
				}
			}
		}
	}

	for _, o := range in.OffSite {
		if o.A < 0 || o.A >= n || o.B < 0 || o.B >= n {
			return nil, nil, rpaErrorf("BuildInteraction", fmt.Errorf("%w: orbitals %d,%d", ErrBadInteraction, o.A, o.B))
		}
		var sum float64
		for _, r := range o.R {
			if !r.IsIntegral(1e-9) {
				return nil, nil, rpaErrorf("BuildInteraction", fmt.Errorf("%w: R=%v", ErrBadInteraction, r))
			}
			sum += math.Cos(2 * math.Pi * q.Dot(r))
		}
		v := complex(2*o.V*sum, 0)
		aa, bb := GetIndex(o.A, o.A, n), GetIndex(o.B, o.B, n)
		c.AddAt(aa, bb, v)
		if aa != bb {
			c.AddAt(bb, aa, v)
		}
	}

	return s, c, nil
}

// onSite classifies (l1,l2,l3,l4) against the Kanamori patterns.
func onSite(in Interaction, l1, l2, l3, l4 int) (s, c float64, ok bool) {
	switch {
	case l1 == l2 && l2 == l3 && l3 == l4:
		return in.U, in.U, true
	case l1 == l3 && l2 == l4:
		return in.Up, -in.Up + 2*in.J, true
	case l1 == l2 && l3 == l4:
		return in.J, 2*in.Up - in.J, true
	case l1 == l4 && l2 == l3:
		return in.Jp, in.Jp, true
	}

	return 0, 0, false
}
