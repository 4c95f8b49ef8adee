// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
)

const (
	// MaxGroupOrder bounds Closure; the largest crystallographic point group
	// has 48 elements, the margin leaves room for orbital permutations.
	MaxGroupOrder = 192

	// SymmetryTol is the entry-wise tolerance for comparing rotations.
	SymmetryTol = 1e-8

	// integralTol decides whether a converted rotation is integral.
	integralTol = 1e-6
)

// SpaceGroup is an ordered set of symmetry operations. Despite the name it only
// carries point operations; translations play no role for momentum folding.
type SpaceGroup struct {
	Name string
	Ops  []*Symmetry
}

// NewSpaceGroup wraps ops without checking closure; see IsClosed.
func NewSpaceGroup(name string, ops []*Symmetry) *SpaceGroup {
	return &SpaceGroup{Name: name, Ops: ops}
}

// Trivial returns the group {E}.
func Trivial() *SpaceGroup {
	return NewSpaceGroup("C1", []*Symmetry{IdentitySymmetry()})
}

// Len returns the group order.
func (g *SpaceGroup) Len() int { return len(g.Ops) }

// Closure generates the smallest group containing generators (plus E).
//
// Implementation:
//   - Stage 1: seed with E and the generators, dropping duplicates.
//   - Stage 2: breadth-first: multiply every known element by every generator
//     and append unseen products until no new element appears.
//
// Errors: ErrBadPermutation (mismatched permutation lengths), ErrGroupTooLarge.
// Complexity: O(|G|²·|gens|) comparisons.
func Closure(name string, generators []*Symmetry) (*SpaceGroup, error) {
	g := &SpaceGroup{Name: name}
	g.Ops = append(g.Ops, IdentitySymmetry())
	for _, s := range generators {
		if g.index(s) < 0 {
			g.Ops = append(g.Ops, s.Clone())
		}
	}
	for i := 0; i < len(g.Ops); i++ {
		for _, s := range generators {
			p, err := s.Compose(g.Ops[i])
			if err != nil {
				return nil, latticeErrorf("Closure", err)
			}
			if g.index(p) >= 0 {
				continue
			}
			if len(g.Ops) == MaxGroupOrder {
				return nil, latticeErrorf("Closure", ErrGroupTooLarge)
			}
			p.Name = fmt.Sprintf("%s%d", name, len(g.Ops))
			g.Ops = append(g.Ops, p)
		}
	}

	return g, nil
}

func (g *SpaceGroup) index(s *Symmetry) int {
	for i, o := range g.Ops {
		if o.SameAs(s, SymmetryTol) {
			return i
		}
	}

	return -1
}

// Contains reports whether s (rotation and permutation) is an element.
func (g *SpaceGroup) Contains(s *Symmetry) bool { return g.index(s) >= 0 }

// IsClosed reports whether every pairwise product is an element.
// Complexity: O(|G|³).
func (g *SpaceGroup) IsClosed() bool {
	for _, a := range g.Ops {
		for _, b := range g.Ops {
			p, err := a.Compose(b)
			if err != nil || g.index(p) < 0 {
				return false
			}
		}
	}

	return true
}

// InReducedBasis converts Cartesian operations into the reduced reciprocal
// basis of lat: R_red = G⁻¹·R·G with G = Bᵀ (columns b_j), so that
// R_red·k acts on reduced momenta. Every converted matrix must be integral.
//
// Errors: ErrIncompatibleSymmetry naming the first offending operation.
func (g *SpaceGroup) InReducedBasis(lat *Lattice) (*SpaceGroup, error) {
	gm := lat.Reciprocal().Transpose()
	gInv, err := gm.Inverse()
	if err != nil {
		return nil, latticeErrorf("InReducedBasis", err)
	}
	out := &SpaceGroup{Name: g.Name, Ops: make([]*Symmetry, len(g.Ops))}
	for i, s := range g.Ops {
		r := gInv.Mul(s.R).Mul(gm)
		if !r.IsIntegral(integralTol) {
			return nil, latticeErrorf("InReducedBasis",
				fmt.Errorf("operation %q: %w", s.Name, ErrIncompatibleSymmetry))
		}
		c := s.Clone()
		c.R = r.Round()
		out.Ops[i] = c
	}

	return out, nil
}

// WithPermutations returns a copy whose i-th operation carries perms[i].
// len(perms) must equal Len(); a nil entry keeps the identity permutation.
func (g *SpaceGroup) WithPermutations(perms [][]int) (*SpaceGroup, error) {
	if len(perms) != len(g.Ops) {
		return nil, latticeErrorf("WithPermutations", ErrBadPermutation)
	}
	out := g.Clone()
	for i, p := range perms {
		if err := validatePerm(p); err != nil {
			return nil, latticeErrorf("WithPermutations", err)
		}
		out.Ops[i].Perm = append([]int(nil), p...)
	}

	return out, nil
}

// LittleGroup returns the operations that leave the reduced momentum q
// invariant modulo a reciprocal lattice vector. The receiver must already be
// in the reduced basis.
func (g *SpaceGroup) LittleGroup(q Vec3) *SpaceGroup {
	out := &SpaceGroup{Name: g.Name + "(q)"}
	for _, s := range g.Ops {
		if s.Apply(q).Sub(q).IsIntegral(integralTol) {
			out.Ops = append(out.Ops, s)
		}
	}

	return out
}

// Clone deep-copies every operation.
func (g *SpaceGroup) Clone() *SpaceGroup {
	if g == nil {
		return nil
	}
	out := &SpaceGroup{Name: g.Name, Ops: make([]*Symmetry, len(g.Ops))}
	for i, s := range g.Ops {
		out.Ops[i] = s.Clone()
	}

	return out
}
