// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"slices"
	"sync"
)

// Symmetry is a point-group operation: rotation R acting on momenta and a
// permutation Perm acting on orbital indices (orbital i is carried to Perm[i]).
// An empty Perm is the identity on every orbital.
//
// Orbital mixing (operations that map an orbital onto a linear combination of
// others, e.g. d_xz → d_yz under C4 with a sign) is not represented; only
// pure permutations are.
type Symmetry struct {
	Name string
	R    Mat3
	Perm []int

	invOnce sync.Once
	inv     *Symmetry
}

// NewSymmetry validates perm and returns the operation.
func NewSymmetry(name string, r Mat3, perm []int) (*Symmetry, error) {
	if err := validatePerm(perm); err != nil {
		return nil, latticeErrorf("NewSymmetry", err)
	}

	return &Symmetry{Name: name, R: r, Perm: slices.Clone(perm)}, nil
}

// IdentitySymmetry returns E with an identity permutation.
func IdentitySymmetry() *Symmetry {
	return &Symmetry{Name: "E", R: Identity3()}
}

func validatePerm(perm []int) error {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return ErrBadPermutation
		}
		seen[p] = true
	}

	return nil
}

// Apply returns R·k.
func (s *Symmetry) Apply(k Vec3) Vec3 { return s.R.MulVec(k) }

// Orbital returns the image of orbital i under the permutation.
func (s *Symmetry) Orbital(i int) int {
	if len(s.Perm) == 0 {
		return i
	}
	return s.Perm[i]
}

// Inverse returns the inverse operation, computed once and cached.
// A rotation with a vanishing determinant yields a nil inverse.
func (s *Symmetry) Inverse() *Symmetry {
	s.invOnce.Do(func() {
		rInv, err := s.R.Inverse()
		if err != nil {
			return
		}
		var perm []int
		if len(s.Perm) > 0 {
			perm = make([]int, len(s.Perm))
			for i, p := range s.Perm {
				perm[p] = i
			}
		}
		s.inv = &Symmetry{Name: s.Name + "^-1", R: rInv, Perm: perm}
	})

	return s.inv
}

// Compose returns s∘o: first o, then s.
// Returns ErrBadPermutation when both carry permutations of different lengths.
func (s *Symmetry) Compose(o *Symmetry) (*Symmetry, error) {
	out := &Symmetry{Name: s.Name + "*" + o.Name, R: s.R.Mul(o.R)}
	switch {
	case len(s.Perm) == 0:
		out.Perm = slices.Clone(o.Perm)
	case len(o.Perm) == 0:
		out.Perm = slices.Clone(s.Perm)
	case len(s.Perm) != len(o.Perm):
		return nil, latticeErrorf("Compose", ErrBadPermutation)
	default:
		out.Perm = make([]int, len(s.Perm))
		for i, p := range o.Perm {
			out.Perm[i] = s.Perm[p]
		}
	}

	return out, nil
}

// SameAs reports equal rotations within tol and equal permutations. An empty
// permutation equals the explicit identity of any length.
func (s *Symmetry) SameAs(o *Symmetry, tol float64) bool {
	if !s.R.Equal(o.R, tol) {
		return false
	}
	if len(s.Perm) > 0 && len(o.Perm) > 0 && len(s.Perm) != len(o.Perm) {
		return false
	}
	n := max(len(s.Perm), len(o.Perm))
	for i := 0; i < n; i++ {
		if s.Orbital(i) != o.Orbital(i) {
			return false
		}
	}

	return true
}

// IsIdentity reports R = I and identity permutation.
func (s *Symmetry) IsIdentity(tol float64) bool {
	return s.SameAs(IdentitySymmetry(), tol)
}

// Clone returns a deep copy without the cached inverse.
func (s *Symmetry) Clone() *Symmetry {
	return &Symmetry{Name: s.Name, R: s.R, Perm: slices.Clone(s.Perm)}
}

// String implements fmt.Stringer.
func (s *Symmetry) String() string {
	return fmt.Sprintf("%s%v perm=%v", s.Name, s.R, s.Perm)
}
