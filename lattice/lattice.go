// SPDX-License-Identifier: MIT
package lattice

import "math"

// Lattice is a 3D Bravais lattice with primitive vectors stored as the rows of A.
type Lattice struct {
	A Mat3

	b    Mat3 // reciprocal rows, a_i·b_j = δ_ij
	aT   Mat3 // Aᵀ: reduced → Cartesian positions
	bT   Mat3 // Bᵀ: reduced → Cartesian momenta
	bTi  Mat3 // (Bᵀ)⁻¹ = A: Cartesian → reduced momenta
	vol  float64
	init bool
}

// NewLattice builds a lattice from three primitive vectors.
// Returns ErrSingularBasis when they are linearly dependent.
func NewLattice(a1, a2, a3 Vec3) (*Lattice, error) {
	l := &Lattice{A: Mat3{a1, a2, a3}}
	if err := l.prepare(); err != nil {
		return nil, latticeErrorf("NewLattice", err)
	}

	return l, nil
}

// Cubic returns the simple cubic lattice with lattice constant a.
func Cubic(a float64) *Lattice {
	l, _ := NewLattice(Vec3{a, 0, 0}, Vec3{0, a, 0}, Vec3{0, 0, a})
	return l
}

// Tetragonal returns the simple tetragonal lattice with in-plane constant a and
// height c.
func Tetragonal(a, c float64) *Lattice {
	l, _ := NewLattice(Vec3{a, 0, 0}, Vec3{0, a, 0}, Vec3{0, 0, c})
	return l
}

// Hexagonal returns the hexagonal lattice with a₁ = (a,0,0),
// a₂ = (−a/2, a√3/2, 0) and a₃ = (0,0,c).
func Hexagonal(a, c float64) *Lattice {
	l, _ := NewLattice(Vec3{a, 0, 0}, Vec3{-a / 2, a * math.Sqrt(3) / 2, 0}, Vec3{0, 0, c})
	return l
}

func (l *Lattice) prepare() error {
	inv, err := l.A.Inverse()
	if err != nil {
		return err
	}
	l.b = inv.Transpose()
	l.aT = l.A.Transpose()
	l.bT = inv
	l.bTi = l.A
	l.vol = math.Abs(l.A.Det())
	l.init = true

	return nil
}

// ensure lazily fills derived fields for a Lattice built as a literal.
func (l *Lattice) ensure() {
	if !l.init {
		_ = l.prepare()
	}
}

// Reciprocal returns the reciprocal basis b₁,b₂,b₃ as rows (a_i·b_j = δ_ij).
func (l *Lattice) Reciprocal() Mat3 {
	l.ensure()
	return l.b
}

// Volume returns the unit-cell volume |det A|.
func (l *Lattice) Volume() float64 {
	l.ensure()
	return l.vol
}

// CartesianR converts a reduced lattice vector to Cartesian coordinates.
func (l *Lattice) CartesianR(r Vec3) Vec3 {
	l.ensure()
	return l.aT.MulVec(r)
}

// CartesianK converts a reduced momentum Σ k_j b_j to Cartesian coordinates.
func (l *Lattice) CartesianK(k Vec3) Vec3 {
	l.ensure()
	return l.bT.MulVec(k)
}

// ReducedK converts a Cartesian momentum to reduced coordinates.
func (l *Lattice) ReducedK(kc Vec3) Vec3 {
	l.ensure()
	return l.bTi.MulVec(kc)
}

// Clone returns a copy of l.
func (l *Lattice) Clone() *Lattice {
	if l == nil {
		return nil
	}
	c := *l

	return &c
}
