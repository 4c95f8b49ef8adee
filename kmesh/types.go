// SPDX-License-Identifier: MIT
package kmesh

import (
	"slices"

	"github.com/katalvlaran/tbrpa/lattice"
)

// Wavefunction is one Bloch eigenstate at a k-point.
type Wavefunction struct {
	// Energy is the band energy in eV.
	Energy float64

	// Occupation is the Fermi–Dirac occupation f(Energy).
	Occupation float64

	// Coefficients holds the orbital amplitudes a^l, one per orbital.
	Coefficients []complex128
}

// Clone returns a deep copy.
func (w Wavefunction) Clone() Wavefunction {
	w.Coefficients = slices.Clone(w.Coefficients)
	return w
}

// KPoint is a momentum in reduced reciprocal coordinates.
type KPoint struct {
	K      lattice.Vec3
	Weight float64

	// Name labels high-symmetry points on paths; empty elsewhere.
	Name string

	// Wavefunctions holds one entry per band, ascending in energy.
	Wavefunctions []Wavefunction

	// ReducedBy is the operation s with K = s·K_irr; nil when the point is its
	// own irreducible representative.
	ReducedBy *lattice.Symmetry

	// IrreducibleIndex is the index of the representative in the irreducible
	// list, or −1 before folding.
	IrreducibleIndex int
}

// Clone returns a deep copy including wavefunctions.
func (p *KPoint) Clone() *KPoint {
	c := &KPoint{
		K:                p.K,
		Weight:           p.Weight,
		Name:             p.Name,
		IrreducibleIndex: p.IrreducibleIndex,
	}
	if p.ReducedBy != nil {
		c.ReducedBy = p.ReducedBy.Clone()
	}
	if p.Wavefunctions != nil {
		c.Wavefunctions = make([]Wavefunction, len(p.Wavefunctions))
		for i, w := range p.Wavefunctions {
			c.Wavefunctions[i] = w.Clone()
		}
	}

	return c
}

// Energies returns the band energies in band order.
func (p *KPoint) Energies() []float64 {
	out := make([]float64, len(p.Wavefunctions))
	for i, w := range p.Wavefunctions {
		out[i] = w.Energy
	}

	return out
}
