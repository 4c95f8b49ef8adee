// SPDX-License-Identifier: MIT
package tb

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
)

// Orbital is one basis function of the model.
type Orbital struct {
	Name string

	// Position is the reduced position inside the unit cell (informational).
	Position lattice.Vec3

	// Group tags orbitals that share on-site interactions (usually one atom).
	Group int
}

// Model is a tight-binding model plus the momentum meshes prepared for it.
//
// Model is not safe for concurrent mutation. Workers that need their own
// eigenstates or caches take a Clone.
type Model struct {
	Name     string
	Lattice  *lattice.Lattice
	Orbitals []Orbital
	Hoppings []Hopping

	// Symmetry is the point group in the reduced reciprocal basis; nil means C1.
	Symmetry *lattice.SpaceGroup

	// Mesh and Irreducible are filled by PrepareMesh.
	Mesh        *kmesh.KptList
	Irreducible *kmesh.KptList

	table *HoppingTable
}

// NOrbitals returns the orbital count.
func (m *Model) NOrbitals() int { return len(m.Orbitals) }

// Validate checks the model and builds its hopping table.
// It must be called (directly or through Hamiltonian) after editing Hoppings.
//
// Errors: ErrNoLattice, ErrNoOrbitals, ErrBadSymmetry, ErrBadHopping,
// ErrMissingHopping.
func (m *Model) Validate() error {
	if m.Lattice == nil {
		return tbErrorf("Model.Validate", ErrNoLattice)
	}
	if len(m.Orbitals) == 0 {
		return tbErrorf("Model.Validate", ErrNoOrbitals)
	}
	if m.Symmetry != nil {
		for _, op := range m.Symmetry.Ops {
			if len(op.Perm) != 0 && len(op.Perm) != len(m.Orbitals) {
				return tbErrorf("Model.Validate", fmt.Errorf("%w: operation %q permutes %d orbitals, model has %d",
					ErrBadSymmetry, op.Name, len(op.Perm), len(m.Orbitals)))
			}
		}
	}
	ht, err := NewHoppingTable(len(m.Orbitals), m.Hoppings)
	if err != nil {
		return tbErrorf("Model.Validate", err)
	}
	m.table = ht

	return nil
}

// Group returns the symmetry group, C1 when unset.
func (m *Model) Group() *lattice.SpaceGroup {
	if m.Symmetry == nil {
		return lattice.Trivial()
	}
	return m.Symmetry
}

// Clone deep-copies the model: lattice, orbitals, hoppings, symmetry, meshes
// and their wavefunctions. The clone shares nothing mutable with m.
func (m *Model) Clone() *Model {
	c := &Model{
		Name:     m.Name,
		Lattice:  m.Lattice.Clone(),
		Orbitals: slices.Clone(m.Orbitals),
		Hoppings: slices.Clone(m.Hoppings),
		Symmetry: m.Symmetry.Clone(),
	}
	if m.Mesh != nil {
		c.Mesh = m.Mesh.Clone()
	}
	if m.Irreducible != nil {
		c.Irreducible = m.Irreducible.Clone()
	}
	if m.table != nil {
		c.table = &HoppingTable{n: m.table.n, pairs: make([][]Hopping, len(m.table.pairs))}
		for i, p := range m.table.pairs {
			c.table.pairs[i] = slices.Clone(p)
		}
	}

	return c
}
