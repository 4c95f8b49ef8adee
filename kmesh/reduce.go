// SPDX-License-Identifier: MIT
package kmesh

import (
	"fmt"

	"github.com/katalvlaran/tbrpa/lattice"
)

// CreateIrreducibleMesh folds l with the operations of g (reduced reciprocal
// basis) and returns the irreducible wedge.
//
// Implementation:
//   - For each point p in list order, try every operation s: if s⁻¹·p hashes
//     to a representative already in the wedge, add p's weight to it and
//     record s and the representative's index on p.
//   - Otherwise p becomes a new representative (ReducedBy = nil).
//
// Σ weights is conserved. The receiver's points are annotated in place; call
// Clone first to keep an unannotated copy.
//
// Errors: ErrNotIndexed for paths/planes.
// Complexity: O(N·|G|).
func (l *KptList) CreateIrreducibleMesh(g *lattice.SpaceGroup) (*KptList, error) {
	if l.index == nil {
		return nil, kmeshErrorf("CreateIrreducibleMesh", ErrNotIndexed)
	}
	if g == nil {
		g = lattice.Trivial()
	}
	irr := &KptList{
		grid:        l.grid,
		div:         l.div,
		shift:       l.shift,
		includeEnds: l.includeEnds,
		index:       make(map[int]int),
	}
	for _, p := range l.Points {
		folded := false
		for _, s := range g.Ops {
			inv := s.Inverse()
			if inv == nil {
				continue
			}
			key, ok := irr.Key(inv.Apply(p.K))
			if !ok {
				continue // operation maps p off this mesh
			}
			if j, hit := irr.index[key]; hit {
				irr.Points[j].Weight += p.Weight
				p.ReducedBy = s
				p.IrreducibleIndex = j
				folded = true
				break
			}
		}
		if folded {
			continue
		}
		key, ok := irr.Key(p.K)
		if !ok {
			return nil, kmeshErrorf("CreateIrreducibleMesh", ErrOffMesh)
		}
		j := len(irr.Points)
		irr.index[key] = j
		irr.Points = append(irr.Points, &KPoint{K: p.K, Weight: p.Weight, Name: p.Name, IrreducibleIndex: j})
		p.ReducedBy = nil
		p.IrreducibleIndex = j
	}

	return irr, nil
}

// IrreducibleIndex returns the representative index recorded for point i.
// Errors: ErrNotReduced when the list was never folded.
func (l *KptList) IrreducibleIndex(i int) (int, error) {
	if i < 0 || i >= len(l.Points) {
		return 0, kmeshErrorf("IrreducibleIndex", fmt.Errorf("index %d of %d: %w", i, len(l.Points), ErrOffMesh))
	}
	j := l.Points[i].IrreducibleIndex
	if j < 0 {
		return 0, kmeshErrorf("IrreducibleIndex", ErrNotReduced)
	}

	return j, nil
}

// FillWavefunctions copies eigenstates from the irreducible wedge onto every
// point of l. For a point folded by s the orbital amplitudes are permuted:
// new[π(o)] = old[o] with π = s.Perm. Energies and occupations are copied.
//
// Errors: ErrNotReduced, ErrMissingWavefunctions.
// Complexity: O(N·bands·orbitals).
func (l *KptList) FillWavefunctions(irr *KptList) error {
	for i, p := range l.Points {
		j, err := l.IrreducibleIndex(i)
		if err != nil {
			return kmeshErrorf("FillWavefunctions", err)
		}
		if j >= irr.Len() {
			return kmeshErrorf("FillWavefunctions", ErrNotReduced)
		}
		src := irr.Points[j]
		if src.Wavefunctions == nil {
			return kmeshErrorf("FillWavefunctions",
				fmt.Errorf("representative %d: %w", j, ErrMissingWavefunctions))
		}
		p.Wavefunctions = make([]Wavefunction, len(src.Wavefunctions))
		for b, w := range src.Wavefunctions {
			p.Wavefunctions[b] = permuteWavefunction(w, p.ReducedBy)
		}
	}

	return nil
}

func permuteWavefunction(w Wavefunction, s *lattice.Symmetry) Wavefunction {
	out := Wavefunction{Energy: w.Energy, Occupation: w.Occupation, Coefficients: make([]complex128, len(w.Coefficients))}
	if s == nil || len(s.Perm) == 0 {
		copy(out.Coefficients, w.Coefficients)
		return out
	}
	for o, a := range w.Coefficients {
		out.Coefficients[s.Orbital(o)] = a
	}

	return out
}
