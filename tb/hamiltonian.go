// SPDX-License-Identifier: MIT
package tb

import (
	"math"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
)

// Hamiltonian returns the Bloch Hamiltonian H(k) for reduced k.
//
// Implementation:
//   - Stage 1: build the hopping table on first use (Validate).
//   - Stage 2: H[i,j] = Σ_R t·exp(i·2π·k·R) over the pair's hoppings.
//   - Stage 3: require H ≈ Hᴴ within matrix.ComplexTol.
//
// Errors: Validate errors, ErrNotHermitian.
// Complexity: O(n² + |hoppings|).
func (m *Model) Hamiltonian(k lattice.Vec3) (*matrix.Dense, error) {
	if m.table == nil {
		if err := m.Validate(); err != nil {
			return nil, tbErrorf("Model.Hamiltonian", err)
		}
	}
	n := len(m.Orbitals)
	h, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, tbErrorf("Model.Hamiltonian", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for _, hop := range m.table.Pair(i, j) {
				sum += hop.T * matrix.Expi(2*math.Pi*k.Dot(hop.R))
			}
			h.Put(i, j, sum)
		}
	}
	if err = matrix.ValidateHermitian(h, matrix.ComplexTol); err != nil {
		return nil, tbErrorf("Model.Hamiltonian", err)
	}

	return h, nil
}

// Eigen diagonalizes H(k). A result with Converged=false is returned without
// error; callers decide whether to warn.
func (m *Model) Eigen(k lattice.Vec3, opts ...matrix.EigenOption) (*matrix.EigenResult, error) {
	h, err := m.Hamiltonian(k)
	if err != nil {
		return nil, err
	}
	res, err := matrix.EigenHermitian(h, opts...)
	if err != nil {
		return nil, tbErrorf("Model.Eigen", err)
	}

	return res, nil
}

// Wavefunctions converts an eigen result into per-band wavefunctions
// (occupations left at zero).
func Wavefunctions(res *matrix.EigenResult) []kmesh.Wavefunction {
	out := make([]kmesh.Wavefunction, len(res.Values))
	for b, e := range res.Values {
		col, _ := res.Vectors.Column(b)
		out[b] = kmesh.Wavefunction{Energy: e, Coefficients: col}
	}

	return out
}

// SetWavefunctions diagonalizes H at every point of list and stores the
// eigenstates. It returns how many diagonalizations hit the sweep cap.
func (m *Model) SetWavefunctions(list *kmesh.KptList, opts ...matrix.EigenOption) (notConverged int, err error) {
	for _, p := range list.Points {
		res, err := m.Eigen(p.K, opts...)
		if err != nil {
			return notConverged, tbErrorf("Model.SetWavefunctions", err)
		}
		if !res.Converged {
			notConverged++
		}
		p.Wavefunctions = Wavefunctions(res)
	}

	return notConverged, nil
}

// PrepareMesh generates the full mesh, folds it with the model's symmetry,
// diagonalizes the irreducible points and fills the full mesh from them.
// It returns the number of non-converged diagonalizations.
func (m *Model) PrepareMesh(grid [3]int, shift lattice.Vec3, includeEnds bool, opts ...matrix.EigenOption) (int, error) {
	full, err := kmesh.GenerateMesh(grid, shift, includeEnds)
	if err != nil {
		return 0, tbErrorf("Model.PrepareMesh", err)
	}
	irr, err := full.CreateIrreducibleMesh(m.Group())
	if err != nil {
		return 0, tbErrorf("Model.PrepareMesh", err)
	}
	nc, err := m.SetWavefunctions(irr, opts...)
	if err != nil {
		return nc, err
	}
	if err = full.FillWavefunctions(irr); err != nil {
		return nc, tbErrorf("Model.PrepareMesh", err)
	}
	m.Mesh, m.Irreducible = full, irr

	return nc, nil
}

// Bands returns energies[point][band] along list (typically a NewPath).
func (m *Model) Bands(list *kmesh.KptList) ([][]float64, error) {
	out := make([][]float64, list.Len())
	for i, p := range list.Points {
		res, err := m.Eigen(p.K)
		if err != nil {
			return nil, tbErrorf("Model.Bands", err)
		}
		out[i] = res.Values
	}

	return out, nil
}
