// SPDX-License-Identifier: MIT
package tb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tbrpa/matrix"
)

var (
	// ErrMissingHopping indicates an off-diagonal orbital pair with no hopping
	// in either direction.
	ErrMissingHopping = errors.New("tb: missing hopping")

	// ErrNoOrbitals indicates a model without orbitals.
	ErrNoOrbitals = errors.New("tb: model has no orbitals")

	// ErrNoLattice indicates a model without a lattice.
	ErrNoLattice = errors.New("tb: model has no lattice")

	// ErrBadHopping indicates an orbital index out of range or a non-integral R.
	ErrBadHopping = errors.New("tb: invalid hopping")

	// ErrBadSymmetry indicates an orbital permutation whose length does not
	// match the orbital count.
	ErrBadSymmetry = errors.New("tb: symmetry does not fit the orbitals")

	// ErrNoMesh indicates an operation that needs PrepareMesh first.
	ErrNoMesh = errors.New("tb: mesh not prepared")

	// ErrNotHermitian is matrix.ErrNotHermitian, re-exported for callers of
	// Hamiltonian.
	ErrNotHermitian = matrix.ErrNotHermitian
)

func tbErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
