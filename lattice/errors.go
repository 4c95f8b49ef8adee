// SPDX-License-Identifier: MIT
package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularBasis indicates three linearly dependent lattice vectors.
	ErrSingularBasis = errors.New("lattice: singular basis")

	// ErrIncompatibleSymmetry indicates an operation that does not map the
	// lattice onto itself (non-integral in the reduced basis).
	ErrIncompatibleSymmetry = errors.New("lattice: symmetry incompatible with lattice")

	// ErrBadPermutation indicates an orbital permutation that is not a bijection
	// or whose length disagrees with its partner operation.
	ErrBadPermutation = errors.New("lattice: invalid orbital permutation")

	// ErrGroupTooLarge indicates a closure that exceeded MaxGroupOrder elements.
	ErrGroupTooLarge = errors.New("lattice: group closure too large")

	// ErrUnknownGroup indicates a point-group name missing from the table.
	ErrUnknownGroup = errors.New("lattice: unknown point group")

	// ErrBadGroupTable indicates malformed point-group table input.
	ErrBadGroupTable = errors.New("lattice: malformed point-group table")
)

// latticeErrorf wraps err with an operation tag, matrix-package style.
func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
