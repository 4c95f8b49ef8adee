// SPDX-License-Identifier: MIT
package kmesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid indicates a non-positive grid size, a shift other than 0
	// or ½, or includeEnds with fewer than two points on an axis.
	ErrInvalidGrid = errors.New("kmesh: invalid grid")

	// ErrMeshTooLarge indicates more than MaxPerAxis points on an axis.
	ErrMeshTooLarge = errors.New("kmesh: mesh exceeds hash range")

	// ErrDuplicateKey indicates a point whose hash is already present.
	ErrDuplicateKey = errors.New("kmesh: duplicate k-point")

	// ErrOffMesh indicates a momentum that does not lie on the list's mesh.
	ErrOffMesh = errors.New("kmesh: k-point not on mesh")

	// ErrNotIndexed indicates a hash operation on a list without an index.
	ErrNotIndexed = errors.New("kmesh: list has no hash index")

	// ErrNotReduced indicates a list that was never folded.
	ErrNotReduced = errors.New("kmesh: list has not been reduced")

	// ErrMissingWavefunctions indicates an irreducible point without eigenvectors.
	ErrMissingWavefunctions = errors.New("kmesh: irreducible point has no wavefunctions")

	// ErrBadPath indicates fewer than two path nodes or a non-positive segment size.
	ErrBadPath = errors.New("kmesh: invalid path")
)

func kmeshErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
