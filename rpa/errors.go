// SPDX-License-Identifier: MIT
package rpa

import (
	"errors"
	"fmt"
)

var (
	// ErrNaN indicates a NaN in a bare susceptibility; the run is aborted.
	ErrNaN = errors.New("rpa: NaN in susceptibility")

	// ErrEmptySweep indicates a sweep with an empty axis.
	ErrEmptySweep = errors.New("rpa: sweep has an empty axis")

	// ErrBadInteraction indicates an off-site term with orbital indices out of
	// range or a non-integral lattice vector.
	ErrBadInteraction = errors.New("rpa: invalid interaction")
)

func rpaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
