// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a missing run or record.
	ErrNotFound = errors.New("store: not found")

	// ErrCorrupt indicates a record that does not decode.
	ErrCorrupt = errors.New("store: corrupt record")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("store: closed")
)

func storeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
