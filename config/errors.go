// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
)

// ErrBadConfig indicates a run file that cannot describe a model or sweep.
var ErrBadConfig = errors.New("config: invalid run configuration")

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func badf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
}
