// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tbrpa/rpa"
)

// ThreadsFile is the default name of the worker-count override file.
const ThreadsFile = "rpa_threads"

// ResolveThreads returns the positive integer stored in the file at path.
// When the file is missing or does not hold a positive integer, it returns
// rpa.DefaultThreads() and writes that value to path.
//
// Errors: read errors other than a missing file, and write errors.
func ResolveThreads(path string) (int, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if n, perr := strconv.Atoi(strings.TrimSpace(string(raw))); perr == nil && n > 0 {
			return n, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return 0, configErrorf("ResolveThreads", err)
	}

	n := rpa.DefaultThreads()
	if err := os.WriteFile(path, []byte(strconv.Itoa(n)+"\n"), 0o644); err != nil {
		return 0, configErrorf("ResolveThreads", err)
	}

	return n, nil
}

// Threads returns engine.threads when positive, else ResolveThreads on
// engine.threads_file.
func (f *File) Threads() (int, error) {
	if f.Engine.Threads > 0 {
		return f.Engine.Threads, nil
	}
	path := f.Engine.ThreadsFile
	if path == "" {
		path = ThreadsFile
	}

	return ResolveThreads(path)
}
