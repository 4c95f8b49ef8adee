// SPDX-License-Identifier: MIT

// Package config loads a susceptibility run description with
// github.com/spf13/viper and turns it into a prepared tb.Model, an rpa.Sweep
// and engine options.
//
// Run files are YAML. Every scalar key can be overridden from the environment
// with the TBRPA_ prefix, dots replaced by underscores (TBRPA_LOG_LEVEL,
// TBRPA_ENGINE_THREADS).
//
// The worker count follows the rpa_threads contract: a plain-text file holding
// one integer; when it is missing or unreadable the count defaults to
// NumCPU−1 (at least 1) and is written back.
package config
