// SPDX-License-Identifier: MIT

// Package store persists susceptibility results in a
// github.com/cockroachdb/pebble key/value store, so that export and plotting
// tools can read a finished run without recomputing it.
//
// Layout:
//
//	'M' runID                 run metadata (YAML)
//	'R' runID index(uint32)   one rpa.Params record (binary, little endian)
//
// Indices are big endian in the key so that iteration follows the sweep
// order T → μ → q → ω.
package store
