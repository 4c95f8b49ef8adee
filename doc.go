// Package tbrpa computes spin and charge susceptibilities of tight-binding
// models in the random-phase approximation.
//
// 🚀 What is tbrpa?
//
//	A small, concurrent engine that brings together:
//		• Linear algebra: complex Dense matrices, Hermitian eigensolver, Gauss–Jordan inverse
//		• Lattices: Bravais lattices, point groups, orbital permutations
//		• Momentum meshes: hashed k grids, symmetry folding, paths and planes
//		• Models: Bloch Hamiltonians, Fermi occupations, band structures
//		• RPA: Lindhard sums, Kanamori interactions, Dyson solve, rescaling
//
// Everything is organized under these subpackages:
//
//	matrix/   complex Dense type, algebra, EigenHermitian, Inverse
//	lattice/  Vec3/Mat3, Lattice, Symmetry, SpaceGroup, tabulated point groups
//	kmesh/    KptList hash, irreducible mesh, paths, planes
//	tb/       Model, Hamiltonian(k), Fermi functions, PrepareMesh
//	rpa/      Engine, Sweep, Params, Interaction, Dyson, metrics
//	logging/  logrus adapter for the engine Logger
//	config/   viper run files and the rpa_threads override
//	store/    pebble result store
//
// The flow of a run:
//
//	run.yaml ─► config ─► tb.Model ─► PrepareMesh ─► rpa.Engine.Run ─► store
//	                                     │                │
//	                                  kmesh IBZ      χ₀ ─► Dyson ─► χs, χc
//
// The tbrpa command (cmd/tbrpa) wires these together:
//
//	go install github.com/katalvlaran/tbrpa/cmd/tbrpa@latest
//	tbrpa run --config run.yaml
package tbrpa
