// SPDX-License-Identifier: MIT

// Package kmesh generates and indexes momentum meshes in reduced coordinates.
//
// A KptList is an ordered list of KPoints plus an integer hash index, so that
// k+q lookups on a regular mesh are O(1):
//
//	D_i = grid_i          (periodic mesh)
//	D_i = grid_i − 1      (includeEnds: both 0 and 1 are present)
//	k_i = (n_i + shift_i) / D_i
//	m_i = round(2·D_i·k_i), wrapped into [0, 2·D_i) for periodic meshes
//	key = m₀ + m₁·1000 + m₂·1000000
//
// The factor 2 lets half-shifted meshes hash to integers. Momenta whose 2·D·k
// is not within 1e-6 of an integer are off-mesh and never found. The key
// layout limits each axis to 500 points (ErrMeshTooLarge).
//
// CreateIrreducibleMesh folds a full mesh with a point group given in the
// reduced reciprocal basis; FillWavefunctions copies eigenvectors back from
// the irreducible wedge, applying the folding operation's orbital permutation.
//
// Paths (NewPath) and planes (GeneratePlane) are plain lists without a hash.
package kmesh
