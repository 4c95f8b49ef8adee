// SPDX-License-Identifier: MIT

// Package lattice describes the crystal a tight-binding model lives on: the
// real-space Bravais lattice, its reciprocal basis, and the point-group
// operations that act on momenta and orbitals.
//
// Conventions:
//   - Vec3 and Mat3 are plain value types (arrays), safe to copy.
//   - Lattice.A holds the primitive vectors a₁,a₂,a₃ as rows. The reciprocal
//     rows b_j satisfy a_i·b_j = δ_ij (no 2π factor); phases are written as
//     exp(i·2π·k·R) with k and R in reduced coordinates.
//   - A Symmetry couples a 3×3 rotation R with an orbital permutation Perm
//     (empty means identity). Operations from the point-group table are
//     Cartesian; SpaceGroup.InReducedBasis converts them to the reduced
//     reciprocal basis the k-mesh works in.
//
// The point-group table is embedded YAML. It is decoded only when the caller
// asks for it through DefaultPointGroups or LoadPointGroups; nothing happens at
// package init.
package lattice
