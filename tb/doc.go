// SPDX-License-Identifier: MIT

// Package tb builds Bloch Hamiltonians of tight-binding models and attaches
// eigenstates and occupations to k-point lists.
//
//	H[i,j](k) = Σ_R t(i,j,R) · exp(i·2π·k·R)
//
// with k in reduced reciprocal and R in reduced lattice coordinates. Every
// off-diagonal orbital pair must be supplied in at least one direction; a pair
// given only as (j,i) is completed with t(i,j,−R) = conj(t(j,i,R)). Diagonal
// pairs are taken as given, so an on-site chain with a one-sided hopping is
// rejected as non-Hermitian.
//
// Energies are in eV, temperatures in Kelvin (Beta converts with k_B).
package tb
