// SPDX-License-Identifier: MIT

// Package rpa computes bare and RPA-dressed spin and charge susceptibilities
// of a tight-binding model.
//
// For every tuple (T, μ, q, ω) of a Sweep the Engine evaluates the Lindhard sum
//
//	χ₀[(l1,l2),(l3,l4)] = Σ_k w(k) Σ_{n1,n2} (f(e1) − f(e2)) / (e2 − e1 + ω + iη)
//	                      · a^{l4}_{n1}(k) a^{l2}_{n1}(k)* a^{l1}_{n2}(k+q) a^{l3}_{n2}(k+q)*
//
// on the model's full mesh, with flattened indices i = l1·N + l2 (GetIndex).
// In the static limit ω = 0 with degenerate energies the quotient is replaced
// by β·f·(1−f).
//
// The dressed susceptibilities follow from
//
//	Xs = (I − S·χ₀)⁻¹ χ₀      Xc = (I + C·χ₀)⁻¹ χ₀
//
// with interaction matrices S and C built from on-site U, U′, J, J′ and
// off-site V (BuildInteraction). Optional rescaling keeps the largest real
// eigenvalue of χ₀·S and −χ₀·C below one.
//
// Concurrency: tuples are dealt round-robin to a fixed number of workers in an
// errgroup; each worker owns a deep clone of the model and an LRU cache of
// eigenstates at k+q points that fall off the mesh. The first error cancels
// the rest. Rescaling and the Dyson solve run after all workers have joined.
package rpa
