// SPDX-License-Identifier: MIT
package rpa

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
)

// Params is the result for one sweep tuple.
type Params struct {
	QIndex            int
	Q                 lattice.Vec3
	Temperature       float64 // Kelvin
	ChemicalPotential float64 // eV
	Frequency         float64 // eV

	// X0 is the bare susceptibility, Xs and Xc the RPA spin and charge
	// susceptibilities; all N²×N² in GetIndex order.
	X0, Xs, Xc *matrix.Dense

	// SpinScale and ChargeScale are the factors applied to S and C before the
	// Dyson solve; 1 without rescaling.
	SpinScale, ChargeScale float64
}

// GetIndex flattens the orbital pair (l1, l2) for n orbitals.
func GetIndex(l1, l2, n int) int { return l1*n + l2 }

// Sweep lists the parameter axes. Tuples are ordered T → μ → q → ω.
type Sweep struct {
	Temperatures       []float64
	ChemicalPotentials []float64
	Q                  *kmesh.KptList
	Frequencies        []float64
}

// Len returns the number of tuples.
func (s Sweep) Len() int {
	if s.Q == nil {
		return 0
	}
	return len(s.Temperatures) * len(s.ChemicalPotentials) * s.Q.Len() * len(s.Frequencies)
}

func (s Sweep) validate() error {
	if s.Len() == 0 {
		return ErrEmptySweep
	}
	return nil
}

// tuples expands the sweep into Params skeletons in canonical order.
func (s Sweep) tuples() []*Params {
	out := make([]*Params, 0, s.Len())
	for _, t := range s.Temperatures {
		for _, mu := range s.ChemicalPotentials {
			for qi, qp := range s.Q.Points {
				for _, w := range s.Frequencies {
					out = append(out, &Params{
						QIndex:            qi,
						Q:                 qp.K,
						Temperature:       t,
						ChemicalPotential: mu,
						Frequency:         w,
					})
				}
			}
		}
	}

	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields [start]; n <= 0 yields nil.
func Linspace[T constraints.Float](start, stop T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []T{start}
	}
	out := make([]T, n)
	step := (stop - start) / T(n-1)
	for i := range out {
		out[i] = start + T(i)*step
	}
	out[n-1] = stop

	return out
}
