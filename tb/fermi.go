// SPDX-License-Identifier: MIT
package tb

import (
	"math"

	"github.com/katalvlaran/tbrpa/kmesh"
)

// BoltzmannEV is k_B in eV/K.
const BoltzmannEV = 8.617333262e-5

// Beta returns 1/(k_B·T) in 1/eV; T <= 0 gives +Inf.
func Beta(temperature float64) float64 {
	if temperature <= 0 {
		return math.Inf(1)
	}
	return 1 / (BoltzmannEV * temperature)
}

// Fermi returns the Fermi–Dirac occupation 1/(exp(β(e−μ))+1).
// At β = +Inf it is the step function with f(μ) = ½.
func Fermi(e, beta, mu float64) float64 {
	if math.IsInf(beta, 1) {
		switch {
		case e < mu:
			return 1
		case e > mu:
			return 0
		default:
			return 0.5
		}
	}
	x := beta * (e - mu)
	if x > 0 {
		ex := math.Exp(-x)
		return ex / (1 + ex)
	}

	return 1 / (1 + math.Exp(x))
}

// FermiDerivative returns −∂f/∂e = β·f·(1−f). It is 0 at β = +Inf.
func FermiDerivative(e, beta, mu float64) float64 {
	if math.IsInf(beta, 1) {
		return 0
	}
	f := Fermi(e, beta, mu)

	return beta * f * (1 - f)
}

// SetOccupations writes f(E) into every wavefunction of list.
func SetOccupations(list *kmesh.KptList, beta, mu float64) {
	for _, p := range list.Points {
		for b := range p.Wavefunctions {
			p.Wavefunctions[b].Occupation = Fermi(p.Wavefunctions[b].Energy, beta, mu)
		}
	}
}
