// SPDX-License-Identifier: MIT
package rpa

import (
	"fmt"
	"math"
	"math/cmplx"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/tb"
)

// worker owns a model clone and evaluates Lindhard sums on it.
type worker struct {
	id    int
	eng   *Engine
	model *tb.Model
	cache *lru.Cache[lattice.Vec3, []kmesh.Wavefunction]

	beta, mu float64
	occValid bool
}

func newWorker(id int, eng *Engine, model *tb.Model) (*worker, error) {
	cache, err := lru.New[lattice.Vec3, []kmesh.Wavefunction](eng.cacheSize)
	if err != nil {
		return nil, err
	}

	return &worker{id: id, eng: eng, model: model, cache: cache}, nil
}

// occupy refreshes mesh occupations when (β, μ) changed since the last tuple.
func (w *worker) occupy(beta, mu float64) {
	if w.occValid && w.beta == beta && w.mu == mu {
		return
	}
	tb.SetOccupations(w.model.Mesh, beta, mu)
	w.beta, w.mu, w.occValid = beta, mu, true
}

// states returns the eigenstates at k with current occupations: from the mesh
// when k is on it, otherwise from the cache or a fresh diagonalization.
func (w *worker) states(k lattice.Vec3) ([]kmesh.Wavefunction, error) {
	if idx, ok := w.model.Mesh.Lookup(k); ok {
		return w.model.Mesh.Points[idx].Wavefunctions, nil
	}
	wf, hit := w.cache.Get(k)
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
	} else {
		CacheLookups.WithLabelValues("miss").Inc()
		res, err := w.model.Eigen(k, w.eng.eigenOpts...)
		if err != nil {
			return nil, err
		}
		if res.Converged {
			Diagonalizations.WithLabelValues("converged").Inc()
		} else {
			Diagonalizations.WithLabelValues("not_converged").Inc()
			w.eng.logger.Warn("diagonalization did not converge",
				"run_id", w.eng.runID, "worker", w.id, "k", k, "sweeps", res.Sweeps)
		}
		wf = tb.Wavefunctions(res)
		w.cache.Add(k, wf)
	}
	for b := range wf {
		wf[b].Occupation = tb.Fermi(wf[b].Energy, w.beta, w.mu)
	}

	return wf, nil
}

// lindhard evaluates χ₀ for one tuple. little is the little group of q in the
// reduced basis; its permutations drive block pruning.
//
// Implementation:
//   - Stage 1: gather states at k and k+q for every mesh point and the scalar
//     factor w(k)·(f1 − f2)/(e2 − e1 + ω + iη) for every band pair.
//   - Stage 2: visit orbital quadruples in order; compute an unvisited block
//     from the factors, then copy it to every permutation image under little
//     and, when ω = 0, its conjugate to the transposed position.
//
// Complexity: O(Nk·B²·N⁴) without pruning.
func (w *worker) lindhard(p *Params, little *lattice.SpaceGroup) (*matrix.Dense, error) {
	start := time.Now()
	defer func() { TupleDuration.Observe(time.Since(start).Seconds()) }()

	var (
		mesh   = w.model.Mesh
		n      = w.model.NOrbitals()
		n2     = n * n
		nk     = mesh.Len()
		beta   = tb.Beta(p.Temperature)
		mu     = p.ChemicalPotential
		omega  = p.Frequency
		static = omega == 0
		eta    = w.eng.eta
	)
	w.occupy(beta, mu)

	at := make([][]kmesh.Wavefunction, nk)
	atq := make([][]kmesh.Wavefunction, nk)
	for i, pt := range mesh.Points {
		at[i] = pt.Wavefunctions
		s, err := w.states(pt.K.Add(p.Q))
		if err != nil {
			return nil, err
		}
		atq[i] = s
	}
	nb := len(at[0])
	fac := make([]complex128, nk*nb*nb)
	for ik, pt := range mesh.Points {
		for n1, s1 := range at[ik] {
			for n2, s2 := range atq[ik] {
				var v complex128
				de := s2.Energy - s1.Energy
				if static && math.Abs(de) < DegenerateTol {
					v = complex(tb.FermiDerivative(s1.Energy, beta, mu), 0)
				} else {
					v = complex(s1.Occupation-s2.Occupation, 0) / complex(de+omega, eta)
				}
				fac[(ik*nb+n1)*nb+n2] = v * complex(pt.Weight, 0)
			}
		}
	}

	x0, _ := matrix.NewDense(n2, n2)
	done := make([]bool, n2*n2)
	set := func(i, j int, v complex128, source string) {
		if done[i*n2+j] {
			return
		}
		x0.Put(i, j, v)
		done[i*n2+j] = true
		PrunedBlocks.WithLabelValues(source).Inc()
	}
	var l1, l2, l3, l4 int
	for l1 = 0; l1 < n; l1++ {
		for l2 = 0; l2 < n; l2++ {
			for l3 = 0; l3 < n; l3++ {
				for l4 = 0; l4 < n; l4++ {
					i, j := GetIndex(l1, l2, n), GetIndex(l3, l4, n)
					if done[i*n2+j] {
						continue
					}
					v := w.block(at, atq, fac, nb, l1, l2, l3, l4)
					if matrix.IsNaN(v) {
						return nil, rpaErrorf("lindhard", fmt.Errorf("%w: q=%v T=%g mu=%g omega=%g block (%d,%d)",
							ErrNaN, p.Q, p.Temperature, mu, omega, i, j))
					}
					set(i, j, v, "computed")
					if static {
						set(j, i, cmplx.Conj(v), "transposed")
					}
					if !w.eng.prune || little == nil {
						continue
					}
					for _, s := range little.Ops {
						pi := GetIndex(s.Orbital(l1), s.Orbital(l2), n)
						pj := GetIndex(s.Orbital(l3), s.Orbital(l4), n)
						set(pi, pj, v, "symmetry")
						if static {
							set(pj, pi, cmplx.Conj(v), "transposed")
						}
					}
				}
			}
		}
	}

	return x0, nil
}

// block sums one χ₀ element over k and band pairs.
func (w *worker) block(at, atq [][]kmesh.Wavefunction, fac []complex128, nb, l1, l2, l3, l4 int) complex128 {
	var sum complex128
	for ik := range at {
		for n1 := 0; n1 < nb; n1++ {
			a := at[ik][n1].Coefficients
			left := a[l4] * cmplx.Conj(a[l2])
			if left == 0 {
				continue
			}
			row := fac[(ik*nb+n1)*nb : (ik*nb+n1+1)*nb]
			for n2 := 0; n2 < nb; n2++ {
				b := atq[ik][n2].Coefficients
				sum += row[n2] * left * b[l1] * cmplx.Conj(b[l3])
			}
		}
	}

	return sum
}
