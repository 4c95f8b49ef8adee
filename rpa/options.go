// SPDX-License-Identifier: MIT
package rpa

import (
	"math"
	"runtime"

	"github.com/katalvlaran/tbrpa/matrix"
)

const (
	// DefaultEta is the broadening η of the Lindhard denominator in eV.
	DefaultEta = 1e-4

	// DefaultRescaleTarget is the largest eigenvalue kept after rescaling.
	DefaultRescaleTarget = 0.99

	// DefaultCacheSize is the per-worker capacity of the k+q eigenstate cache.
	DefaultCacheSize = 4096

	// DegenerateTol is |e2 − e1| below which a static term uses β·f·(1−f).
	DegenerateTol = 1e-9
)

const (
	panicThreadsInvalid = "rpa: WithThreads: n must be > 0"
	panicEtaInvalid     = "rpa: WithEta: eta must be finite and > 0"
	panicTargetInvalid  = "rpa: WithRescale: target must lie in (0, 1)"
	panicCacheInvalid   = "rpa: WithCacheSize: n must be > 0"
)

// Option configures an Engine.
type Option func(*Engine)

// DefaultThreads is runtime.NumCPU()−1, at least 1.
func DefaultThreads() int { return max(1, runtime.NumCPU()-1) }

// WithThreads sets the worker count. Panics if n <= 0.
func WithThreads(n int) Option {
	if n <= 0 {
		panic(panicThreadsInvalid)
	}
	return func(e *Engine) { e.threads = n }
}

// WithLogger sets the logging sink; nil restores the no-op logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l == nil {
			l = NopLogger{}
		}
		e.logger = l
	}
}

// WithEta sets the Lindhard broadening. Panics on non-positive or non-finite η.
func WithEta(eta float64) Option {
	if eta <= 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		panic(panicEtaInvalid)
	}
	return func(e *Engine) { e.eta = eta }
}

// WithRescale enables interaction rescaling to the given target in (0, 1).
func WithRescale(target float64) Option {
	if !(target > 0 && target < 1) {
		panic(panicTargetInvalid)
	}
	return func(e *Engine) { e.rescale, e.target = true, target }
}

// WithCacheSize sets the per-worker k+q cache capacity. Panics if n <= 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic(panicCacheInvalid)
	}
	return func(e *Engine) { e.cacheSize = n }
}

// WithPruning toggles orbital-symmetry pruning of χ₀ blocks (default on).
func WithPruning(on bool) Option {
	return func(e *Engine) { e.prune = on }
}

// WithInteraction sets the Hubbard–Kanamori parameters.
func WithInteraction(in Interaction) Option {
	return func(e *Engine) { e.interaction = in }
}

// WithEigenOptions forwards options to every off-mesh diagonalization.
func WithEigenOptions(opts ...matrix.EigenOption) Option {
	return func(e *Engine) { e.eigenOpts = append(e.eigenOpts, opts...) }
}
