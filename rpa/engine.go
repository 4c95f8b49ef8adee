// SPDX-License-Identifier: MIT
package rpa

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/tb"
)

// Engine runs susceptibility sweeps. An Engine may be reused for several Runs
// but not for concurrent ones.
type Engine struct {
	threads     int
	logger      Logger
	eta         float64
	rescale     bool
	target      float64
	cacheSize   int
	prune       bool
	interaction Interaction
	eigenOpts   []matrix.EigenOption

	runID    uuid.UUID
	progress *xsync.Counter
}

// NewEngine applies opts over the defaults: DefaultThreads workers, no-op
// logger, η = DefaultEta, pruning on, no rescaling, zero interaction.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		threads:   DefaultThreads(),
		logger:    NopLogger{},
		eta:       DefaultEta,
		target:    DefaultRescaleTarget,
		cacheSize: DefaultCacheSize,
		prune:     true,
		progress:  xsync.NewCounter(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}

	return e
}

// Threads returns the configured worker count.
func (e *Engine) Threads() int { return e.threads }

// Progress returns the number of tuples whose χ₀ is complete in the current
// (or last) run. Safe to call from any goroutine.
func (e *Engine) Progress() int64 { return e.progress.Value() }

// RunID returns the identifier of the current (or last) run.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// Run evaluates every tuple of sweep on model and returns them in canonical
// T → μ → q → ω order with X0, Xs and Xc filled.
//
// Implementation:
//   - Stage 1: validate; build S(q), C(q) and the little group of every q.
//   - Stage 2: deal tuples round-robin to workers, each with a model clone;
//     the first error cancels the group.
//   - Stage 3: after the join, optionally rescale S and C, then solve Dyson
//     for every tuple.
//
// model must have been prepared with PrepareMesh; a mesh point without
// wavefunctions fails with tb.ErrNoMesh. Nothing partial is returned on error.
func (e *Engine) Run(ctx context.Context, model *tb.Model, sweep Sweep) ([]*Params, error) {
	if err := sweep.validate(); err != nil {
		return nil, rpaErrorf("Engine.Run", err)
	}
	if model.Mesh == nil || model.Mesh.Len() == 0 {
		return nil, rpaErrorf("Engine.Run", tb.ErrNoMesh)
	}
	for i, pt := range model.Mesh.Points {
		if len(pt.Wavefunctions) == 0 {
			return nil, rpaErrorf("Engine.Run",
				fmt.Errorf("%w: point %d: %w", tb.ErrNoMesh, i, kmesh.ErrMissingWavefunctions))
		}
	}
	if err := model.Validate(); err != nil {
		return nil, rpaErrorf("Engine.Run", err)
	}

	e.runID = uuid.New()
	e.progress.Reset()
	started := time.Now()

	nq := sweep.Q.Len()
	spin := make([]*matrix.Dense, nq)
	charge := make([]*matrix.Dense, nq)
	little := make([]*lattice.SpaceGroup, nq)
	group := model.Group()
	for qi, qp := range sweep.Q.Points {
		s, c, err := BuildInteraction(model.Orbitals, e.interaction, qp.K)
		if err != nil {
			return nil, rpaErrorf("Engine.Run", err)
		}
		spin[qi], charge[qi] = s, c
		little[qi] = group.LittleGroup(qp.K)
	}

	tuples := sweep.tuples()
	threads := min(e.threads, len(tuples))
	e.logger.Info("run started",
		"run_id", e.runID, "tuples", len(tuples), "threads", threads,
		"orbitals", model.NOrbitals(), "kpoints", model.Mesh.Len(), "irreducible", irreducibleLen(model))

	workers := make([]*worker, threads)
	for id := range workers {
		wk, err := newWorker(id, e, model.Clone())
		if err != nil {
			return nil, rpaErrorf("Engine.Run", err)
		}
		workers[id] = wk
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, wk := range workers {
		wk := wk
		g.Go(func() error {
			for i := wk.id; i < len(tuples); i += threads {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := tuples[i]
				x0, err := wk.lindhard(p, little[p.QIndex])
				if err != nil {
					return err
				}
				p.X0 = x0
				TuplesTotal.Inc()
				e.progress.Inc()
				e.logger.Debug("tuple done", "run_id", e.runID, "worker", wk.id, "index", i,
					"q", p.Q, "T", p.Temperature, "mu", p.ChemicalPotential, "omega", p.Frequency)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error("run failed", "run_id", e.runID, "err", err)
		return nil, rpaErrorf("Engine.Run", err)
	}

	fs, fc := 1.0, 1.0
	if e.rescale {
		x0s := make([]*matrix.Dense, len(tuples))
		ss := make([]*matrix.Dense, len(tuples))
		cs := make([]*matrix.Dense, len(tuples))
		for i, p := range tuples {
			x0s[i], ss[i], cs[i] = p.X0, spin[p.QIndex], charge[p.QIndex]
		}
		var err error
		if fs, fc, err = Rescale(x0s, ss, cs, e.target); err != nil {
			return nil, rpaErrorf("Engine.Run", err)
		}
		e.logger.Info("interaction rescaled", "run_id", e.runID, "spin_factor", fs, "charge_factor", fc)
		for qi := range spin {
			spin[qi].ScaleInPlace(complex(fs, 0))
			charge[qi].ScaleInPlace(complex(fc, 0))
		}
	}

	for _, p := range tuples {
		xs, xc, err := Dyson(p.X0, spin[p.QIndex], charge[p.QIndex])
		if err != nil {
			e.logger.Error("dyson failed", "run_id", e.runID, "q", p.Q, "err", err)
			return nil, rpaErrorf("Engine.Run", fmt.Errorf("q index %d: %w", p.QIndex, err))
		}
		p.Xs, p.Xc = xs, xc
		p.SpinScale, p.ChargeScale = fs, fc
	}
	e.logger.Info("run finished", "run_id", e.runID, "elapsed", time.Since(started).String())

	return tuples, nil
}

func irreducibleLen(m *tb.Model) int {
	if m.Irreducible == nil {
		return 0
	}
	return m.Irreducible.Len()
}
