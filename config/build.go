// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/rpa"
	"github.com/katalvlaran/tbrpa/tb"
)

func vec3(tag string, xs []float64) (lattice.Vec3, error) {
	var v lattice.Vec3
	switch len(xs) {
	case 0:
		return v, nil
	case 3:
		copy(v[:], xs)
		return v, nil
	}

	return v, badf("%s: want 3 components, got %d", tag, len(xs))
}

func grid3(tag string, xs []int) ([3]int, error) {
	if len(xs) != 3 {
		return [3]int{}, badf("%s: want 3 divisions, got %d", tag, len(xs))
	}

	return [3]int{xs[0], xs[1], xs[2]}, nil
}

func mat3(tag string, rows [][]float64) (lattice.Mat3, error) {
	var m lattice.Mat3
	if len(rows) != 3 {
		return m, badf("%s: want 3 rows, got %d", tag, len(rows))
	}
	for i, r := range rows {
		v, err := vec3(tag, r)
		if err != nil {
			return m, err
		}
		if len(r) == 0 {
			return m, badf("%s: empty row %d", tag, i)
		}
		m[i] = v
	}

	return m, nil
}

// BuildLattice returns the lattice described by s.
func (s LatticeSpec) BuildLattice() (*lattice.Lattice, error) {
	if s.A <= 0 {
		return nil, configErrorf("BuildLattice", badf("lattice constant a=%g", s.A))
	}
	switch strings.ToLower(s.Kind) {
	case "cubic":
		return lattice.Cubic(s.A), nil
	case "tetragonal":
		return lattice.Tetragonal(s.A, s.C), nil
	case "hexagonal":
		return lattice.Hexagonal(s.A, s.C), nil
	case "general":
		m, err := mat3("lattice.vectors", s.Vectors)
		if err != nil {
			return nil, configErrorf("BuildLattice", err)
		}
		return lattice.NewLattice(m[0], m[1], m[2])
	}

	return nil, configErrorf("BuildLattice", badf("unknown lattice kind %q", s.Kind))
}

// BuildGroup returns the Cartesian point group: closed from Generators, taken
// from pg by name, or nil (C1) when neither is set.
func (s SymmetrySpec) BuildGroup(pg *lattice.PointGroups) (*lattice.SpaceGroup, error) {
	if len(s.Generators) > 0 {
		gens := make([]*lattice.Symmetry, 0, len(s.Generators))
		for i, g := range s.Generators {
			r, err := mat3("symmetry.generators.r", g.R)
			if err != nil {
				return nil, configErrorf("BuildGroup", err)
			}
			name := g.Name
			if name == "" {
				name = fmt.Sprintf("g%d", i)
			}
			sym, err := lattice.NewSymmetry(name, r, g.Perm)
			if err != nil {
				return nil, configErrorf("BuildGroup", err)
			}
			gens = append(gens, sym)
		}
		group := s.Group
		if group == "" {
			group = "custom"
		}
		return lattice.Closure(group, gens)
	}
	if s.Group == "" {
		return nil, nil
	}

	return pg.Get(s.Group)
}

// BuildModel builds and validates the tight-binding model and prepares its mesh.
// The symmetry group is converted to the reduced basis of the lattice.
//
// Errors: ErrBadConfig, lattice, tb and kmesh errors.
func (f *File) BuildModel(opts ...matrix.EigenOption) (*tb.Model, error) {
	lat, err := f.Lattice.BuildLattice()
	if err != nil {
		return nil, configErrorf("BuildModel", err)
	}
	m := &tb.Model{Name: f.Name, Lattice: lat}
	for i, o := range f.Orbitals {
		pos, err := vec3("orbitals.position", o.Position)
		if err != nil {
			return nil, configErrorf("BuildModel", err)
		}
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("orb%d", i)
		}
		m.Orbitals = append(m.Orbitals, tb.Orbital{Name: name, Position: pos, Group: o.Group})
	}
	for _, h := range f.Hoppings {
		r, err := vec3("hoppings.r", h.R)
		if err != nil {
			return nil, configErrorf("BuildModel", err)
		}
		m.Hoppings = append(m.Hoppings, tb.Hopping{From: h.From, To: h.To, R: r, T: complex(h.T, h.Ti)})
	}

	pg, err := lattice.DefaultPointGroups()
	if err != nil {
		return nil, configErrorf("BuildModel", err)
	}
	group, err := f.Symmetry.BuildGroup(pg)
	if err != nil {
		return nil, configErrorf("BuildModel", err)
	}
	if group != nil {
		if m.Symmetry, err = group.InReducedBasis(lat); err != nil {
			return nil, configErrorf("BuildModel", err)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, configErrorf("BuildModel", err)
	}

	if len(f.Mesh.Grid) > 0 {
		grid, err := grid3("mesh.grid", f.Mesh.Grid)
		if err != nil {
			return nil, configErrorf("BuildModel", err)
		}
		shift, err := vec3("mesh.shift", f.Mesh.Shift)
		if err != nil {
			return nil, configErrorf("BuildModel", err)
		}
		if _, err := m.PrepareMesh(grid, shift, f.Mesh.IncludeEnds, opts...); err != nil {
			return nil, configErrorf("BuildModel", err)
		}
	}

	return m, nil
}

// Resolve expands the range.
func (r RangeSpec) Resolve() []float64 {
	if len(r.Values) > 0 {
		return append([]float64(nil), r.Values...)
	}

	return rpa.Linspace(r.Start, r.Stop, r.N)
}

// QList returns the momentum transfers: a full QGrid mesh or a QPlane map
// when set, otherwise the listed points with uniform weights.
func (s SweepSpec) QList() (*kmesh.KptList, error) {
	if len(s.QGrid) > 0 && s.QPlane != nil {
		return nil, configErrorf("QList", badf("sweep: q_grid and q_plane are exclusive"))
	}
	if s.QPlane != nil {
		pl, err := s.QPlane.Build()
		if err != nil {
			return nil, configErrorf("QList", err)
		}
		return pl.KptList, nil
	}
	if len(s.QGrid) > 0 {
		grid, err := grid3("sweep.q_grid", s.QGrid)
		if err != nil {
			return nil, configErrorf("QList", err)
		}
		return kmesh.GenerateMesh(grid, lattice.Vec3{}, false)
	}
	l := &kmesh.KptList{}
	for _, q := range s.Q {
		v, err := vec3("sweep.q", q)
		if err != nil {
			return nil, configErrorf("QList", err)
		}
		l.Points = append(l.Points, &kmesh.KPoint{K: v, IrreducibleIndex: -1})
	}
	for _, p := range l.Points {
		p.Weight = 1 / float64(len(l.Points))
	}

	return l, nil
}

// Build generates the plane. u and v are required.
func (p *PlaneSpec) Build() (*kmesh.KptPlane, error) {
	origin, err := vec3("sweep.q_plane.origin", p.Origin)
	if err != nil {
		return nil, err
	}
	if len(p.U) == 0 || len(p.V) == 0 {
		return nil, badf("sweep.q_plane: u and v are required")
	}
	u, err := vec3("sweep.q_plane.u", p.U)
	if err != nil {
		return nil, err
	}
	v, err := vec3("sweep.q_plane.v", p.V)
	if err != nil {
		return nil, err
	}

	return kmesh.GeneratePlane(origin, u, v, p.N1, p.N2)
}

// BuildSweep resolves every axis.
func (f *File) BuildSweep() (rpa.Sweep, error) {
	q, err := f.Sweep.QList()
	if err != nil {
		return rpa.Sweep{}, configErrorf("BuildSweep", err)
	}
	s := rpa.Sweep{
		Temperatures:       f.Sweep.Temperatures.Resolve(),
		ChemicalPotentials: f.Sweep.ChemicalPotentials.Resolve(),
		Q:                  q,
		Frequencies:        f.Sweep.Frequencies.Resolve(),
	}
	if s.Len() == 0 {
		return rpa.Sweep{}, configErrorf("BuildSweep", badf("%v", rpa.ErrEmptySweep))
	}

	return s, nil
}

// BuildInteraction converts the interaction section.
func (s InteractionSpec) BuildInteraction() (rpa.Interaction, error) {
	in := rpa.Interaction{U: s.U, Up: s.Up, J: s.J, Jp: s.Jp}
	for _, o := range s.OffSite {
		off := rpa.OffSite{A: o.A, B: o.B, V: o.V}
		for _, r := range o.R {
			v, err := vec3("interaction.off_site.r", r)
			if err != nil {
				return rpa.Interaction{}, configErrorf("BuildInteraction", err)
			}
			off.R = append(off.R, v)
		}
		in.OffSite = append(in.OffSite, off)
	}

	return in, nil
}

// EigenOptions returns solver options from the engine section.
func (e EngineSpec) EigenOptions() []matrix.EigenOption {
	if e.MaxSweeps > 0 {
		return []matrix.EigenOption{matrix.WithMaxSweeps(e.MaxSweeps)}
	}

	return nil
}

// Options returns engine options for threads workers. Invalid values are
// reported as ErrBadConfig instead of the option panics.
func (f *File) Options(threads int, logger rpa.Logger) ([]rpa.Option, error) {
	e := f.Engine
	switch {
	case threads < 1:
		return nil, configErrorf("Options", badf("threads=%d", threads))
	case !(e.Eta > 0) || math.IsInf(e.Eta, 1):
		return nil, configErrorf("Options", badf("engine.eta=%g", e.Eta))
	case e.Rescale < 0 || e.Rescale >= 1:
		return nil, configErrorf("Options", badf("engine.rescale=%g", e.Rescale))
	case e.CacheSize < 1:
		return nil, configErrorf("Options", badf("engine.cache_size=%d", e.CacheSize))
	}
	in, err := f.Interaction.BuildInteraction()
	if err != nil {
		return nil, configErrorf("Options", err)
	}
	opts := []rpa.Option{
		rpa.WithThreads(threads),
		rpa.WithEta(e.Eta),
		rpa.WithCacheSize(e.CacheSize),
		rpa.WithPruning(e.Pruning),
		rpa.WithInteraction(in),
		rpa.WithEigenOptions(e.EigenOptions()...),
	}
	if e.Rescale > 0 {
		opts = append(opts, rpa.WithRescale(e.Rescale))
	}
	if logger != nil {
		opts = append(opts, rpa.WithLogger(logger))
	}

	return opts, nil
}
