// SPDX-License-Identifier: MIT
package kmesh

import (
	"github.com/katalvlaran/tbrpa/lattice"
)

// PathNode is a named corner of a band-structure path.
type PathNode struct {
	Name string
	K    lattice.Vec3
}

// NewPath returns an unindexed list that visits nodes in order with perSegment
// points per segment (start included, end excluded) plus the final node.
// Node points carry the node name; weights are uniform.
//
// Errors: ErrBadPath.
func NewPath(nodes []PathNode, perSegment int) (*KptList, error) {
	if len(nodes) < 2 || perSegment <= 0 {
		return nil, kmeshErrorf("NewPath", ErrBadPath)
	}
	l := &KptList{}
	for s := 0; s+1 < len(nodes); s++ {
		a, b := nodes[s], nodes[s+1]
		step := b.K.Sub(a.K).Scale(1 / float64(perSegment))
		for i := 0; i < perSegment; i++ {
			p := &KPoint{K: a.K.Add(step.Scale(float64(i))), IrreducibleIndex: -1}
			if i == 0 {
				p.Name = a.Name
			}
			l.Points = append(l.Points, p)
		}
	}
	last := nodes[len(nodes)-1]
	l.Points = append(l.Points, &KPoint{K: last.K, Name: last.Name, IrreducibleIndex: -1})
	w := 1 / float64(len(l.Points))
	for _, p := range l.Points {
		p.Weight = w
	}

	return l, nil
}

// Distances returns the cumulative Cartesian path length at each point, the
// abscissa of a band plot.
func (l *KptList) Distances(lat *lattice.Lattice) []float64 {
	out := make([]float64, len(l.Points))
	for i := 1; i < len(l.Points); i++ {
		d := lat.CartesianK(l.Points[i].K.Sub(l.Points[i-1].K)).Norm()
		out[i] = out[i-1] + d
	}

	return out
}

// KptPlane is a two-dimensional k grid spanned by U and V from Origin, used
// for Fermi-surface style maps. Points run over V fastest, ends included.
type KptPlane struct {
	*KptList

	Origin lattice.Vec3
	U, V   lattice.Vec3
	N1, N2 int
}

// GeneratePlane builds origin + i/(n1−1)·u + j/(n2−1)·v for i<n1, j<n2.
// Errors: ErrInvalidGrid when n1 or n2 is below 2.
func GeneratePlane(origin, u, v lattice.Vec3, n1, n2 int) (*KptPlane, error) {
	if n1 < 2 || n2 < 2 {
		return nil, kmeshErrorf("GeneratePlane", ErrInvalidGrid)
	}
	pl := &KptPlane{KptList: &KptList{}, Origin: origin, U: u, V: v, N1: n1, N2: n2}
	w := 1 / float64(n1*n2)
	pl.Points = make([]*KPoint, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			k := origin.
				Add(u.Scale(float64(i) / float64(n1-1))).
				Add(v.Scale(float64(j) / float64(n2-1)))
			pl.Points = append(pl.Points, &KPoint{K: k, Weight: w, IrreducibleIndex: -1})
		}
	}

	return pl, nil
}

// At returns the point at plane coordinates (i, j).
func (p *KptPlane) At(i, j int) *KPoint { return p.Points[i*p.N2+j] }
