// SPDX-License-Identifier: MIT
package rpa_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/tb"
)

// cubicModel is a prepared nearest-neighbor s band on a g×g×g cubic mesh.
func cubicModel(t testing.TB, g int) *tb.Model {
	t.Helper()
	m := &tb.Model{Lattice: lattice.Cubic(1), Orbitals: []tb.Orbital{{Name: "s"}}}
	for _, r := range []lattice.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		m.Hoppings = append(m.Hoppings, tb.Hopping{From: 0, To: 0, R: r, T: -0.5})
	}
	pg, err := lattice.DefaultPointGroups()
	require.NoError(t, err)
	oh, err := pg.Get("Oh")
	require.NoError(t, err)
	m.Symmetry, err = oh.InReducedBasis(m.Lattice)
	require.NoError(t, err)
	_, err = m.PrepareMesh([3]int{g, g, g}, lattice.Vec3{}, false)
	require.NoError(t, err)

	return m
}

// squareModel is a prepared two-orbital square-lattice model whose C4 axis
// swaps the orbitals; both orbitals share one interaction group.
func squareModel(t testing.TB, g int) *tb.Model {
	t.Helper()
	const t1, t2, c = 1.0, 0.3, 0.2
	m := &tb.Model{
		Lattice:  lattice.Tetragonal(1, 5),
		Orbitals: []tb.Orbital{{Name: "xz"}, {Name: "yz"}},
		Hoppings: []tb.Hopping{{From: 0, To: 1, T: c}},
	}
	for _, s := range []float64{1, -1} {
		m.Hoppings = append(m.Hoppings,
			tb.Hopping{From: 0, To: 0, R: lattice.Vec3{s, 0, 0}, T: t1},
			tb.Hopping{From: 0, To: 0, R: lattice.Vec3{0, s, 0}, T: t2},
			tb.Hopping{From: 1, To: 1, R: lattice.Vec3{s, 0, 0}, T: t2},
			tb.Hopping{From: 1, To: 1, R: lattice.Vec3{0, s, 0}, T: t1},
		)
	}
	c4, err := lattice.NewSymmetry("C4z", lattice.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, []int{1, 0})
	require.NoError(t, err)
	m.Symmetry, err = lattice.Closure("C4", []*lattice.Symmetry{c4})
	require.NoError(t, err)
	_, err = m.PrepareMesh([3]int{g, g, 1}, lattice.Vec3{}, false)
	require.NoError(t, err)

	return m
}

// qList builds an unindexed list of momenta.
func qList(qs ...lattice.Vec3) *kmesh.KptList {
	nodes := make([]kmesh.PathNode, 0, len(qs)+1)
	for _, q := range qs {
		nodes = append(nodes, kmesh.PathNode{K: q})
	}
	if len(nodes) == 1 {
		nodes = append(nodes, nodes[0])
	}
	l, _ := kmesh.NewPath(nodes, 1)
	if len(qs) == 1 {
		l.Points = l.Points[:1]
	}

	return l
}

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) add(level, msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, fmt.Sprintf("%s %s", level, msg))
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.add("DEBUG", msg, args...) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.add("INFO", msg, args...) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.add("WARN", msg, args...) }
func (r *recordingLogger) Error(msg string, args ...any) { r.add("ERROR", msg, args...) }

func (r *recordingLogger) has(line string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.msgs {
		if m == line {
			return true
		}
	}

	return false
}
