// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/lattice"
)

func TestMat3_InverseAndDet(t *testing.T) {
	m := lattice.Mat3{{2, 1, 0}, {0, 1, 3}, {1, 0, 1}}
	assert.InDelta(t, 5.0, m.Det(), 1e-12)

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).Equal(lattice.Identity3(), 1e-12))
	assert.True(t, inv.Mul(m).Equal(lattice.Identity3(), 1e-12))

	_, err = lattice.Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverse()
	assert.ErrorIs(t, err, lattice.ErrSingularBasis)
}

func TestVec3_Ops(t *testing.T) {
	v := lattice.Vec3{1, 2, 3}
	w := lattice.Vec3{0, 1, -1}
	assert.Equal(t, lattice.Vec3{1, 3, 2}, v.Add(w))
	assert.Equal(t, lattice.Vec3{1, 1, 4}, v.Sub(w))
	assert.InDelta(t, -1.0, v.Dot(w), 0)
	assert.Equal(t, lattice.Vec3{-5, 1, 1}, v.Cross(w))
	assert.True(t, lattice.Vec3{1.0000001, -2, 0}.IsIntegral(1e-6))
	assert.False(t, lattice.Vec3{0.5, 0, 0}.IsIntegral(1e-6))
}

func TestLattice_Reciprocal(t *testing.T) {
	for name, lat := range map[string]*lattice.Lattice{
		"cubic":      lattice.Cubic(2),
		"tetragonal": lattice.Tetragonal(1, 3),
		"hexagonal":  lattice.Hexagonal(1, 1.6),
	} {
		t.Run(name, func(t *testing.T) {
			b := lat.Reciprocal()
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					got := lattice.Vec3(lat.A[i]).Dot(lattice.Vec3(b[j]))
					assert.InDelta(t, want, got, 1e-12)
				}
			}
			k := lattice.Vec3{0.25, -0.5, 0.125}
			assert.True(t, lat.ReducedK(lat.CartesianK(k)).Equal(k, 1e-12))
		})
	}
	assert.InDelta(t, 8.0, lattice.Cubic(2).Volume(), 1e-12)
	assert.InDelta(t, 1.6*math.Sqrt(3)/2, lattice.Hexagonal(1, 1.6).Volume(), 1e-12)

	_, err := lattice.NewLattice(lattice.Vec3{1, 0, 0}, lattice.Vec3{2, 0, 0}, lattice.Vec3{0, 0, 1})
	assert.ErrorIs(t, err, lattice.ErrSingularBasis)
}

func TestSymmetry_InverseAndCompose(t *testing.T) {
	c4, err := lattice.NewSymmetry("C4z", lattice.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, []int{1, 2, 0})
	require.NoError(t, err)

	inv := c4.Inverse()
	require.NotNil(t, inv)
	assert.Same(t, inv, c4.Inverse(), "inverse must be cached")

	id, err := c4.Compose(inv)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity(1e-12))
	assert.Equal(t, 1, c4.Orbital(0))
	assert.Equal(t, 0, inv.Orbital(1))

	_, err = lattice.NewSymmetry("bad", lattice.Identity3(), []int{0, 0})
	assert.ErrorIs(t, err, lattice.ErrBadPermutation)

	other, err := lattice.NewSymmetry("p2", lattice.Identity3(), []int{1, 0})
	require.NoError(t, err)
	_, err = c4.Compose(other)
	assert.ErrorIs(t, err, lattice.ErrBadPermutation)
}

func TestDefaultPointGroups_Orders(t *testing.T) {
	pg, err := lattice.DefaultPointGroups()
	require.NoError(t, err)

	cases := map[string]int{"C1": 1, "Ci": 2, "C2h": 4, "D2h": 8, "C4v": 8, "D4h": 16, "C6v": 12, "D6h": 24, "O": 24, "Oh": 48}
	for name, order := range cases {
		g, err := pg.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, order, g.Len(), name)
		assert.True(t, g.IsClosed(), name)
	}
	assert.Len(t, pg.Names(), len(cases))

	_, err = pg.Get("T42")
	assert.ErrorIs(t, err, lattice.ErrUnknownGroup)
}

func TestLoadPointGroups_Errors(t *testing.T) {
	_, err := lattice.LoadPointGroups(strings.NewReader("groups: [{name: X, generators: [Q]}]"))
	assert.ErrorIs(t, err, lattice.ErrBadGroupTable)

	_, err = lattice.LoadPointGroups(strings.NewReader(`
generators:
  I: [[-1,0,0],[0,-1,0],[0,0,-1]]
groups:
  - {name: Ci, order: 3, generators: [I]}
`))
	assert.ErrorIs(t, err, lattice.ErrBadGroupTable)

	_, err = lattice.LoadPointGroups(strings.NewReader("unknown_key: 1"))
	assert.ErrorIs(t, err, lattice.ErrBadGroupTable)
}

func TestSpaceGroup_InReducedBasis(t *testing.T) {
	pg, err := lattice.DefaultPointGroups()
	require.NoError(t, err)

	d6h, err := pg.Get("D6h")
	require.NoError(t, err)
	red, err := d6h.InReducedBasis(lattice.Hexagonal(1, 1.5))
	require.NoError(t, err)
	assert.Equal(t, 24, red.Len())
	assert.True(t, red.IsClosed())

	// Hexagonal operations do not map the cubic lattice onto itself.
	_, err = d6h.InReducedBasis(lattice.Cubic(1))
	assert.ErrorIs(t, err, lattice.ErrIncompatibleSymmetry)

	// Cubic operations are already integral in a cubic basis.
	oh, err := pg.Get("Oh")
	require.NoError(t, err)
	redOh, err := oh.InReducedBasis(lattice.Cubic(3))
	require.NoError(t, err)
	for i := range oh.Ops {
		assert.True(t, oh.Ops[i].R.Equal(redOh.Ops[i].R, 1e-12))
	}
}

func TestSpaceGroup_LittleGroup(t *testing.T) {
	pg, err := lattice.DefaultPointGroups()
	require.NoError(t, err)
	oh, err := pg.Get("Oh")
	require.NoError(t, err)

	assert.Equal(t, 48, oh.LittleGroup(lattice.Vec3{}).Len())
	// R point (½,½,½) is equivalent to all its images.
	assert.Equal(t, 48, oh.LittleGroup(lattice.Vec3{0.5, 0.5, 0.5}).Len())
	// Δ line (q,0,0): C4v.
	assert.Equal(t, 8, oh.LittleGroup(lattice.Vec3{0.2, 0, 0}).Len())
	// General point: identity only.
	assert.Equal(t, 1, oh.LittleGroup(lattice.Vec3{0.1, 0.2, 0.35}).Len())
}

func TestSpaceGroup_WithPermutations(t *testing.T) {
	g, err := lattice.Closure("C2", []*lattice.Symmetry{{Name: "C2z", R: lattice.Mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	pg, err := g.WithPermutations([][]int{nil, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, pg.Ops[1].Orbital(0))
	assert.Empty(t, g.Ops[1].Perm, "receiver must be untouched")
	assert.True(t, pg.IsClosed())

	_, err = g.WithPermutations([][]int{nil})
	assert.ErrorIs(t, err, lattice.ErrBadPermutation)
}

func TestClosure_WithPermutationGenerators(t *testing.T) {
	c4, err := lattice.NewSymmetry("C4z", lattice.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, []int{1, 0})
	require.NoError(t, err)
	g, err := lattice.Closure("C4", []*lattice.Symmetry{c4})
	require.NoError(t, err)
	// Rotation order 4, permutation order 2: the pair has order 4.
	assert.Equal(t, 4, g.Len())
	assert.True(t, g.IsClosed())
}
