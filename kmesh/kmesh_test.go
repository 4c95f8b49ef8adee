// SPDX-License-Identifier: MIT
package kmesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/kmesh"
	"github.com/katalvlaran/tbrpa/lattice"
)

// cubicOh returns Oh in the reduced basis of the simple cubic lattice.
func cubicOh(t *testing.T) *lattice.SpaceGroup {
	t.Helper()
	pg, err := lattice.DefaultPointGroups()
	require.NoError(t, err)
	oh, err := pg.Get("Oh")
	require.NoError(t, err)
	red, err := oh.InReducedBasis(lattice.Cubic(1))
	require.NoError(t, err)

	return red
}

func TestGenerateMesh_Basics(t *testing.T) {
	l, err := kmesh.GenerateMesh([3]int{4, 3, 2}, lattice.Vec3{}, false)
	require.NoError(t, err)
	require.Equal(t, 24, l.Len())
	assert.InDelta(t, 1.0, l.TotalWeight(), 1e-12)
	assert.True(t, l.Indexed())

	seen := map[int]bool{}
	for i, p := range l.Points {
		key, ok := l.Key(p.K)
		require.True(t, ok)
		assert.False(t, seen[key], "duplicate key")
		seen[key] = true
		idx, ok := l.Lookup(p.K)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, -1, p.IrreducibleIndex)
	}

	// Periodic images hash to the same point.
	idx, ok := l.Lookup(lattice.Vec3{-0.25, 1 + 1.0/3, 2.5})
	require.True(t, ok)
	assert.True(t, l.Points[idx].K.Equal(lattice.Vec3{0.75, 1.0 / 3, 0.5}, 1e-12))

	// Off-mesh momenta are not found.
	_, ok = l.Lookup(lattice.Vec3{0.1, 0, 0})
	assert.False(t, ok)
}

func TestGenerateMesh_IncludeEnds(t *testing.T) {
	l, err := kmesh.GenerateMesh([3]int{3, 3, 2}, lattice.Vec3{}, true)
	require.NoError(t, err)
	assert.Equal(t, 18, l.Len())

	i0, ok := l.Lookup(lattice.Vec3{0, 0, 0})
	require.True(t, ok)
	i1, ok := l.Lookup(lattice.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.NotEqual(t, i0, i1, "both ends must be distinct points")

	_, ok = l.Lookup(lattice.Vec3{-0.5, 0, 0})
	assert.False(t, ok)
}

func TestGenerateMesh_Errors(t *testing.T) {
	_, err := kmesh.GenerateMesh([3]int{501, 1, 1}, lattice.Vec3{}, false)
	assert.ErrorIs(t, err, kmesh.ErrMeshTooLarge)

	_, err = kmesh.GenerateMesh([3]int{500, 1, 1}, lattice.Vec3{}, false)
	assert.NoError(t, err)

	_, err = kmesh.GenerateMesh([3]int{0, 1, 1}, lattice.Vec3{}, false)
	assert.ErrorIs(t, err, kmesh.ErrInvalidGrid)

	_, err = kmesh.GenerateMesh([3]int{2, 2, 1}, lattice.Vec3{}, true)
	assert.ErrorIs(t, err, kmesh.ErrInvalidGrid)

	_, err = kmesh.GenerateMesh([3]int{2, 2, 2}, lattice.Vec3{1, 0, 0}, false)
	assert.ErrorIs(t, err, kmesh.ErrInvalidGrid)
}

func TestGenerateMesh_QuarterShift(t *testing.T) {
	cases := []struct {
		name  string
		shift lattice.Vec3
		err   error
	}{
		{"zero", lattice.Vec3{}, nil},
		{"half", lattice.Vec3{0.5, 0, 0.5}, nil},
		{"quarter", lattice.Vec3{0.25, 0, 0}, kmesh.ErrInvalidGrid},
		{"third", lattice.Vec3{0, 1.0 / 3, 0}, kmesh.ErrInvalidGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := kmesh.GenerateMesh([3]int{4, 4, 1}, tc.shift, false)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				_, err = kmesh.NewKptList([3]int{4, 4, 1}, tc.shift, false)
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 16, l.Len())
			for i, p := range l.Points {
				idx, ok := l.Lookup(p.K)
				require.True(t, ok, "point %d", i)
				assert.Equal(t, i, idx)
			}
		})
	}
}

func TestKptList_Add(t *testing.T) {
	l, err := kmesh.NewKptList([3]int{4, 4, 4}, lattice.Vec3{}, false)
	require.NoError(t, err)
	require.NoError(t, l.Add(&kmesh.KPoint{K: lattice.Vec3{0.25, 0, 0}}))
	assert.ErrorIs(t, l.Add(&kmesh.KPoint{K: lattice.Vec3{1.25, 0, 0}}), kmesh.ErrDuplicateKey)
	assert.ErrorIs(t, l.Add(&kmesh.KPoint{K: lattice.Vec3{0.3, 0, 0}}), kmesh.ErrOffMesh)
	assert.Equal(t, 1, l.Len())
}

func TestCreateIrreducibleMesh_Counts(t *testing.T) {
	oh := cubicOh(t)
	cases := []struct {
		name  string
		shift lattice.Vec3
		want  int
	}{
		{"GammaCentered", lattice.Vec3{}, 35},
		{"HalfShifted", lattice.Vec3{0.5, 0.5, 0.5}, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			full, err := kmesh.GenerateMesh([3]int{8, 8, 8}, tc.shift, false)
			require.NoError(t, err)
			irr, err := full.CreateIrreducibleMesh(oh)
			require.NoError(t, err)

			assert.Equal(t, tc.want, irr.Len())
			assert.InDelta(t, full.TotalWeight(), irr.TotalWeight(), 1e-12)
			assert.InDelta(t, 1.0, irr.TotalWeight(), 1e-12)

			// Every point is the image of its representative.
			for i, p := range full.Points {
				j, err := full.IrreducibleIndex(i)
				require.NoError(t, err)
				rep := irr.Points[j].K
				img := rep
				if p.ReducedBy != nil {
					img = p.ReducedBy.Apply(rep)
				}
				assert.True(t, img.Sub(p.K).IsIntegral(1e-9), "point %d", i)
			}
		})
	}
}

func TestCreateIrreducibleMesh_TrivialGroup(t *testing.T) {
	full, err := kmesh.GenerateMesh([3]int{3, 3, 3}, lattice.Vec3{}, false)
	require.NoError(t, err)
	irr, err := full.CreateIrreducibleMesh(nil)
	require.NoError(t, err)
	assert.Equal(t, full.Len(), irr.Len())

	path, err := kmesh.NewPath([]kmesh.PathNode{{Name: "G"}, {Name: "X", K: lattice.Vec3{0.5}}}, 4)
	require.NoError(t, err)
	_, err = path.CreateIrreducibleMesh(nil)
	assert.ErrorIs(t, err, kmesh.ErrNotIndexed)
}

func TestFillWavefunctions_Permutation(t *testing.T) {
	c2, err := lattice.NewSymmetry("C2z", lattice.Mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, []int{1, 0})
	require.NoError(t, err)
	g, err := lattice.Closure("C2", []*lattice.Symmetry{c2})
	require.NoError(t, err)

	full, err := kmesh.GenerateMesh([3]int{4, 4, 1}, lattice.Vec3{}, false)
	require.NoError(t, err)

	_, err = full.IrreducibleIndex(0)
	assert.ErrorIs(t, err, kmesh.ErrNotReduced)

	irr, err := full.CreateIrreducibleMesh(g)
	require.NoError(t, err)
	// (0,0) (½,0) (0,½) (½,½) are fixed; the other 12 pair up.
	assert.Equal(t, 10, irr.Len())

	err = full.FillWavefunctions(irr)
	assert.ErrorIs(t, err, kmesh.ErrMissingWavefunctions)

	for _, p := range irr.Points {
		p.Wavefunctions = []kmesh.Wavefunction{{Energy: p.K[0], Occupation: 0.5, Coefficients: []complex128{1, 2i}}}
	}
	require.NoError(t, full.FillWavefunctions(irr))

	for _, p := range full.Points {
		require.Len(t, p.Wavefunctions, 1)
		w := p.Wavefunctions[0]
		assert.Equal(t, 0.5, w.Occupation)
		if p.ReducedBy == nil {
			assert.Equal(t, []complex128{1, 2i}, w.Coefficients)
		} else {
			assert.Equal(t, []complex128{2i, 1}, w.Coefficients)
		}
	}
}

func TestKptList_CloneIsDeep(t *testing.T) {
	l, err := kmesh.GenerateMesh([3]int{2, 2, 2}, lattice.Vec3{}, false)
	require.NoError(t, err)
	l.Points[0].Wavefunctions = []kmesh.Wavefunction{{Coefficients: []complex128{1}}}

	c := l.Clone()
	c.Points[0].Wavefunctions[0].Coefficients[0] = 5
	c.Points[1].Weight = 42
	assert.Equal(t, complex128(1), l.Points[0].Wavefunctions[0].Coefficients[0])
	assert.NotEqual(t, 42.0, l.Points[1].Weight)

	idx, ok := c.Lookup(l.Points[3].K)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestNewPath(t *testing.T) {
	nodes := []kmesh.PathNode{
		{Name: "G", K: lattice.Vec3{0, 0, 0}},
		{Name: "X", K: lattice.Vec3{0.5, 0, 0}},
		{Name: "M", K: lattice.Vec3{0.5, 0.5, 0}},
		{Name: "G", K: lattice.Vec3{0, 0, 0}},
	}
	p, err := kmesh.NewPath(nodes, 10)
	require.NoError(t, err)
	require.Equal(t, 31, p.Len())
	assert.False(t, p.Indexed())
	assert.Equal(t, "G", p.Points[0].Name)
	assert.Equal(t, "X", p.Points[10].Name)
	assert.Equal(t, "M", p.Points[20].Name)
	assert.Equal(t, "G", p.Points[30].Name)
	assert.Empty(t, p.Points[5].Name)
	assert.InDelta(t, 1.0, p.TotalWeight(), 1e-12)

	d := p.Distances(lattice.Cubic(1))
	assert.InDelta(t, 1+math.Sqrt(0.5), d[30], 1e-12)
	for i := 1; i < len(d); i++ {
		assert.Greater(t, d[i], d[i-1])
	}

	_, err = kmesh.NewPath(nodes[:1], 10)
	assert.ErrorIs(t, err, kmesh.ErrBadPath)
	_, err = kmesh.NewPath(nodes, 0)
	assert.ErrorIs(t, err, kmesh.ErrBadPath)
}

func TestGeneratePlane(t *testing.T) {
	origin := lattice.Vec3{0, 0, 0.5}
	u := lattice.Vec3{1, 0, 0}
	v := lattice.Vec3{0, 1, 0}
	pl, err := kmesh.GeneratePlane(origin, u, v, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, pl.Len())
	assert.True(t, pl.At(2, 4).K.Equal(lattice.Vec3{1, 1, 0.5}, 1e-12))
	assert.True(t, pl.At(1, 2).K.Equal(lattice.Vec3{0.5, 0.5, 0.5}, 1e-12))

	_, err = kmesh.GeneratePlane(origin, u, v, 1, 5)
	assert.ErrorIs(t, err, kmesh.ErrInvalidGrid)
}
