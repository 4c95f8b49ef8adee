// SPDX-License-Identifier: MIT
package kmesh

import (
	"maps"
	"math"

	"github.com/katalvlaran/tbrpa/lattice"
)

const (
	// MaxPerAxis is the largest grid size per axis the hash can address.
	MaxPerAxis = 500

	// keyStride separates the axis fields of a hash key.
	keyStride = 1000

	// onMeshTol is how close 2·D·k must be to an integer.
	onMeshTol = 1e-6
)

// KptList is an ordered list of k-points with an optional hash index.
// Grid, shift and includeEnds are fixed at construction.
type KptList struct {
	Points []*KPoint

	grid        [3]int
	div         [3]int
	shift       lattice.Vec3
	includeEnds bool
	index       map[int]int // nil for unindexed lists (paths, planes)
}

// NewKptList returns an empty indexed list for the given mesh geometry.
// Each shift component must be 0 or ½. Points can be added with Add.
func NewKptList(grid [3]int, shift lattice.Vec3, includeEnds bool) (*KptList, error) {
	l := &KptList{grid: grid, shift: shift, includeEnds: includeEnds}
	for i := 0; i < 3; i++ {
		switch {
		case grid[i] <= 0, shift[i] < 0, shift[i] >= 1:
			return nil, kmeshErrorf("NewKptList", ErrInvalidGrid)
		case math.Abs(2*shift[i]-math.Round(2*shift[i])) > onMeshTol:
			// the hash resolves half steps only
			return nil, kmeshErrorf("NewKptList", ErrInvalidGrid)
		case grid[i] > MaxPerAxis:
			return nil, kmeshErrorf("NewKptList", ErrMeshTooLarge)
		case includeEnds && grid[i] < 2:
			return nil, kmeshErrorf("NewKptList", ErrInvalidGrid)
		}
		l.div[i] = grid[i]
		if includeEnds {
			l.div[i] = grid[i] - 1
		}
	}
	l.index = make(map[int]int, grid[0]*grid[1]*grid[2])

	return l, nil
}

// GenerateMesh builds the full regular mesh k_i = (n_i + shift_i)/D_i with
// uniform weights 1/N. The last axis varies fastest.
//
// Errors: ErrInvalidGrid, ErrMeshTooLarge, ErrOffMesh.
// Complexity: O(N).
func GenerateMesh(grid [3]int, shift lattice.Vec3, includeEnds bool) (*KptList, error) {
	l, err := NewKptList(grid, shift, includeEnds)
	if err != nil {
		return nil, kmeshErrorf("GenerateMesh", err)
	}
	var (
		n       = grid[0] * grid[1] * grid[2]
		w       = 1 / float64(n)
		i, j, k int
	)
	l.Points = make([]*KPoint, 0, n)
	for i = 0; i < grid[0]; i++ {
		for j = 0; j < grid[1]; j++ {
			for k = 0; k < grid[2]; k++ {
				kv := lattice.Vec3{
					(float64(i) + shift[0]) / float64(l.div[0]),
					(float64(j) + shift[1]) / float64(l.div[1]),
					(float64(k) + shift[2]) / float64(l.div[2]),
				}
				key, ok := l.Key(kv)
				if !ok {
					return nil, kmeshErrorf("GenerateMesh", ErrOffMesh)
				}
				l.index[key] = len(l.Points)
				l.Points = append(l.Points, &KPoint{K: kv, Weight: w, IrreducibleIndex: -1})
			}
		}
	}

	return l, nil
}

// Key hashes k onto the mesh. ok is false when k is off-mesh (or, for
// includeEnds meshes, outside [0,1]) or the list is unindexed.
func (l *KptList) Key(k lattice.Vec3) (key int, ok bool) {
	if l.index == nil {
		return 0, false
	}
	stride := 1
	for i := 0; i < 3; i++ {
		d2 := 2 * l.div[i]
		x := float64(d2) * k[i]
		m := math.Round(x)
		if math.Abs(x-m) > onMeshTol {
			return 0, false
		}
		mi := int(m)
		if l.includeEnds {
			if mi < 0 || mi > d2 {
				return 0, false
			}
		} else {
			mi %= d2
			if mi < 0 {
				mi += d2
			}
		}
		key += mi * stride
		stride *= keyStride
	}

	return key, true
}

// Lookup returns the list index of the point equivalent to k.
func (l *KptList) Lookup(k lattice.Vec3) (int, bool) {
	key, ok := l.Key(k)
	if !ok {
		return 0, false
	}
	idx, ok := l.index[key]

	return idx, ok
}

// Add appends p. Indexed lists reject off-mesh and duplicate points.
func (l *KptList) Add(p *KPoint) error {
	if l.index != nil {
		key, ok := l.Key(p.K)
		if !ok {
			return kmeshErrorf("KptList.Add", ErrOffMesh)
		}
		if _, dup := l.index[key]; dup {
			return kmeshErrorf("KptList.Add", ErrDuplicateKey)
		}
		l.index[key] = len(l.Points)
	}
	l.Points = append(l.Points, p)

	return nil
}

// Len returns the number of points.
func (l *KptList) Len() int { return len(l.Points) }

// Grid returns the mesh size per axis.
func (l *KptList) Grid() [3]int { return l.grid }

// Shift returns the mesh shift in units of the grid spacing.
func (l *KptList) Shift() lattice.Vec3 { return l.shift }

// IncludeEnds reports whether both 0 and 1 are present on each axis.
func (l *KptList) IncludeEnds() bool { return l.includeEnds }

// Indexed reports whether the list carries a hash index.
func (l *KptList) Indexed() bool { return l.index != nil }

// TotalWeight returns Σ weights.
func (l *KptList) TotalWeight() float64 {
	var s float64
	for _, p := range l.Points {
		s += p.Weight
	}

	return s
}

// Clone deep-copies the list, its points and their wavefunctions.
func (l *KptList) Clone() *KptList {
	c := &KptList{
		Points:      make([]*KPoint, len(l.Points)),
		grid:        l.grid,
		div:         l.div,
		shift:       l.shift,
		includeEnds: l.includeEnds,
	}
	for i, p := range l.Points {
		c.Points[i] = p.Clone()
	}
	if l.index != nil {
		c.index = maps.Clone(l.index)
	}

	return c
}
