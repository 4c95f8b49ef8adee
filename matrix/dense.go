// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex buffer with offset i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep a determinant cache that any write invalidates.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Get: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - det/detValid cache the determinant of a square matrix.
type Dense struct {
	r, c     int          // row and column counts (> 0)
	data     []complex128 // contiguous row-major storage (len == r*c)
	det      complex128   // cached determinant, valid only when detValid
	detValid bool         // false after any write
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]complex128 into a new Dense.
// Returns ErrInvalidDimensions for empty input and ErrBadShape for ragged rows.
func NewDenseFrom(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	m.det, m.detValid = 1, true

	return m, nil
}

// NewDiagonal returns a square matrix with the given real values on the diagonal.
func NewDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		m.data[i*n+i] = complex(v, 0)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) and invalidates the cached determinant.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.detValid = false

	return nil
}

// Get is the unchecked accessor for hot loops. Out-of-range indices panic
// through the runtime slice bounds check.
func (m *Dense) Get(row, col int) complex128 {
	return m.data[row*m.c+col]
}

// Put is the unchecked counterpart of Set for hot loops.
func (m *Dense) Put(row, col int, v complex128) {
	m.data[row*m.c+col] = v
	m.detValid = false
}

// AddAt accumulates v into (row, col) without bounds reporting.
func (m *Dense) AddAt(row, col int, v complex128) {
	m.data[row*m.c+col] += v
	m.detValid = false
}

// Column returns a copy of column j.
func (m *Dense) Column(j int) ([]complex128, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Column", 0, j, ErrOutOfRange)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Diagonal returns a copy of the main diagonal (length min(r,c)).
func (m *Dense) Diagonal() []complex128 {
	n := min(m.r, m.c)
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// Zero resets every entry to 0.
func (m *Dense) Zero() {
	clear(m.data)
	m.detValid = false
}

// Clone returns a deep copy, cache included.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, det: m.det, detValid: m.detValid}
}

// ScaleInPlace multiplies every entry by alpha.
func (m *Dense) ScaleInPlace(alpha complex128) {
	for i := range m.data {
		m.data[i] *= alpha
	}
	m.detValid = false
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
