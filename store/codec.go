// SPDX-License-Identifier: MIT
package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/tbrpa/lattice"
	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/rpa"
)

const (
	prefixMeta   = 'M'
	prefixRecord = 'R'

	recordVersion = 1

	// maxDim bounds the matrix dimension of a record.
	maxDim = 1 << 16
)

// header is the fixed part of a record.
type header struct {
	Version           uint8
	QIndex            int32
	Q                 [3]float64
	Temperature       float64
	ChemicalPotential float64
	Frequency         float64
	SpinScale         float64
	ChargeScale       float64
	Dim               uint32
}

func metaKey(run uuid.UUID) []byte {
	return append([]byte{prefixMeta}, run[:]...)
}

func recordKey(run uuid.UUID, index int) []byte {
	k := make([]byte, 1+16+4)
	k[0] = prefixRecord
	copy(k[1:], run[:])
	binary.BigEndian.PutUint32(k[17:], uint32(index))
	return k
}

// recordBounds returns [lower, upper) covering every record of run.
func recordBounds(run uuid.UUID) (lower, upper []byte) {
	lower = append([]byte{prefixRecord}, run[:]...)
	upper = append([]byte(nil), lower...)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			break
		}
	}

	return lower, upper
}

func indexOf(key []byte) int {
	return int(binary.BigEndian.Uint32(key[17:]))
}

func flatten(m *matrix.Dense, dim int) ([]complex128, error) {
	if m == nil {
		return make([]complex128, dim*dim), nil
	}
	if m.Rows() != dim || m.Cols() != dim {
		return nil, fmt.Errorf("%dx%d matrix in a %d record: %w", m.Rows(), m.Cols(), dim, matrix.ErrDimensionMismatch)
	}
	out := make([]complex128, 0, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out = append(out, m.Get(i, j))
		}
	}

	return out, nil
}

func encodeParams(p *rpa.Params) ([]byte, error) {
	if p.X0 == nil {
		return nil, fmt.Errorf("params without X0: %w", matrix.ErrNilMatrix)
	}
	dim := p.X0.Rows()
	if dim > maxDim {
		return nil, fmt.Errorf("dimension %d above %d: %w", dim, maxDim, matrix.ErrDimensionMismatch)
	}
	h := header{
		Version:           recordVersion,
		QIndex:            int32(p.QIndex),
		Q:                 p.Q,
		Temperature:       p.Temperature,
		ChemicalPotential: p.ChemicalPotential,
		Frequency:         p.Frequency,
		SpinScale:         p.SpinScale,
		ChargeScale:       p.ChargeScale,
		Dim:               uint32(dim),
	}
	var buf bytes.Buffer
	buf.Grow(binary.Size(h) + 3*dim*dim*16)
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	for _, m := range []*matrix.Dense{p.X0, p.Xs, p.Xc} {
		flat, err := flatten(m, dim)
		if err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, flat); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func decodeParams(raw []byte) (*rpa.Params, error) {
	r := bytes.NewReader(raw)
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if h.Version != recordVersion {
		return nil, fmt.Errorf("%w: version %d", ErrCorrupt, h.Version)
	}
	if h.Dim == 0 || h.Dim > maxDim {
		return nil, fmt.Errorf("%w: dimension %d", ErrCorrupt, h.Dim)
	}
	dim := int(h.Dim)
	if r.Len() != 3*dim*dim*16 {
		return nil, fmt.Errorf("%w: %d payload bytes for dimension %d", ErrCorrupt, r.Len(), dim)
	}
	p := &rpa.Params{
		QIndex:            int(h.QIndex),
		Q:                 lattice.Vec3(h.Q),
		Temperature:       h.Temperature,
		ChemicalPotential: h.ChemicalPotential,
		Frequency:         h.Frequency,
		SpinScale:         h.SpinScale,
		ChargeScale:       h.ChargeScale,
	}
	flat := make([]complex128, dim*dim)
	for _, dst := range []**matrix.Dense{&p.X0, &p.Xs, &p.Xc} {
		if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
			return nil, fmt.Errorf("%w: payload: %v", ErrCorrupt, err)
		}
		m, _ := matrix.NewDense(dim, dim)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				m.Put(i, j, flat[i*dim+j])
			}
		}
		*dst = m
	}

	return p, nil
}
