// SPDX-License-Identifier: MIT
package store

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/rpa"
)

func TestDecodeParams_Dimension(t *testing.T) {
	cases := []struct {
		name string
		dim  uint32
	}{
		{"zero", 0},
		{"aboveLimit", maxDim + 1},
		{"huge", 1 << 31},
		{"max", math.MaxUint32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := header{Version: recordVersion, Dim: tc.dim}
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, h))
			buf.Write(make([]byte, 48))

			_, err := decodeParams(buf.Bytes())
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestDecodeParams_RoundTrip(t *testing.T) {
	x0, err := matrix.NewDenseFrom([][]complex128{{1, 2i}, {-2i, 3}})
	require.NoError(t, err)
	raw, err := encodeParams(&rpa.Params{QIndex: 2, Temperature: 300, X0: x0})
	require.NoError(t, err)

	p, err := decodeParams(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, p.QIndex)
	assert.Equal(t, 2i, p.X0.Get(0, 1))
	assert.Equal(t, complex128(0), p.Xs.Get(1, 1))

	_, err = decodeParams(raw[:len(raw)-1])
	assert.ErrorIs(t, err, ErrCorrupt)
}
