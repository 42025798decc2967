// Copyright 2026 ASE-sim Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevreeseJorik/ASE-sim/internal/errs"
	"github.com/DevreeseJorik/ASE-sim/internal/layout"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 8)
	at, err := layout.Write8(buf, 0, 0x12)
	require.NoError(t, err)
	at, err = layout.Write16(buf, at, 0x3456)
	require.NoError(t, err)
	_, err = layout.Write32(buf, at, 0x789ABCDE)
	require.NoError(t, err)

	assert.Equal(t, byte(0x12), buf[0])
	assert.Equal(t, []byte{0x56, 0x34}, buf[1:3])
	assert.Equal(t, []byte{0xDE, 0xBC, 0x9A, 0x78}, buf[3:7])

	v8, at, err := layout.ReadUint(buf, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x12), v8)

	v16, at, err := layout.ReadUint(buf, at, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3456), v16)

	v32, _, err := layout.ReadUint(buf, at, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x789ABCDE), v32)
}

func TestWriteOutOfBounds(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 2)
	_, err := layout.Write32(buf, 0, 1)
	assert.True(t, errors.Is(err, errs.ErrOutOfBounds))

	_, err = layout.Write8(buf, -1, 1)
	assert.True(t, errors.Is(err, errs.ErrOutOfBounds))
}

func TestWriteUint16sRoundTrip(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 6)
	_, err := layout.WriteUint16s(buf, 1, []uint16{0x1122, 0x3344})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0x22, 0x11, 0x44, 0x33, 0}, buf)
}

func FuzzWriteReadUintRoundTrip(f *testing.F) {
	f.Add(uint32(0), 2)
	f.Add(uint32(0xFFFFFFFF), 4)
	f.Add(uint32(0x1234), 1)

	f.Fuzz(func(t *testing.T, v uint32, width int) {
		switch width {
		case 1, 2, 4:
		default:
			t.Skip("only exercising the fixed scalar widths the encoder uses")
		}

		buf := make([]byte, 4)
		switch width {
		case 1:
			_, err := layout.Write8(buf, 0, uint8(v))
			require.NoError(t, err)
		case 2:
			_, err := layout.Write16(buf, 0, uint16(v))
			require.NoError(t, err)
		case 4:
			_, err := layout.Write32(buf, 0, v)
			require.NoError(t, err)
		}

		got, _, err := layout.ReadUint(buf, 0, width)
		require.NoError(t, err)

		want := uint64(v)
		if width < 4 {
			want &= (1 << (uint(width) * 8)) - 1
		}
		assert.Equal(t, want, got)
	})
}
