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

package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevreeseJorik/ASE-sim/internal/interp"
	"github.com/DevreeseJorik/ASE-sim/internal/opcode"
)

func TestStepUnknownOpcodeAborts(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{}, nil)
	require.NoError(t, err)

	mem := []byte{0x00, 0x00}
	res := interp.Step(mem, 0, table)
	assert.False(t, res.Success)
	assert.Equal(t, 2, res.Cursor)
}

func TestStepHaltingOpcodeAborts(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{
		0x0001: {Name: "end"},
	}, nil)
	require.NoError(t, err)

	mem := []byte{0x01, 0x00}
	res := interp.Step(mem, 0, table)
	assert.False(t, res.Success)
}

func TestStepJumpAdvancerNegativeOffset(t *testing.T) {
	t.Parallel()

	// Opcode whose single parameter is named jump_offset, width 4, with
	// parameter bytes F0 FF FF FF: the 4-byte read and the -16 offset net
	// -16 + 4 = -12 relative to the byte immediately after the opcode id,
	// i.e. cursor ends up 12 bytes before where the parameter read started.
	table, err := opcode.Load(map[uint16]opcode.RawEntry{
		0x0040: {Name: "jump", Advancer: "jump", Parameters: []string{"jump_offset:4"}},
	}, nil)
	require.NoError(t, err)

	mem := []byte{0x40, 0x00, 0xF0, 0xFF, 0xFF, 0xFF}
	res := interp.Step(mem, 0, table)
	require.True(t, res.Success)
	// after opcode id: cursor=2; after reading 4-byte param: cursor=6;
	// offset -16 applied: 6-16=-10.
	assert.Equal(t, -10, res.Cursor)
}

func TestStepWorkValueAbort(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{
		0x0010: {Name: "set_work_value", Advancer: "generic", Parameters: []string{"work_a:2"}},
	}, nil)
	require.NoError(t, err)

	mem := []byte{0x10, 0x00, 0x00, 0x20} // 0x2000 < 0x4000
	res := interp.Step(mem, 0, table)
	assert.False(t, res.Success)
	assert.Equal(t, 4, res.Cursor)
}

func TestStepWorkValueInRangeSucceeds(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{
		0x0010: {Name: "set_work_value", Advancer: "generic", Parameters: []string{"work_a:2"}},
	}, nil)
	require.NoError(t, err)

	mem := []byte{0x10, 0x00, 0x00, 0x50} // 0x5000 is within [0x4000, 0x8054]
	res := interp.Step(mem, 0, table)
	assert.True(t, res.Success)
	assert.Equal(t, 4, res.Cursor)
}

func TestStepParamReadPastEndOfMemoryAborts(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{
		0x0010: {Name: "set_work_value", Advancer: "generic", Parameters: []string{"work_a:2"}},
	}, nil)
	require.NoError(t, err)

	mem := []byte{0x10, 0x00, 0x00} // only one byte of the two-byte parameter
	res := interp.Step(mem, 0, table)
	assert.False(t, res.Success)
}

func TestStepOnlyZeroOpcodeStreamAborts(t *testing.T) {
	t.Parallel()

	table, err := opcode.Load(map[uint16]opcode.RawEntry{}, nil)
	require.NoError(t, err)

	mem := []byte{0x00, 0x00, 0x00, 0x00}
	res := interp.Step(mem, 0, table)
	assert.False(t, res.Success)
}
