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

package interp

import (
	"encoding/binary"
	"strings"

	"github.com/DevreeseJorik/ASE-sim/internal/opcode"
)

// Result is the outcome of one interpreter step: the cursor to resume from,
// and whether the step succeeded. A failed step is a trial abort, not an
// error — see package sim for how aborts fold into a hit-map.
type Result struct {
	Cursor  int
	Success bool
}

// minWorkValue and maxWorkValue bound a valid work parameter, inclusive.
const (
	minWorkValue = 0x4000
	maxWorkValue = 0x8054
)

// Step fetches the 2-byte opcode id at cursor in mem, advances past it, and
// dispatches to the opcode's advancer.
//
// Step aborts (returns Success == false) when: the opcode id is unknown to
// table; the opcode's name classifies it as a halting instruction ("end" or
// "return"); the opcode's advancer tag failed to resolve at load time; a
// parameter read runs past the end of mem; or, under the generic advancer, a
// work-named parameter falls outside [minWorkValue, maxWorkValue].
func Step(mem []byte, cursor int, table *opcode.Table) Result {
	id, next, ok := readUint(mem, cursor, 2)
	if !ok {
		return Result{Cursor: next, Success: false}
	}
	cursor = next

	op, ok := table.Lookup(uint16(id))
	if !ok {
		return Result{Cursor: cursor, Success: false}
	}
	if op.Halts() {
		return Result{Cursor: cursor, Success: false}
	}

	switch op.Advancer {
	case opcode.Jump:
		return advanceJump(mem, cursor, op)
	case opcode.Generic:
		return advanceGeneric(mem, cursor, op)
	default: // opcode.Invalid
		return Result{Cursor: cursor, Success: false}
	}
}

// advanceGeneric reads every parameter in order, aborting the first time a
// work-named parameter falls outside the valid range.
func advanceGeneric(mem []byte, cursor int, op opcode.Opcode) Result {
	for _, p := range op.Params {
		val, next, ok := readUint(mem, cursor, p.Width)
		if !ok {
			return Result{Cursor: next, Success: false}
		}
		cursor = next

		if isWorkParam(p.Name) && (val < minWorkValue || val > maxWorkValue) {
			return Result{Cursor: cursor, Success: false}
		}
	}
	return Result{Cursor: cursor, Success: true}
}

// advanceJump reads every parameter like [advanceGeneric], but applies a
// sign-extended relative jump for jump-named parameters instead of
// validating work values. Succeeds unless a parameter read runs past the end
// of mem: conditional jumps are not evaluated and are always taken, per the
// documented limitation.
func advanceJump(mem []byte, cursor int, op opcode.Opcode) Result {
	for _, p := range op.Params {
		val, next, ok := readUint(mem, cursor, p.Width)
		if !ok {
			return Result{Cursor: next, Success: false}
		}
		cursor = next

		if isJumpParam(p.Name) {
			cursor += signExtend(val, p.Width)
		}
	}
	return Result{Cursor: cursor, Success: true}
}

func isWorkParam(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "wk") || strings.Contains(lower, "work")
}

func isJumpParam(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "jmp") || strings.Contains(lower, "jump")
}

// readUint reads an n-byte little-endian unsigned integer at cursor,
// reporting false if that would run past the end of mem.
func readUint(mem []byte, cursor, n int) (value uint64, next int, ok bool) {
	if cursor < 0 || n < 0 || cursor+n > len(mem) {
		return 0, cursor, false
	}
	switch n {
	case 2:
		return uint64(binary.LittleEndian.Uint16(mem[cursor:])), cursor + n, true
	case 4:
		return uint64(binary.LittleEndian.Uint32(mem[cursor:])), cursor + n, true
	case 8:
		return binary.LittleEndian.Uint64(mem[cursor:]), cursor + n, true
	default:
		var v uint64
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(mem[cursor+i])
		}
		return v, cursor + n, true
	}
}

// signExtend interprets the low 8*width bits of val as a two's-complement
// signed integer of that width, per spec: a 4-byte value >= 0x80000000
// becomes negative, and so on for other widths.
func signExtend(val uint64, width int) int {
	bits := uint(width) * 8
	if bits == 0 || bits >= 64 {
		return int(val) //nolint:gosec // widths in practice are 1/2/4 bytes
	}
	signBit := uint64(1) << (bits - 1)
	mask := uint64(1)<<bits - 1
	val &= mask
	if val&signBit != 0 {
		return int(val) - int(mask) - 1
	}
	return int(val)
}
