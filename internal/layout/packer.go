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

package layout

import (
	"encoding/binary"

	"github.com/DevreeseJorik/ASE-sim/internal/errs"
)

// Read returns the n raw bytes of buf starting at at, and the index
// immediately following them.
func Read(buf []byte, at, n int) ([]byte, int, error) {
	if !fits(buf, at, n) {
		return nil, at, errs.Wrap(errs.ErrOutOfBounds, "read %d bytes at %#x (len %#x)", n, at, len(buf))
	}
	return buf[at : at+n], at + n, nil
}

// ReadUint reads an n-byte little-endian unsigned integer starting at at,
// and returns the index immediately following it. n must be 1, 2, 4, or 8.
func ReadUint(buf []byte, at, n int) (uint64, int, error) {
	raw, next, err := Read(buf, at, n)
	if err != nil {
		return 0, at, err
	}
	return decodeUint(raw), next, nil
}

// Write8 writes an 8-bit scalar at at and returns the index immediately
// following it.
func Write8(buf []byte, at int, v uint8) (int, error) {
	if !fits(buf, at, 1) {
		return at, errs.Wrap(errs.ErrOutOfBounds, "write u8 at %#x (len %#x)", at, len(buf))
	}
	buf[at] = v
	return at + 1, nil
}

// Write16 writes a 16-bit little-endian scalar at at and returns the index
// immediately following it.
func Write16(buf []byte, at int, v uint16) (int, error) {
	if !fits(buf, at, 2) {
		return at, errs.Wrap(errs.ErrOutOfBounds, "write u16 at %#x (len %#x)", at, len(buf))
	}
	binary.LittleEndian.PutUint16(buf[at:], v)
	return at + 2, nil
}

// Write32 writes a 32-bit little-endian scalar at at and returns the index
// immediately following it.
func Write32(buf []byte, at int, v uint32) (int, error) {
	if !fits(buf, at, 4) {
		return at, errs.Wrap(errs.ErrOutOfBounds, "write u32 at %#x (len %#x)", at, len(buf))
	}
	binary.LittleEndian.PutUint32(buf[at:], v)
	return at + 4, nil
}

// WriteBytes copies raw into buf starting at at and returns the index
// immediately following it.
func WriteBytes(buf []byte, at int, raw []byte) (int, error) {
	if !fits(buf, at, len(raw)) {
		return at, errs.Wrap(errs.ErrOutOfBounds, "write %d bytes at %#x (len %#x)", len(raw), at, len(buf))
	}
	copy(buf[at:], raw)
	return at + len(raw), nil
}

// WriteUint16s writes an array of 16-bit little-endian units at at and
// returns the index immediately following them. Used for name fields, whose
// units are 16-bit character codes rather than raw bytes.
func WriteUint16s(buf []byte, at int, units []uint16) (int, error) {
	n := len(units) * 2
	if !fits(buf, at, n) {
		return at, errs.Wrap(errs.ErrOutOfBounds, "write %d u16 units at %#x (len %#x)", len(units), at, len(buf))
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[at+i*2:], u)
	}
	return at + n, nil
}

func fits(buf []byte, at, n int) bool {
	return at >= 0 && n >= 0 && at+n <= len(buf)
}

func decodeUint(raw []byte) uint64 {
	switch len(raw) {
	case 1:
		return uint64(raw[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(raw))
	case 4:
		return uint64(binary.LittleEndian.Uint32(raw))
	case 8:
		return binary.LittleEndian.Uint64(raw)
	default:
		var v uint64
		for i := len(raw) - 1; i >= 0; i-- {
			v = v<<8 | uint64(raw[i])
		}
		return v
	}
}
