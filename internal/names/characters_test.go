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

package names_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevreeseJorik/ASE-sim/internal/errs"
	"github.com/DevreeseJorik/ASE-sim/internal/names"
)

func newTestCharacters(opts ...names.CharactersOption) *names.Characters {
	entries := []names.CharacterEntry{
		{Char: 'h', Codes: []uint16{0xA8}},
		{Char: 'k', Codes: []uint16{0xAB}},
		{Char: 'a', Codes: []uint16{0xA1}},
		{Char: 'b', Codes: []uint16{0xA2}},
		{Char: 'c', Codes: []uint16{0xA3}},
		{Char: 'd', Codes: []uint16{0xA4}},
	}
	return names.NewCharacters(entries, opts...)
}

func TestEncodeNameGyaradosNickname(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	codes, err := chars.EncodeName(names.Text("h"), 11)
	require.NoError(t, err)
	require.Len(t, codes, 11)
	assert.Equal(t, uint16(0xA8), codes[0])
	assert.Equal(t, uint16(0xFFFF), codes[1])
	for _, c := range codes[2:] {
		assert.Equal(t, uint16(0), c)
	}
}

func TestEncodeNameTrainerName(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	codes, err := chars.EncodeName(names.Text("kh"), 8)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xAB), codes[0])
	assert.Equal(t, uint16(0xA8), codes[1])
	assert.Equal(t, uint16(0xFFFF), codes[2])
}

func TestEncodeNameTruncatesReservingTerminatorSlot(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	// capacity 4, 4 source characters: one slot must always be reserved for
	// the terminator, so only 3 of 4 characters survive.
	codes, err := chars.EncodeName(names.Text("abcd"), 4)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xA1, 0xA2, 0xA3, 0xFFFF}, codes)
}

func TestEncodeNameExactFitOverwritesLastCharacter(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	// capacity 3, 3 source characters: the terminator always needs a slot,
	// so the last character is sacrificed to it.
	codes, err := chars.EncodeName(names.Text("abc"), 3)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xA1, 0xA2, 0xFFFF}, codes)
}

func TestEncodeNameEmptySource(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	codes, err := chars.EncodeName(names.Text(""), 5)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xFFFF, 0, 0, 0, 0}, codes)
}

func TestEncodeNameWithoutTerminatorPolicy(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters(names.WithTerminatorPolicy(false))
	codes, err := chars.EncodeName(names.Text("ab"), 4)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xA1, 0xA2, 0, 0}, codes)
}

func TestEncodeNameCodesBypassesLookup(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	codes, err := chars.EncodeName(names.Codes([]uint16{0x1234, 0x5678}), 4)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x1234, 0x5678, 0xFFFF, 0}, codes)
}

func TestEncodeNameUnknownCharacter(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	_, err := chars.EncodeName(names.Text("z"), 4)
	assert.True(t, errors.Is(err, errs.ErrUnknownName))
}

func TestEncodeNameZeroCapacity(t *testing.T) {
	t.Parallel()

	chars := newTestCharacters()
	codes, err := chars.EncodeName(names.Text("a"), 0)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
