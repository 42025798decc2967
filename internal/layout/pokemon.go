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

import "github.com/DevreeseJorik/ASE-sim/internal/names"

// PokemonSize is the fixed, padded size of one encoded Pokémon record.
const PokemonSize = 0x3C

const (
	nicknameUnits = 11 // 0xB
	trainerUnits  = 8  // 0x8
)

// Pokemon is the structured, human-authored description of one creature in
// a Hall-of-Fame party slot.
type Pokemon struct {
	Species     names.Ref
	Level       uint8
	Forme       uint8
	PID         uint32
	TrainerID   uint16
	SecretID    uint16
	Nickname    names.CharacterSource
	TrainerName names.CharacterSource
	// Moves holds move 1 through move 4, in that order, at offsets
	// 0x32, 0x34, 0x36, 0x38.
	Moves [4]names.Ref
}

// EncodePokemon serializes p into its fixed 0x3C-byte record, resolving
// species, moves, and name fields against the given tables.
func EncodePokemon(species, moves *names.Table, chars *names.Characters, p Pokemon) ([PokemonSize]byte, error) {
	var out [PokemonSize]byte
	buf := out[:]

	at := 0
	speciesID, err := species.Resolve(p.Species)
	if err != nil {
		return out, err
	}
	at, err = Write16(buf, at, speciesID)
	if err != nil {
		return out, err
	}

	if at, err = Write8(buf, at, p.Level); err != nil {
		return out, err
	}
	if at, err = Write8(buf, at, p.Forme); err != nil {
		return out, err
	}
	if at, err = Write32(buf, at, p.PID); err != nil {
		return out, err
	}
	if at, err = Write16(buf, at, p.TrainerID); err != nil {
		return out, err
	}
	if at, err = Write16(buf, at, p.SecretID); err != nil {
		return out, err
	}

	nickname, err := chars.EncodeName(orEmpty(p.Nickname), nicknameUnits)
	if err != nil {
		return out, err
	}
	if at, err = WriteUint16s(buf, at, nickname); err != nil {
		return out, err
	}

	trainerName, err := chars.EncodeName(orEmpty(p.TrainerName), trainerUnits)
	if err != nil {
		return out, err
	}
	if at, err = WriteUint16s(buf, at, trainerName); err != nil {
		return out, err
	}

	for _, move := range p.Moves {
		moveID, err := moves.Resolve(orZero(move))
		if err != nil {
			return out, err
		}
		if at, err = Write16(buf, at, moveID); err != nil {
			return out, err
		}
	}

	// 0x3A..0x3C is zero padding, already satisfied by the zero-valued array.
	return out, nil
}

// orEmpty treats a nil CharacterSource as an empty name, rather than
// requiring every caller to spell out names.Text("").
func orEmpty(s names.CharacterSource) names.CharacterSource {
	if s == nil {
		return names.Text("")
	}
	return s
}

// orZero treats a nil Ref as move/species ID 0, matching the zero-valued
// defaults of the original description objects.
func orZero(r names.Ref) names.Ref {
	if r == nil {
		return names.ByID(0)
	}
	return r
}
