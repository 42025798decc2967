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
	"github.com/DevreeseJorik/ASE-sim/internal/errs"
	"github.com/DevreeseJorik/ASE-sim/internal/names"
)

// MaxParty is the number of party slots in one Hall-of-Fame record.
const MaxParty = 6

// RecordSize is the fixed size of one encoded Hall-of-Fame record:
// six Pokémon slots plus a 4-byte date.
const RecordSize = PokemonSize*MaxParty + 4

// Record is the structured description of one Hall-of-Fame entry: a party
// of up to [MaxParty] Pokémon and the date it was recorded.
type Record struct {
	Party []Pokemon
	Year  int
	Month uint8
	Day   uint8
}

// EncodeRecord serializes r into its fixed 364-byte record. Missing party
// slots are left zero. Returns [errs.ErrPartyOverflow] if r.Party has more
// than [MaxParty] members.
func EncodeRecord(species, moves *names.Table, chars *names.Characters, r Record) ([RecordSize]byte, error) {
	var out [RecordSize]byte
	if len(r.Party) > MaxParty {
		return out, errs.Wrap(errs.ErrPartyOverflow, "party of %d exceeds %d slots", len(r.Party), MaxParty)
	}

	buf := out[:]
	for i, p := range r.Party {
		encoded, err := EncodePokemon(species, moves, chars, p)
		if err != nil {
			return out, err
		}
		if _, err := WriteBytes(buf, i*PokemonSize, encoded[:]); err != nil {
			return out, err
		}
	}

	partySize := PokemonSize * MaxParty
	year := uint16(((r.Year % 2000) + 2000) % 2000) //nolint:gosec // stored mod 2000, always fits u16
	at, err := Write16(buf, partySize, year)
	if err != nil {
		return out, err
	}
	if at, err = Write8(buf, at, r.Month); err != nil {
		return out, err
	}
	if _, err = Write8(buf, at, r.Day); err != nil {
		return out, err
	}
	return out, nil
}
