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

package asesim

import "github.com/DevreeseJorik/ASE-sim/internal/layout"

// BuildHallOfFame assembles up to [MaxRecords] records into a ring-indexed
// Hall-of-Fame byte image. Record i is placed at slot (i + start) mod
// [MaxRecords]; unused slots are left zero. Returns [ErrRecordOverflow] if
// more than [MaxRecords] records are supplied, and [ErrPartyOverflow] or
// [ErrUnknownName] if any record fails to encode — no slot is ever
// partially written on error.
func (r *Runtime) BuildHallOfFame(records []Record, start int) ([HallOfFameSize]byte, error) {
	return layout.EncodeHallOfFame(r.species, r.moves, r.chars, records, start)
}

// EncodeRecord serializes one Hall-of-Fame record in isolation, without
// placing it in a ring.
func (r *Runtime) EncodeRecord(record Record) ([RecordSize]byte, error) {
	return layout.EncodeRecord(r.species, r.moves, r.chars, record)
}

// EncodePokemon serializes one party member in isolation.
func (r *Runtime) EncodePokemon(p Pokemon) ([PokemonSize]byte, error) {
	return layout.EncodePokemon(r.species, r.moves, r.chars, p)
}
