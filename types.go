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

import (
	"github.com/DevreeseJorik/ASE-sim/internal/layout"
	"github.com/DevreeseJorik/ASE-sim/internal/names"
	"github.com/DevreeseJorik/ASE-sim/internal/opcode"
	"github.com/DevreeseJorik/ASE-sim/internal/sim"
	"github.com/DevreeseJorik/ASE-sim/internal/stats"
)

// OpcodeTable is the immutable, indexed dispatch table the interpreter
// steps against. Build one with [LoadOpcodeTable] or [DefaultOpcodes].
type OpcodeTable = opcode.Table

// HitMap is the result of a full sweep: a boolean vector per outer base
// recording which inner-sweep trials landed in the payload window.
type HitMap = sim.HitMap

// Summary is the reduction of a [HitMap] to per-outer and overall success
// rates, produced by [Summarize].
type Summary = stats.Summary

// OuterRate is the observed success rate for one outer base, across its
// full inner sweep.
type OuterRate = stats.OuterRate

// Table is an immutable species or move lookup, indexed by position. Build
// one with [LoadSpeciesTable], [LoadMoveTable], or their Default
// counterparts.
type Table = names.Table

// Characters is an immutable character map used to encode in-game text.
// Build one with [LoadCharacters] or [DefaultCharacters].
type Characters = names.Characters

// Ref identifies a species or a move, either by display name or by the
// numeric id the save format stores directly.
type Ref = names.Ref

// Named refers to a [Table] entry by its display name.
func Named(name string) Ref { return names.Named(name) }

// ByID refers to a [Table] entry directly by its numeric id, bypassing name
// resolution.
func ByID(id uint16) Ref { return names.ByID(id) }

// CharacterSource is a run of display text, or an already-resolved sequence
// of character codes, to encode into a fixed-length name field.
type CharacterSource = names.CharacterSource

// Text encodes s character-by-character against a [Characters] map.
func Text(s string) CharacterSource { return names.Text(s) }

// Codes copies an already-resolved sequence of character codes verbatim.
func Codes(codes []uint16) CharacterSource { return names.Codes(codes) }

// CharactersOption configures a [Characters] map at construction time.
type CharactersOption = names.CharactersOption

// WithTerminatorPolicy sets whether name encoding forces a terminator code
// into the trailing slot it reserves. Defaults to true.
func WithTerminatorPolicy(enforce bool) CharactersOption {
	return names.WithTerminatorPolicy(enforce)
}

// Pokemon is the structured description of one creature in a Hall-of-Fame
// party slot.
type Pokemon = layout.Pokemon

// Record is one Hall-of-Fame entry: a party of up to six Pokémon and the
// date it was recorded.
type Record = layout.Record

// MaxParty is the number of party slots in one [Record].
const MaxParty = layout.MaxParty

// MaxRecords is the number of ring slots in a Hall-of-Fame block.
const MaxRecords = layout.MaxRecords

// PokemonSize is the fixed, padded size of one encoded Pokémon record.
const PokemonSize = layout.PokemonSize

// RecordSize is the fixed size of one encoded Hall-of-Fame record.
const RecordSize = layout.RecordSize

// HallOfFameSize is the fixed size of an encoded Hall-of-Fame block.
const HallOfFameSize = layout.HallOfFameSize
