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
	"github.com/rs/zerolog"

	"github.com/DevreeseJorik/ASE-sim/internal/resources"
)

// LoadSpeciesTable parses an ordered species list into a [Table].
func LoadSpeciesTable(data []byte) (*Table, error) { return resources.LoadSpeciesTable(data) }

// LoadMoveTable parses an ordered move list into a [Table].
func LoadMoveTable(data []byte) (*Table, error) { return resources.LoadMoveTable(data) }

// LoadCharacters parses a character map resource into a [Characters] value.
func LoadCharacters(data []byte, opts ...CharactersOption) (*Characters, error) {
	return resources.LoadCharacters(data, opts...)
}

// LoadOpcodeTable parses an opcode table resource, keyed by hexadecimal
// opcode id, into an [OpcodeTable].
func LoadOpcodeTable(data []byte, log *zerolog.Logger) (*OpcodeTable, error) {
	return resources.LoadOpcodeTable(data, log)
}

// DefaultSpecies loads this module's bundled default species table.
func DefaultSpecies() (*Table, error) { return resources.DefaultSpecies() }

// DefaultMoves loads this module's bundled default move table.
func DefaultMoves() (*Table, error) { return resources.DefaultMoves() }

// DefaultCharacters loads this module's bundled default character map.
func DefaultCharacters(opts ...CharactersOption) (*Characters, error) {
	return resources.DefaultCharacters(opts...)
}

// DefaultOpcodes loads this module's bundled default opcode table.
func DefaultOpcodes(log *zerolog.Logger) (*OpcodeTable, error) { return resources.DefaultOpcodes(log) }
