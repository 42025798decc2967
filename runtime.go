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

	"github.com/DevreeseJorik/ASE-sim/internal/names"
	"github.com/DevreeseJorik/ASE-sim/internal/resources"
)

// Runtime bundles the immutable resource set an exploit simulation runs
// against: species and move tables, a character map, and an opcode table.
// Build one with [NewRuntime]; it is safe for concurrent use once built,
// since nothing mutates it afterward.
type Runtime struct {
	species *Table
	moves   *Table
	chars   *Characters
	opcodes *OpcodeTable
	log     *zerolog.Logger
}

// NewRuntime builds a Runtime. Any resource not supplied via a
// [RuntimeOption] is loaded from this module's bundled defaults.
func NewRuntime(opts ...RuntimeOption) (*Runtime, error) {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		nop := zerolog.Nop()
		r.log = &nop
	}

	var err error
	if r.species == nil {
		if r.species, err = resources.DefaultSpecies(); err != nil {
			return nil, err
		}
	}
	if r.moves == nil {
		if r.moves, err = resources.DefaultMoves(); err != nil {
			return nil, err
		}
	}
	if r.chars == nil {
		if r.chars, err = resources.DefaultCharacters(WithCharacterLogger(r.log)); err != nil {
			return nil, err
		}
	}
	if r.opcodes == nil {
		if r.opcodes, err = resources.DefaultOpcodes(r.log); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithCharacterLogger directs name-truncation warnings to log instead of
// discarding them.
func WithCharacterLogger(log *zerolog.Logger) CharactersOption {
	return names.WithCharacterLogger(log)
}

// SpeciesTable returns the runtime's species lookup table.
func (r *Runtime) SpeciesTable() *Table { return r.species }

// MoveTable returns the runtime's move lookup table.
func (r *Runtime) MoveTable() *Table { return r.moves }

// Characters returns the runtime's character map.
func (r *Runtime) Characters() *Characters { return r.chars }

// OpcodeTable returns the runtime's opcode dispatch table.
func (r *Runtime) OpcodeTable() *OpcodeTable { return r.opcodes }
