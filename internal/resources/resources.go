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

package resources

import (
	"embed"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/DevreeseJorik/ASE-sim/internal/names"
	"github.com/DevreeseJorik/ASE-sim/internal/opcode"
)

//go:embed default/species.yaml
var defaultSpeciesYAML []byte

//go:embed default/moves.yaml
var defaultMovesYAML []byte

//go:embed default/characters.yaml
var defaultCharactersYAML []byte

//go:embed default/opcodes.yaml
var defaultOpcodesYAML []byte

// defaultFS exposes the bundled resource set as an embed.FS, for callers
// that want to read the raw files rather than go through the typed
// loaders.
//
//go:embed default
var defaultFS embed.FS

// DefaultFS returns the embedded default resource set.
func DefaultFS() embed.FS { return defaultFS }

// LoadSpeciesTable parses an ordered species list into a [names.Table].
func LoadSpeciesTable(data []byte) (*names.Table, error) {
	return loadOrderedTable("species", data)
}

// DefaultSpecies loads the bundled default species table.
func DefaultSpecies() (*names.Table, error) {
	return LoadSpeciesTable(defaultSpeciesYAML)
}

// LoadMoveTable parses an ordered move list into a [names.Table].
func LoadMoveTable(data []byte) (*names.Table, error) {
	return loadOrderedTable("move", data)
}

// DefaultMoves loads the bundled default move table.
func DefaultMoves() (*names.Table, error) {
	return LoadMoveTable(defaultMovesYAML)
}

func loadOrderedTable(kind string, data []byte) (*names.Table, error) {
	var ordered []string
	if err := yaml.Unmarshal(data, &ordered); err != nil {
		return nil, fmt.Errorf("asesim/resources: parse %s table: %w", kind, err)
	}
	return names.NewTable(kind, ordered), nil
}

// characterEntryYAML is the on-disk shape of one character-map row.
type characterEntryYAML struct {
	Char  string   `yaml:"char"`
	Codes []uint16 `yaml:"codes"`
}

// LoadCharacters parses a character map resource into a [names.Characters].
func LoadCharacters(data []byte, opts ...names.CharactersOption) (*names.Characters, error) {
	var raw []characterEntryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("asesim/resources: parse character map: %w", err)
	}

	entries := make([]names.CharacterEntry, 0, len(raw))
	for _, r := range raw {
		runes := []rune(r.Char)
		if len(runes) != 1 {
			return nil, fmt.Errorf("asesim/resources: character entry %q: want exactly one rune", r.Char)
		}
		entries = append(entries, names.CharacterEntry{Char: runes[0], Codes: r.Codes})
	}
	return names.NewCharacters(entries, opts...), nil
}

// DefaultCharacters loads the bundled default character map.
func DefaultCharacters(opts ...names.CharactersOption) (*names.Characters, error) {
	return LoadCharacters(defaultCharactersYAML, opts...)
}

// opcodeEntryYAML is the on-disk shape of one opcode table row.
type opcodeEntryYAML struct {
	Name       string   `yaml:"name"`
	Parameters []string `yaml:"parameters"`
	Advancer   string   `yaml:"advancer"`
}

// LoadOpcodeTable parses an opcode table resource, keyed by hexadecimal
// opcode id (e.g. "0x0040"), into an [opcode.Table].
func LoadOpcodeTable(data []byte, log *zerolog.Logger) (*opcode.Table, error) {
	var raw map[string]opcodeEntryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("asesim/resources: parse opcode table: %w", err)
	}

	entries := make(map[uint16]opcode.RawEntry, len(raw))
	for key, e := range raw {
		id, err := parseOpcodeID(key)
		if err != nil {
			return nil, fmt.Errorf("asesim/resources: opcode key %q: %w", key, err)
		}
		entries[id] = opcode.RawEntry{
			Name:       e.Name,
			Parameters: e.Parameters,
			Advancer:   e.Advancer,
		}
	}
	return opcode.Load(entries, log)
}

// DefaultOpcodes loads the bundled default opcode table.
func DefaultOpcodes(log *zerolog.Logger) (*opcode.Table, error) {
	return LoadOpcodeTable(defaultOpcodesYAML, log)
}
