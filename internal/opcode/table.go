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

package opcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Advancer selects the specialized handler that consumes an opcode's
// parameter bytes and advances the interpreter's cursor.
type Advancer int

const (
	// Generic reads every declared parameter and validates work values.
	Generic Advancer = iota
	// Jump reads every declared parameter like Generic, but additionally
	// applies signed relative jumps for parameters named like one.
	Jump
	// Invalid marks an opcode whose resource entry named an advancer tag
	// this loader does not recognize. The interpreter always aborts on it.
	Invalid
)

// Param is one parameter slot of an opcode: a name (used to detect work
// values and jump offsets by substring) and the width in bytes it consumes.
type Param struct {
	Name  string
	Width int
}

// Opcode is one entry of the opcode table: its id, a name used only to
// classify halting instructions, its ordered parameter list, and the
// advancer that consumes them.
type Opcode struct {
	ID       uint16
	Name     string
	Params   []Param
	Advancer Advancer
}

// Halts reports whether this opcode's name classifies it as a halting
// instruction ("end" or "return"), matching case-insensitively.
func (o Opcode) Halts() bool {
	switch strings.ToLower(o.Name) {
	case "end", "return":
		return true
	default:
		return false
	}
}

// Table is an immutable, indexed opcode table built once by [Load].
type Table struct {
	byID map[uint16]Opcode
}

// Lookup returns the opcode registered for id, or false if none is.
func (t *Table) Lookup(id uint16) (Opcode, bool) {
	op, ok := t.byID[id]
	return op, ok
}

// Len reports the number of opcodes in the table.
func (t *Table) Len() int { return len(t.byID) }

// defaultParamWidth is the width assumed for a parameter whose resource
// entry does not specify one explicitly, per the "every parameter slot is 2
// bytes unless the table says otherwise" convention (spec §9, open question).
const defaultParamWidth = 2

// RawEntry is the resource-file shape for one opcode: a name, an ordered
// list of parameter descriptors, and an optional advancer tag.
//
// Each Parameters entry is either a bare name (taking [defaultParamWidth])
// or "name:width" to override the width. A name repeated verbatim (with or
// without an explicit width) is preserved as an additional positional
// parameter of the same name, per spec §3/§4.F.
type RawEntry struct {
	Name       string
	Parameters []string
	Advancer   string // "", "generic", or "jump"
}

// Load parses a static opcode description into an indexed [Table]. Unknown
// advancer tags are logged as a warning and degrade that single opcode to
// [Invalid], which the interpreter always treats as an abort.
func Load(entries map[uint16]RawEntry, log *zerolog.Logger) (*Table, error) {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	t := &Table{byID: make(map[uint16]Opcode, len(entries))}
	for id, raw := range entries {
		params := make([]Param, 0, len(raw.Parameters))
		for _, p := range raw.Parameters {
			name, width, err := parseParam(p)
			if err != nil {
				return nil, fmt.Errorf("asesim/opcode: opcode %#04x: %w", id, err)
			}
			params = append(params, Param{Name: name, Width: width})
		}

		advancer, err := parseAdvancer(raw.Advancer)
		if err != nil {
			log.Warn().
				Uint16("opcode", id).
				Str("advancer", raw.Advancer).
				Msg("unknown advancer tag; opcode will always abort")
			advancer = Invalid
		}

		t.byID[id] = Opcode{
			ID:       id,
			Name:     raw.Name,
			Params:   params,
			Advancer: advancer,
		}
	}
	return t, nil
}

func parseParam(spec string) (name string, width int, err error) {
	name, widthStr, hasWidth := strings.Cut(spec, ":")
	if !hasWidth {
		return name, defaultParamWidth, nil
	}
	width, err = strconv.Atoi(widthStr)
	if err != nil {
		return "", 0, fmt.Errorf("parameter %q: invalid width: %w", spec, err)
	}
	return name, width, nil
}

func parseAdvancer(tag string) (Advancer, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "":
		return Generic, nil
	case "generic":
		return Generic, nil
	case "jump":
		return Jump, nil
	default:
		return Invalid, fmt.Errorf("unrecognized advancer %q", tag)
	}
}
