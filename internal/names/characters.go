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

package names

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DevreeseJorik/ASE-sim/internal/errs"
)

// terminator is the 16-bit unit that marks the end of a name field.
const terminator uint16 = 0xFFFF

// CharacterSource is either a run of display text to encode against a
// [Characters] map, or an already-numeric sequence of 16-bit character codes
// to copy in verbatim. Construct one with [Text] or [Codes].
type CharacterSource interface {
	isCharacterSource()
}

// Text encodes s character-by-character against the character map.
func Text(s string) CharacterSource { return textSource(s) }

// Codes copies an already-resolved sequence of character codes verbatim,
// subject to the same truncation and terminator rules as [Text].
func Codes(codes []uint16) CharacterSource { return codeSource(codes) }

type textSource string

func (textSource) isCharacterSource() {}

type codeSource []uint16

func (codeSource) isCharacterSource() {}

// CharacterEntry is one row of the character resource file: a source
// character and the save format's code(s) for it. When a character maps to
// more than one code, the first is canonical.
type CharacterEntry struct {
	Char  rune
	Codes []uint16
}

// Characters is an immutable character map plus the name-encoding policy
// (terminator enforcement) it was built with.
type Characters struct {
	lookup            map[rune]uint16
	enforceTerminator bool
	log               *zerolog.Logger
}

// CharactersOption configures a [Characters] map at construction time.
type CharactersOption func(*Characters)

// WithTerminatorPolicy sets whether [Characters.EncodeName] forces a 0xFFFF
// terminator into the name array. Defaults to true.
func WithTerminatorPolicy(enforce bool) CharactersOption {
	return func(c *Characters) { c.enforceTerminator = enforce }
}

// WithCharacterLogger directs truncation warnings to log instead of
// discarding them.
func WithCharacterLogger(log *zerolog.Logger) CharactersOption {
	return func(c *Characters) { c.log = log }
}

// NewCharacters builds an immutable character map from resource entries.
func NewCharacters(entries []CharacterEntry, opts ...CharactersOption) *Characters {
	c := &Characters{
		lookup:            make(map[rune]uint16, len(entries)),
		enforceTerminator: true,
	}
	for _, e := range entries {
		if len(e.Codes) == 0 {
			continue
		}
		if _, ok := c.lookup[e.Char]; ok {
			continue
		}
		c.lookup[e.Char] = e.Codes[0]
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		nop := zerolog.Nop()
		c.log = &nop
	}
	return c
}

// EncodeName encodes source into a fixed-length array of capacity 16-bit
// units, truncating with a warning if source overflows capacity, and
// enforcing a terminator under the construction-time policy.
//
// Returns [errs.ErrUnknownName] if source is [Text] and contains a character
// with no entry in the map.
func (c *Characters) EncodeName(source CharacterSource, capacity int) ([]uint16, error) {
	var codes []uint16
	switch v := source.(type) {
	case textSource:
		codes = make([]uint16, 0, len(v))
		for _, r := range string(v) {
			code, ok := c.lookup[r]
			if !ok {
				return nil, errs.Wrap(errs.ErrUnknownName, "character %q", r)
			}
			codes = append(codes, code)
		}
	case codeSource:
		codes = []uint16(v)
	default:
		return nil, fmt.Errorf("asesim/names: unsupported character source %T", source)
	}

	out := make([]uint16, capacity)
	if capacity <= 0 {
		return out, nil
	}

	// One slot is always reserved for a potential terminator, matching the
	// original encoder's truncation boundary, regardless of whether the
	// terminator is ultimately written.
	limit := capacity - 1
	n := len(codes)
	if n > limit {
		if limit < 0 {
			limit = 0
		}
		c.log.Warn().
			Int("length", n).
			Int("capacity", capacity).
			Msg("name truncated to capacity")
		n = limit
	}
	copy(out, codes[:n])
	lastWritten := n - 1

	if c.enforceTerminator {
		at := lastWritten + 1
		if at > capacity-1 {
			at = capacity - 1
		}
		if out[at] != terminator {
			if at == lastWritten {
				c.log.Warn().Msg("overwriting last character with terminator")
			}
			out[at] = terminator
		}
	}
	return out, nil
}
