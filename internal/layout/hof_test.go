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

package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevreeseJorik/ASE-sim/internal/errs"
	"github.com/DevreeseJorik/ASE-sim/internal/layout"
	"github.com/DevreeseJorik/ASE-sim/internal/names"
)

func TestEncodeHallOfFameRingRotation(t *testing.T) {
	t.Parallel()

	species, moves, chars := testTables(t)

	record := layout.Record{
		Party: []layout.Pokemon{{Species: names.ByID(1)}},
		Year:  2076, Month: 1, Day: 1,
	}
	records := []layout.Record{record, record, record}

	// record_start=27 places the three records at ring slots 27, 28, 29 —
	// the last three of the 30-slot block.
	out, err := layout.EncodeHallOfFame(species, moves, chars, records, 27)
	require.NoError(t, err)

	encoded, err := layout.EncodeRecord(species, moves, chars, record)
	require.NoError(t, err)

	assert.Equal(t, encoded[:], out[27*layout.RecordSize:28*layout.RecordSize])
	assert.Equal(t, encoded[:], out[28*layout.RecordSize:29*layout.RecordSize])
	assert.Equal(t, encoded[:], out[29*layout.RecordSize:30*layout.RecordSize])

	var zero [layout.RecordSize]byte
	assert.Equal(t, zero[:], out[0:layout.RecordSize])
}

func TestEncodeHallOfFameOverflow(t *testing.T) {
	t.Parallel()

	species, moves, chars := testTables(t)
	records := make([]layout.Record, layout.MaxRecords+1)
	_, err := layout.EncodeHallOfFame(species, moves, chars, records, 0)
	assert.True(t, errors.Is(err, errs.ErrRecordOverflow))
}

func TestEncodeRecordPartyOverflow(t *testing.T) {
	t.Parallel()

	species, moves, chars := testTables(t)
	r := layout.Record{Party: make([]layout.Pokemon, layout.MaxParty+1)}
	_, err := layout.EncodeRecord(species, moves, chars, r)
	assert.True(t, errors.Is(err, errs.ErrPartyOverflow))
}

func TestEncodeRecordDateField(t *testing.T) {
	t.Parallel()

	species, moves, chars := testTables(t)
	r := layout.Record{Year: 2076, Month: 1, Day: 1}
	out, err := layout.EncodeRecord(species, moves, chars, r)
	require.NoError(t, err)

	partySize := layout.PokemonSize * layout.MaxParty
	assert.Equal(t, []byte{76, 0, 1, 1}, out[partySize:partySize+4])
}
