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

// MaxRecords is the number of ring slots in a Hall-of-Fame block.
const MaxRecords = 30

// HallOfFameSize is the fixed size of an encoded Hall-of-Fame block.
const HallOfFameSize = RecordSize * MaxRecords

// EncodeHallOfFame assembles up to [MaxRecords] records into a ring-indexed
// block. Record i is placed at slot (i + start) mod [MaxRecords]; unused
// slots are left zero. Returns [errs.ErrRecordOverflow] if more than
// [MaxRecords] records are supplied — no slot is ever overwritten.
func EncodeHallOfFame(species, moves *names.Table, chars *names.Characters, records []Record, start int) ([HallOfFameSize]byte, error) {
	var out [HallOfFameSize]byte
	if len(records) > MaxRecords {
		return out, errs.Wrap(errs.ErrRecordOverflow, "%d records exceeds %d slots", len(records), MaxRecords)
	}

	buf := out[:]
	for i, r := range records {
		slot := (i + start) % MaxRecords
		if slot < 0 {
			slot += MaxRecords
		}
		encoded, err := EncodeRecord(species, moves, chars, r)
		if err != nil {
			return out, err
		}
		if _, err := WriteBytes(buf, slot*RecordSize, encoded[:]); err != nil {
			return out, err
		}
	}
	return out, nil
}
