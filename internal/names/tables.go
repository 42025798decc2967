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
	"github.com/DevreeseJorik/ASE-sim/internal/errs"
)

// Table is an ordered list of names, such as species or moves, where a
// name's position in the list is its numeric ID. It is built once by
// [NewTable] and never mutated afterward.
type Table struct {
	kind  string
	names []string
	index map[string]uint16
}

// NewTable builds an immutable lookup table from an ordered list of names,
// indexed by position. kind is used only to make error messages legible
// (e.g. "species", "move").
func NewTable(kind string, ordered []string) *Table {
	index := make(map[string]uint16, len(ordered))
	for i, n := range ordered {
		if _, ok := index[n]; !ok {
			index[n] = uint16(i) //nolint:gosec // table sizes are well under 1<<16 in practice
		}
	}
	return &Table{kind: kind, names: ordered, index: index}
}

// Resolve turns a [Ref] into its numeric ID, looking up names against this
// table. Returns [errs.ErrUnknownName] if ref names an entry this table does
// not contain.
func (t *Table) Resolve(ref Ref) (uint16, error) {
	return ref.resolve(t)
}

// Len reports the number of names in the table.
func (t *Table) Len() int { return len(t.names) }

// Name returns the display name at id, or "" if id is out of range (IDs
// beyond the known list are legal; see [ByID]).
func (t *Table) Name(id uint16) string {
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

func (t *Table) byName(name string) (uint16, error) {
	id, ok := t.index[name]
	if !ok {
		return 0, errs.Wrap(errs.ErrUnknownName, "%s %q", t.kind, name)
	}
	return id, nil
}
