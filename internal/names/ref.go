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

// Ref identifies a species or a move, either by its display name or by the
// numeric ID the save format stores directly. Both species and moves resolve
// the same way, against an ordered [Table], so they share this one type.
//
// Construct a Ref with [Named] or [ByID].
type Ref interface {
	resolve(t *Table) (uint16, error)
}

// Named refers to an entry by its display name, as listed in the resource
// file a [Table] was built from.
func Named(name string) Ref { return byName(name) }

// ByID refers to an entry directly by its numeric ID, bypassing name
// resolution. The ID is not validated against the table's length; the save
// format allows IDs beyond the known name list.
func ByID(id uint16) Ref { return byID(id) }

type byName string

func (n byName) resolve(t *Table) (uint16, error) { return t.byName(string(n)) }

type byID uint16

func (id byID) resolve(*Table) (uint16, error) { return uint16(id), nil }
