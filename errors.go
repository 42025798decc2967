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

import "github.com/DevreeseJorik/ASE-sim/internal/errs"

// Sentinel error kinds surfaced by the core, per the error handling design.
//
// All of these are fatal to the encode that produced them; use [errors.Is] to
// classify an error returned by [Runtime.BuildHallOfFame] or its components.
// Trial aborts during interpretation are not errors at all — they show up as
// `false` entries in a [HitMap].
var (
	// ErrUnknownName is returned when a species, move, or character has no
	// entry in its resource table.
	ErrUnknownName = errs.ErrUnknownName

	// ErrPartyOverflow is returned when a Hall-of-Fame record is given more
	// than six party members.
	ErrPartyOverflow = errs.ErrPartyOverflow

	// ErrRecordOverflow is returned when more records are supplied than the
	// 30-slot Hall-of-Fame ring can hold.
	ErrRecordOverflow = errs.ErrRecordOverflow

	// ErrOutOfBounds is returned by the byte packer when a write would cross
	// a record boundary. Seeing this on well-formed input indicates a bug in
	// the encoder, not in the caller's data.
	ErrOutOfBounds = errs.ErrOutOfBounds
)
