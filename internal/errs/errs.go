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

// Package errs holds the sentinel error values shared by every layer of the
// encoder, so that both the public API and the internal packages it delegates
// to can raise and compare against the same identity with [errors.Is].
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName is returned when a species, move, or character has no
	// entry in its resource table.
	ErrUnknownName = errors.New("unknown name")

	// ErrPartyOverflow is returned when a Hall-of-Fame record is given more
	// than six party members.
	ErrPartyOverflow = errors.New("party overflow")

	// ErrRecordOverflow is returned when more records are supplied than the
	// 30-slot Hall-of-Fame ring can hold.
	ErrRecordOverflow = errors.New("record overflow")

	// ErrOutOfBounds is returned by the byte packer when a write would cross
	// a record boundary.
	ErrOutOfBounds = errors.New("write out of bounds")
)

// Wrap attaches positional detail to one of the sentinels above, preserving
// it for [errors.Is] via %w.
func Wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
