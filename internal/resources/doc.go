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

// Package resources loads the static description data the exploit runs
// against: species and move name tables, the character map used to encode
// in-game text, and the opcode table the interpreter dispatches on.
//
// Every loader accepts arbitrary YAML bytes, so callers can supply a
// game-specific resource set; [DefaultSpecies], [DefaultMoves],
// [DefaultCharacters], and [DefaultOpcodes] load the bundled defaults via
// go:embed, grounded on a generation-one-style cartridge layout.
package resources
