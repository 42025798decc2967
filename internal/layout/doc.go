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

// Package layout assembles the bit-exact Hall-of-Fame byte image: a little-
// endian byte packer (this package's [Write8], [Write16], [Write32], and
// [WriteBytes]), and the three encoders built on top of it ([EncodePokemon],
// [EncodeRecord], [EncodeHallOfFame]) that turn a structured, human-authored
// description into the exact layout the cartridge expects.
package layout
