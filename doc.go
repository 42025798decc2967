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

// Package asesim models an arbitrary-code-execution exploit against a
// cartridge-style RPG save file.
//
// It encodes a structured, human-authored description of a Hall-of-Fame save
// block into a bit-exact byte image, places that image inside a large
// emulated address space at a chosen base address, and interprets the
// game's on-cartridge scripting bytecode starting from a fixed entry point.
// Sweeping a grid of candidate base addresses determines how often
// interpretation drifts into an attacker-controlled payload window.
//
// Construct a [Runtime] once from the game's resource files, then call
// [Runtime.BuildHallOfFame] to assemble the save block and [Runtime.Simulate]
// to sweep the address-space grid. [Summarize] reduces the resulting hit-map
// to success rates.
//
// # Support status
//
// Conditional jumps are not evaluated; every jump is taken regardless of its
// condition, so branches do not follow the cartridge's own flag state. No CPU
// or OS emulation,
// save-file I/O, or RNG manipulation is performed.
package asesim
