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

// Package interp implements a single step of the cartridge's scripting
// bytecode interpreter: fetch an opcode, dispatch it to the generic or
// jump-specialized advancer, and report the resulting cursor and whether
// the step succeeded.
//
// The interpreter never raises; [Step] returns a [Result] pair only. It is
// the caller's responsibility (see package sim) to cap the number of steps
// and the cursor's distance from the entry point — the interpreter itself
// has no notion of either limit.
package interp
