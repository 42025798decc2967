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

// Package names resolves species, move, and character names to the numeric
// IDs the save-file format actually stores, from static lookup tables loaded
// once at startup.
//
// [Table] and [Characters] are immutable after construction, so they may be
// shared freely across concurrent encodes.
package names
