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

// Package tracer provides goroutine-tagged structured logging for the
// simulation driver: every line is tagged with the calling goroutine's id,
// which matters once outer-base trials run concurrently across a worker
// pool.
//
// A zero-value [Tracer] is silent, so callers that don't want trace output
// don't need to special-case it.
package tracer
