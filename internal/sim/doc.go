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

// Package sim drives the nested base-address sweep: for each outer base it
// places a Hall-of-Fame byte image into a zero-initialized address space,
// then for each inner base it runs the script interpreter from a fixed entry
// point and records whether the cursor ever drifts into the payload window
// before aborting or exhausting its step budget.
//
// Outer-base trials are embarrassingly parallel (each owns its own
// address-space buffer) and run across a bounded worker pool; see [Run].
package sim
