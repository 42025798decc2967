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

import (
	"github.com/rs/zerolog"

	"github.com/DevreeseJorik/ASE-sim/internal/sim"
)

// RuntimeOption configures a [Runtime] at construction time. Any table or
// map left unset is loaded from the bundled defaults.
type RuntimeOption func(*Runtime)

// WithSpeciesTable overrides the species lookup table.
func WithSpeciesTable(t *Table) RuntimeOption { return func(r *Runtime) { r.species = t } }

// WithMoveTable overrides the move lookup table.
func WithMoveTable(t *Table) RuntimeOption { return func(r *Runtime) { r.moves = t } }

// WithCharacters overrides the character map.
func WithCharacters(c *Characters) RuntimeOption { return func(r *Runtime) { r.chars = c } }

// WithOpcodeTable overrides the opcode table.
func WithOpcodeTable(t *OpcodeTable) RuntimeOption { return func(r *Runtime) { r.opcodes = t } }

// WithLogger directs the runtime's diagnostic output to log. The zero value
// leaves the runtime silent.
func WithLogger(log *zerolog.Logger) RuntimeOption { return func(r *Runtime) { r.log = log } }

// SweepRange describes one axis of the nested base-address sweep: Count
// candidate bases starting at Start, each Stride apart.
type SweepRange = sim.SweepRange

// Window is the payload region the exploit targets, given as an offset pair
// relative to a base address.
type Window = sim.Window

// SimOptions configures one [Runtime.Simulate] call. Construct with
// [DefaultSimOptions] and override individual fields, or pass [SimOption]
// values to [Runtime.Simulate] instead.
type SimOptions = sim.Options

// DefaultSimOptions returns the exploit's documented default sweep
// configuration.
func DefaultSimOptions() SimOptions { return sim.DefaultOptions() }

// SimOption configures one [Runtime.Simulate] call. Construct sweep ranges
// and limits with [DefaultSimOptions] and override individual settings.
type SimOption = sim.Option

// WithOuterSweep overrides the outer (Hall-of-Fame placement) sweep range.
func WithOuterSweep(r SweepRange) SimOption { return sim.WithOuterSweep(r) }

// WithInnerSweep overrides the inner (interpreter entry) sweep range.
func WithInnerSweep(r SweepRange) SimOption { return sim.WithInnerSweep(r) }

// WithExecutionLimit overrides the maximum number of interpreter steps per
// trial.
func WithExecutionLimit(n int) SimOption { return sim.WithExecutionLimit(n) }

// WithRangeLimit overrides the entry-relative address cap per trial.
func WithRangeLimit(n int) SimOption { return sim.WithRangeLimit(n) }

// WithWorkers bounds the outer-base worker pool. n <= 0 means
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) SimOption { return sim.WithWorkers(n) }

// DefaultSweep is the sweep range shared by the exploit's default
// configuration: 65 bases starting at 0x226D260, stride 4.
func DefaultSweep() SweepRange { return sim.DefaultSweep() }
