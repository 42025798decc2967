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

package sim

import "runtime"

// Default sweep parameters, per the exploit's memory layout.
const (
	DefaultSweepStart     = 0x226D260
	DefaultSweepCount     = 0x104 / 4 // 65
	DefaultSweepStride    = 4
	DefaultEntryOffset    = 0x2EAF0
	DefaultHOFOffset      = 0x2C2B8
	DefaultRangeLimit     = 0x800
	DefaultExecutionLimit = 1000
	DefaultAddressSpace   = 0x2400000
)

// SweepRange describes one axis of the nested base-address sweep: Count
// candidate bases starting at Start, each Stride apart.
type SweepRange struct {
	Start  int
	Count  int
	Stride int
}

// DefaultSweep is the inner and outer sweep range shared by the exploit's
// default configuration: 65 bases starting at 0x226D260, stride 4.
func DefaultSweep() SweepRange {
	return SweepRange{Start: DefaultSweepStart, Count: DefaultSweepCount, Stride: DefaultSweepStride}
}

// At returns the i'th base address in the range.
func (r SweepRange) At(i int) int {
	return r.Start + i*r.Stride
}

// Window is the payload region the exploit targets, given as an offset pair
// relative to a base address.
type Window struct {
	Min int
	Max int
}

// Options configures one sweep. Construct with [DefaultOptions] and override
// individual fields or via an [Option].
type Options struct {
	Outer          SweepRange
	Inner          SweepRange
	EntryOffset    int
	HOFOffset      int
	RangeLimit     int
	ExecutionLimit int
	AddressSpace   int
	// Workers bounds the outer-base worker pool. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns the exploit's documented default configuration.
func DefaultOptions() Options {
	return Options{
		Outer:          DefaultSweep(),
		Inner:          DefaultSweep(),
		EntryOffset:    DefaultEntryOffset,
		HOFOffset:      DefaultHOFOffset,
		RangeLimit:     DefaultRangeLimit,
		ExecutionLimit: DefaultExecutionLimit,
		AddressSpace:   DefaultAddressSpace,
	}
}

// Option mutates an [Options] value, for the functional-options style used
// throughout this module.
type Option func(*Options)

// WithOuterSweep overrides the outer (HoF placement) sweep range.
func WithOuterSweep(r SweepRange) Option { return func(o *Options) { o.Outer = r } }

// WithInnerSweep overrides the inner (interpreter entry) sweep range.
func WithInnerSweep(r SweepRange) Option { return func(o *Options) { o.Inner = r } }

// WithExecutionLimit overrides the maximum number of interpreter steps per
// trial.
func WithExecutionLimit(n int) Option { return func(o *Options) { o.ExecutionLimit = n } }

// WithRangeLimit overrides the entry-relative address cap per trial.
func WithRangeLimit(n int) Option { return func(o *Options) { o.RangeLimit = n } }

// WithWorkers bounds the outer-base worker pool. n <= 0 means
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
