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

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DevreeseJorik/ASE-sim/internal/interp"
	"github.com/DevreeseJorik/ASE-sim/internal/opcode"
	"github.com/DevreeseJorik/ASE-sim/internal/sync2"
	"github.com/DevreeseJorik/ASE-sim/internal/tracer"
)

// HitMap is the result of a full sweep: for each outer base (in sweep
// order), a boolean vector across the inner sweep recording which trials
// landed in the payload window.
type HitMap struct {
	OuterBases []int
	Hits       [][]bool
}

// Map returns the hit-map as outer-base -> hit vector, for callers that
// prefer random access over sweep order.
func (h HitMap) Map() map[int][]bool {
	m := make(map[int][]bool, len(h.OuterBases))
	for i, base := range h.OuterBases {
		m[base] = h.Hits[i]
	}
	return m
}

// Bases returns the outer base addresses in sweep order. Satisfies
// stats.HitMap.
func (h HitMap) Bases() []int {
	return h.OuterBases
}

// HitsFor returns the inner-sweep hit vector for the given outer base, or
// nil if base was not part of the sweep.
func (h HitMap) HitsFor(base int) []bool {
	for i, b := range h.OuterBases {
		if b == base {
			return h.Hits[i]
		}
	}
	return nil
}

var bufferPool = sync2.Pool[[]byte]{}

// Run sweeps the outer and inner base-address grids described by opts,
// placing hof into a freshly zeroed address space at each outer base and
// interpreting from each inner base's entry point, looking for a cursor
// that lands inside window.
//
// Outer-base trials run across a bounded worker pool (see [WithWorkers]);
// each worker owns its own address-space buffer, recycled across outer
// bases it handles via an internal pool. Inner-base trials for a given outer
// base run sequentially against that buffer, which is read-only once
// installed — matching the "MUST NOT mutate across inner iterations" rule.
//
// Run is pure: the same table, hof, window, and opts always produce the
// same [HitMap]. Returns ctx.Err() if ctx is canceled between outer-base
// trials; cancellation is never observed mid-trial.
func Run(ctx context.Context, table *opcode.Table, hof []byte, window Window, opts Options, trace tracer.Tracer) (HitMap, error) {
	result := HitMap{
		OuterBases: make([]int, opts.Outer.Count),
		Hits:       make([][]bool, opts.Outer.Count),
	}
	for i := range result.OuterBases {
		result.OuterBases[i] = opts.Outer.At(i)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i := 0; i < opts.Outer.Count; i++ {
		i := i
		outerBase := result.OuterBases[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			buf, drop := bufferPool.Get()
			defer drop()
			if len(*buf) != opts.AddressSpace {
				*buf = make([]byte, opts.AddressSpace)
			}

			hits := runOuter(table, *buf, hof, outerBase, window, opts, trace)
			result.Hits[i] = hits
			trace.Debugf("outer base %#x: %d/%d hits", outerBase, countTrue(hits), len(hits))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return HitMap{}, err
	}
	return result, nil
}

// runOuter installs hof at outerBase in buf (zeroing it first) and runs the
// full inner sweep against it.
func runOuter(table *opcode.Table, buf []byte, hof []byte, outerBase int, window Window, opts Options, trace tracer.Tracer) []bool {
	clear(buf)
	copy(buf[outerBase+opts.HOFOffset:], hof)

	hits := make([]bool, opts.Inner.Count)
	for j := 0; j < opts.Inner.Count; j++ {
		innerBase := opts.Inner.At(j)
		hits[j] = runInner(table, buf, innerBase, window, opts)
	}
	return hits
}

// runInner interprets from innerBase's entry point, reporting whether the
// cursor ever lands inside the payload window before an abort, the
// entry-relative range cap, or the step cap.
func runInner(table *opcode.Table, mem []byte, innerBase int, window Window, opts Options) bool {
	start := innerBase + opts.EntryOffset
	cursor := start
	payloadMin := innerBase + window.Min
	payloadMax := innerBase + window.Max

	for step := 0; step < opts.ExecutionLimit; step++ {
		if cursor >= start+opts.RangeLimit {
			return false
		}

		res := interp.Step(mem, cursor, table)
		if !res.Success {
			return false
		}
		cursor = res.Cursor

		if cursor >= payloadMin && cursor <= payloadMax {
			return true
		}
	}
	return false
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
