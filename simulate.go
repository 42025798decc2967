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
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DevreeseJorik/ASE-sim/internal/sim"
	"github.com/DevreeseJorik/ASE-sim/internal/stats"
	"github.com/DevreeseJorik/ASE-sim/internal/tracer"
)

// Simulate sweeps the outer (Hall-of-Fame placement) and inner (interpreter
// entry) base-address grids, placing hof into a freshly zeroed address
// space at each outer base and interpreting from each inner base's entry
// point, looking for a cursor that lands inside window.
//
// Every call is stamped with a fresh run id, logged on the call's opening
// debug line and included in any error it returns. The driver's per-outer-base
// trace lines are tagged with a goroutine id, not with the run id.
func (r *Runtime) Simulate(ctx context.Context, hof []byte, window Window, opts ...SimOption) (HitMap, error) {
	cfg := sim.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	trace := tracer.New(r.log)
	trace.Debugf("simulate run=%s outer=%d inner=%d", runID, cfg.Outer.Count, cfg.Inner.Count)

	hits, err := sim.Run(ctx, r.opcodes, hof, window, cfg, trace)
	if err != nil {
		return HitMap{}, fmt.Errorf("asesim: simulate run=%s: %w", runID, err)
	}
	return hits, nil
}

// Summarize reduces a [HitMap] to per-outer and overall success rates.
func Summarize(h HitMap) Summary {
	return stats.Summarize(h)
}
