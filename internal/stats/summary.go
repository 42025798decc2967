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

package stats

// OuterRate is the observed success rate for one outer base, across its
// full inner sweep.
type OuterRate struct {
	OuterBase int
	Hits      int
	Trials    int
	rate      float64
}

// Rate returns the mean hit rate across this base's trials, or 0 if there
// were no trials.
func (r OuterRate) Rate() float64 {
	return r.rate
}

// Summary is the reduction of a full sweep down to success rates: one rate
// per outer base, plus the rate across every trial in the sweep.
type Summary struct {
	Outer   []OuterRate
	Overall OuterRate
}

// HitMap is the shape Summarize needs out of a sweep result, restated here
// so that stats does not need to import the sim package.
type HitMap interface {
	// Bases returns the outer base addresses in sweep order.
	Bases() []int
	// HitsFor returns the inner-sweep hit vector for the given outer base.
	HitsFor(base int) []bool
}

// Summarize reduces h to per-outer and overall success rates, preserving
// outer-base sweep order. Per-base and overall rates are each accumulated
// through a [Mean] over the trial's 0/1 outcome, rather than a single
// end-of-sweep division, so a rate is available even if a future caller
// wants it mid-sweep.
func Summarize(h HitMap) Summary {
	bases := h.Bases()
	s := Summary{Outer: make([]OuterRate, len(bases))}
	overall := &Mean{}

	for i, base := range bases {
		hits := h.HitsFor(base)
		outer := &Mean{}
		rate := OuterRate{OuterBase: base, Trials: len(hits)}
		for _, hit := range hits {
			var sample float64
			if hit {
				sample = 1
				rate.Hits++
			}
			outer.Record(sample)
			overall.Record(sample)
		}
		rate.rate = outer.Get()
		s.Outer[i] = rate

		s.Overall.Trials += rate.Trials
		s.Overall.Hits += rate.Hits
	}
	s.Overall.rate = overall.Get()

	return s
}
