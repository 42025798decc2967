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

package tracer

import (
	"github.com/rs/zerolog"
	"github.com/timandy/routine"
)

// Tracer logs driver progress tagged with the calling goroutine's id. The
// zero value is silent.
type Tracer struct {
	log *zerolog.Logger
}

// New wraps log for goroutine-tagged tracing. A nil log produces a silent
// Tracer.
func New(log *zerolog.Logger) Tracer {
	return Tracer{log: log}
}

// Debugf logs a debug-level trace line tagged with the current goroutine id.
func (t Tracer) Debugf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.Debug().
		Int64("goroutine", routine.Goid()).
		Msgf(format, args...)
}

// Warnf logs a warn-level trace line tagged with the current goroutine id.
func (t Tracer) Warnf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.Warn().
		Int64("goroutine", routine.Goid()).
		Msgf(format, args...)
}
