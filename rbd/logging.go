// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbd

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// pkgLogger holds the package's zerolog.Logger behind an atomic pointer so
// SetLogger can be called concurrently with entry-point calls without a
// data race. Disabled (zerolog.Nop) until a caller opts in, so the default
// build pays no logging cost — an entry point is otherwise stateless across
// calls, and this is the one piece of package state exempted alongside the
// capability snapshot (§9).
var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger installs l as the package-wide logger. Every entry point emits a
// Debug event on entry and on completion; passing zerolog.Nop() (the
// default) disables this entirely.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

func logCall(op string, n, t int) {
	pkgLogger.Load().Debug().Str("op", op).Int("n", n).Int("t", t).Msg("dispatching")
}

func logResult(op string, err error) {
	ev := pkgLogger.Load().Debug().Str("op", op)
	if err != nil {
		ev.Err(err).Msg("failed")
		return
	}
	ev.Msg("completed")
}

// logDispatch records the partitioning decision a run* function made before
// handing work to dispatch: the tier it selected and the worker count the
// partitioner returned. kEff and failMode are only meaningful for K-of-N and
// are passed -1/false otherwise.
func logDispatch(op string, tier fmt.Stringer, w, kEff int, failMode bool) {
	ev := pkgLogger.Load().Debug().Str("op", op).Str("tier", tier.String()).Int("workers", w)
	if kEff >= 0 {
		ev = ev.Int("k_eff", kEff).Bool("unreliability_mode", failMode)
	}
	ev.Msg("partitioned")
}
