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
	"runtime"
	"sync"

	"github.com/marcopapini/librbd/internal/vec"
)

// Capability is the process-wide, lazily-initialized, immutable snapshot of
// the number of cores visible to the process and the set of vector tiers it
// is safe to use. It never changes after first query and is the only state
// (besides a caller-installed logger, see SetLogger) that survives across
// calls.
type Capability struct {
	NumCores int

	tiers map[vec.Tier]bool
}

// Supports reports whether tier t is available on this CPU.
func (c Capability) Supports(t vec.Tier) bool {
	return c.tiers[t]
}

// BestTier returns the widest available tier, in the fixed preference
// order AVX512x8 > AVX2FMAx4 > AVX2x4 > NEONx2 > SSE2x2 > RVVxVL > Scalar.
// Scalar is always available, so BestTier never returns an unsupported tier.
func (c Capability) BestTier() vec.Tier {
	for _, t := range []vec.Tier{vec.AVX512x8, vec.AVX2FMAx4, vec.AVX2x4, vec.NEONx2, vec.SSE2x2, vec.RVVxVL} {
		if c.tiers[t] {
			return t
		}
	}
	return vec.Scalar
}

// detectTiers reports the set of tiers this build+CPU combination supports,
// beyond the always-available Scalar. Implemented per architecture in
// capability_amd64.go / capability_arm64.go / capability_other.go — one file
// per platform; the amd64 and arm64 probes query golang.org/x/sys/cpu, and
// the fallback reports no tiers beyond Scalar.
var detectTiers func() []vec.Tier

var capabilitiesOnce = sync.OnceValue(func() Capability {
	tiers := map[vec.Tier]bool{vec.Scalar: true}
	if detectTiers != nil {
		for _, t := range detectTiers() {
			tiers[t] = true
		}
	}
	return Capability{NumCores: numCores(), tiers: tiers}
})

// numCores reports the number of cores the partitioner may use. Always >= 1.
func numCores() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// Capabilities returns the cached capability snapshot, probing the CPU on
// first call. Safe for concurrent use; the query happens at most once.
func Capabilities() Capability {
	return capabilitiesOnce()
}
