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

import "github.com/marcopapini/librbd/internal/vec"

// minBatchSize is MIN_BATCH_SIZE from §4.3: each worker must own at least
// this many lane-groups before the partitioner will hand out another
// worker.
const minBatchSize = 10000

// partition implements §4.3's policy:
//
//	W = ceil(T / max(ceil(T/num_cores), MIN_BATCH_SIZE*L))
//
// capped so W <= num_cores (and, if the caller supplied WithMaxWorkers,
// W <= that cap too). For small T this collapses to W=1, meaning the
// whole call runs inline with no goroutines spawned.
func partition(t, numCores int, tier vec.Tier, cfg config) int {
	l := tier.Width()
	if l < 1 {
		l = 1
	}
	if numCores < 1 {
		numCores = 1
	}

	perCore := ceilDiv(t, numCores)
	denom := perCore
	if minBatch := minBatchSize * l; minBatch > denom {
		denom = minBatch
	}

	w := ceilDiv(t, denom)
	if w < 1 {
		w = 1
	}
	if w > numCores {
		w = numCores
	}
	if cfg.maxWorkers > 0 && w > cfg.maxWorkers {
		w = cfg.maxWorkers
	}
	return w
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// strideGroups walks worker b's share of [0,T) under §4.3's ownership
// discipline: time indices are chunked into lane-width groups of size l,
// and group g belongs to worker g%w. Groups are visited in increasing
// order, so fn sees b*l, b*l+w*l, b*l+2*w*l, ... (clamped to T for the
// last, possibly-partial, group). Every group but the very last global one
// is exactly l wide; the last is handled by the caller's fn, typically via
// vec.Plan, since it may be narrower than a full lane.
func strideGroups(b, w, l, t int, fn func(start, end int)) {
	if l < 1 {
		l = 1
	}
	for start := b * l; start < t; start += w * l {
		end := start + l
		if end > t {
			end = t
		}
		fn(start, end)
	}
}
