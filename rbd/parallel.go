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

// parallelGenericGroup computes out[s:e] = clamp(1 - Π_i (1-rel[i,s:e])) for
// one contiguous group, mirroring seriesGenericGroup but accumulating the
// complement product and complementing once at the end (§4.4, "Parallel,
// generic").
func parallelGenericGroup(rel []float64, n, t, s, e int, tier vec.Tier, out []float64) {
	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			acc := vec.Splat(1, w)
			for i := 0; i < n; i++ {
				row := rel[i*t : (i+1)*t]
				acc = vec.Mul(acc, vec.Complement(vec.Load(row[off:], w)))
			}
			vec.Store(vec.Clamp(vec.Complement(acc)), out[off:off+w])
		}
	}
}

// parallelIdenticalGroup computes out[s:e] = clamp(1 - (1-rel[s:e])^n),
// multiplying the same loaded complement by itself n times rather than
// calling pow, for bit-exact parity with parallelGenericGroup fed n copies
// of rel.
func parallelIdenticalGroup(rel []float64, n, s, e int, tier vec.Tier, out []float64) {
	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			c := vec.Complement(vec.Load(rel[off:], w))
			acc := vec.Splat(1, w)
			for i := 0; i < n; i++ {
				acc = vec.Mul(acc, c)
			}
			vec.Store(vec.Clamp(vec.Complement(acc)), out[off:off+w])
		}
	}
}

// runParallelGeneric dispatches the generic parallel kernel across workers.
func runParallelGeneric(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("parallel_generic: N must be >= 1")
	}
	if len(rel) < n*t {
		return nil, wrapAlloc("parallel_generic: rel too short for N*T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("parallel_generic", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			parallelGenericGroup(rel, n, t, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}

// runParallelIdentical dispatches the identical parallel kernel across workers.
func runParallelIdentical(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("parallel_identical: N must be >= 1")
	}
	if len(rel) < t {
		return nil, wrapAlloc("parallel_identical: rel too short for T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("parallel_identical", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			parallelIdenticalGroup(rel, n, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}
