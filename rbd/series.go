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

// seriesGenericGroup computes out[s:e] = clamp(Π_i rel[i,s:e]) for one
// contiguous group, cascading down through narrower tiers for whatever
// part of [s,e) does not divide evenly into tier's width (§4.3 tail
// cascade). The vector form loads one lane of each component in turn and
// multiplies lanewise, matching §4.4's "Series, generic" description.
func seriesGenericGroup(rel []float64, n, t, s, e int, tier vec.Tier, out []float64) {
	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			acc := vec.Splat(1, w)
			for i := 0; i < n; i++ {
				row := rel[i*t : (i+1)*t]
				acc = vec.Mul(acc, vec.Load(row[off:], w))
			}
			vec.Store(vec.Clamp(acc), out[off:off+w])
		}
	}
}

// seriesIdenticalGroup computes out[s:e] = clamp(rel[s:e]^n) by multiplying
// the same loaded lane by itself n times rather than calling pow, so the
// result is bit-for-bit identical to feeding n copies of rel through
// seriesGenericGroup (the identical-generic equivalence property of §8).
func seriesIdenticalGroup(rel []float64, n, s, e int, tier vec.Tier, out []float64) {
	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			v := vec.Load(rel[off:], w)
			acc := vec.Splat(1, w)
			for i := 0; i < n; i++ {
				acc = vec.Mul(acc, v)
			}
			vec.Store(vec.Clamp(acc), out[off:off+w])
		}
	}
}

// runSeriesGeneric dispatches the generic series kernel across workers.
func runSeriesGeneric(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("series_generic: N must be >= 1")
	}
	if len(rel) < n*t {
		return nil, wrapAlloc("series_generic: rel too short for N*T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("series_generic", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			seriesGenericGroup(rel, n, t, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}

// runSeriesIdentical dispatches the identical series kernel across workers.
func runSeriesIdentical(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("series_identical: N must be >= 1")
	}
	if len(rel) < t {
		return nil, wrapAlloc("series_identical: rel too short for T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("series_identical", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			seriesIdenticalGroup(rel, n, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}
