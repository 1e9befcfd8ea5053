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

// fastPathThreshold implements the S <= N^2 test of §4.5.2.
func fastPathThreshold(n int) uint64 {
	return uint64(n) * uint64(n)
}

// runKoonGeneric implements the K-of-N engine's generic form, including the
// trivial-edge table and the fast/recursive split of §4.5.
func runKoonGeneric(rel []float64, n, k, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("koon_generic: N must be >= 1")
	}
	if len(rel) < n*t {
		return nil, wrapAlloc("koon_generic: rel too short for N*T")
	}

	switch {
	case k == 1:
		return runParallelGeneric(rel, n, t, opts)
	case k == n:
		return runSeriesGeneric(rel, n, t, opts)
	case k > n:
		return make([]float64, t), nil
	case k == 0:
		return ones(t), nil
	}

	kFail := n - k + 1
	kEff := k
	failMode := false
	if kFail > k {
		kEff = kFail
		failMode = true
	}

	s, ok := subsetCount(n, kEff, n)
	if !ok {
		return nil, wrapOverflow("koon_generic: binomial overflow computing subset count")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("koon_generic", tier, w, kEff, failMode)
	out := make([]float64, t)

	if s <= fastPathThreshold(n) {
		table, ok := buildCombinationTable(n, kEff, n)
		if !ok {
			return nil, wrapAlloc("koon_generic: combination table allocation failed")
		}
		err := dispatch(w, func(b int) {
			strideGroups(b, w, tier.Width(), t, func(gs, ge int) {
				koonGenericFastGroup(rel, n, t, gs, ge, table, failMode, out)
			})
		})
		if err != nil {
			return nil, err
		}
		enforceMonotone(out)
		return out, nil
	}

	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(gs, ge int) {
			koonGenericRecursiveGroup(rel, n, t, k, gs, ge, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}

// koonGenericFastGroup evaluates the enumerated-combinations fast path of
// §4.5.2: for each time instant, sum over every subset of size k>=kEff the
// product of in-subset probabilities times out-of-subset complement
// probabilities. In unreliability mode the subsets enumerate ways to fail
// rather than ways to work, so the roles of R and 1-R swap between member
// and non-member exactly as koonIdenticalGroup's p, q = q, p swap does.
func koonGenericFastGroup(rel []float64, n, t, s, e int, table *combinationTable, failMode bool, out []float64) {
	for off := s; off < e; off++ {
		var sum float64
		for _, d := range table.descs {
			for idx := uint64(0); idx < d.count; idx++ {
				subset := table.subset(d, idx)
				term := 1.0
				memberOf := make([]bool, n)
				for _, c := range subset {
					memberOf[c] = true
				}
				for i := 0; i < n; i++ {
					r := rel[i*t+off]
					member, nonMember := r, 1-r
					if failMode {
						member, nonMember = nonMember, member
					}
					if memberOf[i] {
						term *= member
					} else {
						term *= nonMember
					}
				}
				sum += term
			}
		}
		if failMode {
			sum = 1 - sum
		}
		out[off] = vec.ClampScalar(sum)
	}
}

// koonGenericRecursiveGroup evaluates the recursive identity of §4.5.3 per
// time instant:
//
//	rel(r,n,k) = (1-r[n-1])*rel(r,n-1,k) + r[n-1]*rel(r,n-1,k-1)
//
// with base cases rel(.,n,0)=1 and rel(.,n,k>n)=0.
func koonGenericRecursiveGroup(rel []float64, n, t, k, s, e int, out []float64) {
	r := make([]float64, n)
	for off := s; off < e; off++ {
		for i := 0; i < n; i++ {
			r[i] = rel[i*t+off]
		}
		out[off] = vec.ClampScalar(koonRecurse(r, n, k))
	}
}

func koonRecurse(r []float64, n, k int) float64 {
	if k <= 0 {
		return 1
	}
	if k > n {
		return 0
	}
	if n == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	last := r[n-1]
	return (1-last)*koonRecurse(r, n-1, k) + last*koonRecurse(r, n-1, k-1)
}

// runKoonIdentical implements the K-of-N engine's identical form via the
// binomial-table fast path of §4.5.1.
func runKoonIdentical(rel []float64, n, k, t int, opts []Option) ([]float64, error) {
	if n == 0 {
		return nil, wrapShape("koon_identical: N must be >= 1")
	}
	if len(rel) < t {
		return nil, wrapAlloc("koon_identical: rel too short for T")
	}

	switch {
	case k == 1:
		return runParallelIdentical(rel, n, t, opts)
	case k == n:
		return runSeriesIdentical(rel, n, t, opts)
	case k > n:
		return make([]float64, t), nil
	case k == 0:
		return ones(t), nil
	}

	kFail := n - k + 1
	kEff := k
	failMode := false
	if kFail > k {
		kEff = kFail
		failMode = true
	}

	table, ok := binomialTable(n, kEff)
	if !ok {
		return nil, wrapOverflow("koon_identical: binomial overflow")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("koon_identical", tier, w, kEff, failMode)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(gs, ge int) {
			koonIdenticalGroup(rel, n, kEff, gs, ge, table, failMode, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}

// koonIdenticalGroup evaluates Σ_{i=Keff..N} C(N,i)·p^i·(1-p)^(N-i), or its
// unreliability-mode complement, using the precomputed binomial table.
func koonIdenticalGroup(rel []float64, n, kEff, s, e int, table []uint64, failMode bool, out []float64) {
	for off := s; off < e; off++ {
		p := rel[off]
		q := 1 - p
		if failMode {
			p, q = q, p
		}

		var sum float64
		for i := kEff; i <= n; i++ {
			sum += float64(table[i-kEff]) * ipow(p, i) * ipow(q, n-i)
		}
		if failMode {
			sum = 1 - sum
		}
		out[off] = vec.ClampScalar(sum)
	}
}

func ipow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}

func ones(t int) []float64 {
	out := make([]float64, t)
	for i := range out {
		out[i] = 1
	}
	return out
}
