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

// combDescriptor is the packed-buffer descriptor of §9: {k, count, offset}.
// No nested dynamic structures — iteration is offset arithmetic only.
type combDescriptor struct {
	k      int
	count  uint64
	offset int
}

// combinationTable is the generic K-of-N fast path's auxiliary structure
// (§3, "Combination table (generic K-of-N, fast path)"): one descriptor
// per subset size k, all subsets packed into a single byte arena as
// concatenated sorted k-tuples of component indices. Component indices fit
// in a byte since N<=255.
type combinationTable struct {
	buf   []uint8
	descs []combDescriptor
}

// subsetCount returns the total number of k-subsets across kStart..kEnd,
// i.e. S in §4.5.2's "S = Σ C(N,k)" fast/recursive threshold test. Returns
// ok=false on binomial overflow.
func subsetCount(n, kStart, kEnd int) (s uint64, ok bool) {
	for k := kStart; k <= kEnd; k++ {
		c := binomial(n, k)
		if c == 0 {
			return 0, false
		}
		s += c
	}
	return s, true
}

// buildCombinationTable enumerates every k-subset of {0..n-1} for each k in
// [kStart,kEnd], packing them into one arena. It is the generic K-of-N fast
// path's one-call-lifetime auxiliary table (§3 Lifecycle: "created inside
// the entry point, consumed by workers, and released before the entry
// returns").
func buildCombinationTable(n, kStart, kEnd int) (*combinationTable, bool) {
	var buf []uint8
	descs := make([]combDescriptor, 0, kEnd-kStart+1)

	for k := kStart; k <= kEnd; k++ {
		count := binomial(n, k)
		if count == 0 {
			return nil, false
		}
		offset := len(buf)

		if k == 0 {
			descs = append(descs, combDescriptor{k: k, count: 1, offset: offset})
			continue
		}

		combo := make([]uint8, k)
		for i := range combo {
			combo[i] = uint8(i)
		}
		for {
			buf = append(buf, combo...)

			i := k - 1
			for i >= 0 && int(combo[i]) == n-k+i {
				i--
			}
			if i < 0 {
				break
			}
			combo[i]++
			for j := i + 1; j < k; j++ {
				combo[j] = combo[j-1] + 1
			}
		}

		descs = append(descs, combDescriptor{k: k, count: count, offset: offset})
	}

	return &combinationTable{buf: buf, descs: descs}, true
}

// subset returns the idx-th k-tuple (0-indexed, lexicographic) for the
// descriptor's k. Pure offset arithmetic into the shared arena.
func (t *combinationTable) subset(d combDescriptor, idx uint64) []uint8 {
	start := d.offset + int(idx)*d.k
	return t.buf[start : start+d.k]
}
