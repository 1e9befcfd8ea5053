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

import "math"

// binomial computes C(n,k) as an exact uint64, using the symmetry
// C(n,k)=C(n,n-k) to pick the smaller k, and interleaved GCD-factoring to
// keep the running product bounded instead of computing the full factorial
// ratio and dividing at the end. Returns 0 to signal overflow, which happens
// well inside the engine's N<=255 range whenever C(n,k) exceeds 2^64-1
// (for example C(255,127)).
func binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return 1
	}

	// The mutable divisor list {1..k}: each divisor is consumed (reduced
	// toward 1) as numerator terms cancel against it, so by the time all k
	// numerator terms have been folded in, every divisor is exactly 1 and
	// result already holds the exact integer C(n,k).
	divisors := make([]uint64, k)
	for i := range divisors {
		divisors[i] = uint64(i + 1)
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		factor := uint64(n - i)

		for j := range divisors {
			if divisors[j] <= 1 {
				continue
			}
			if g := gcd(factor, divisors[j]); g > 1 {
				factor /= g
				divisors[j] /= g
			}
			if factor == 1 {
				break
			}
		}

		if factor > 1 && result > math.MaxUint64/factor {
			return 0
		}
		result *= factor
	}

	return result
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// binomialTable builds the vector C(n,kEff), C(n,kEff+1), ..., C(n,n) used
// by the identical K-of-N fast path (§4.5.1). Returns ok=false the moment
// any entry overflows, per the invariant in §3: "every value >0; a
// computed zero aborts the call".
func binomialTable(n, kEff int) (table []uint64, ok bool) {
	table = make([]uint64, 0, n-kEff+1)
	for i := kEff; i <= n; i++ {
		c := binomial(n, i)
		if c == 0 {
			return nil, false
		}
		table = append(table, c)
	}
	return table, true
}
