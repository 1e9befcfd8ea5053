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

const bridgeN = 5

// bridgeGenericGroup applies the FMA-friendly rearrangement of the 5-component
// bridge closed form (§4.4):
//
//	VAL1 = (R1+R3-R1·R3)·(R2+R4-R2·R4)
//	VAL2 = R1·R2 + R3·R4 - R1·R2·R3·R4
//	R_out = clamp(R5·(VAL1-VAL2)+VAL2)
func bridgeGenericGroup(rel []float64, t, s, e int, tier vec.Tier, out []float64) {
	r1row := rel[0*t : 1*t]
	r2row := rel[1*t : 2*t]
	r3row := rel[2*t : 3*t]
	r4row := rel[3*t : 4*t]
	r5row := rel[4*t : 5*t]

	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			r1 := vec.Load(r1row[off:], w)
			r2 := vec.Load(r2row[off:], w)
			r3 := vec.Load(r3row[off:], w)
			r4 := vec.Load(r4row[off:], w)
			r5 := vec.Load(r5row[off:], w)

			t13 := vec.Sub(vec.Add(r1, r3), vec.Mul(r1, r3))
			t24 := vec.Sub(vec.Add(r2, r4), vec.Mul(r2, r4))
			val1 := vec.Mul(t13, t24)

			r1r2 := vec.Mul(r1, r2)
			r3r4 := vec.Mul(r3, r4)
			val2 := vec.Sub(vec.Add(r1r2, r3r4), vec.Mul(r1r2, r3r4))

			res := vec.FMA(r5, vec.Sub(val1, val2), val2)
			vec.Store(vec.Clamp(res), out[off:off+w])
		}
	}
}

// bridgeIdenticalGroup substitutes R1=...=R5=R in the closed form:
//
//	R_out = clamp(R·(1+F·(F·(F²-2)+R·(2-R²))))  with F = 1-R
func bridgeIdenticalGroup(rel []float64, s, e int, tier vec.Tier, out []float64) {
	for _, seg := range vec.Plan(tier, e-s) {
		w := seg.Tier.Width()
		for off := s + seg.Start; off < s+seg.End; off += w {
			r := vec.Load(rel[off:], w)
			f := vec.Complement(r)

			one := vec.Splat(1, w)
			two := vec.Splat(2, w)

			fSq := vec.Mul(f, f)
			rSq := vec.Mul(r, r)

			inner1 := vec.Sub(fSq, two)
			inner2 := vec.Sub(two, rSq)

			term := vec.Add(vec.Mul(f, inner1), vec.Mul(r, inner2))
			bracket := vec.Add(one, vec.Mul(f, term))

			res := vec.Mul(r, bracket)
			vec.Store(vec.Clamp(res), out[off:off+w])
		}
	}
}

// runBridgeGeneric dispatches the generic bridge kernel across workers. N must
// equal 5; the closed form has no general-N extension (§4.4).
func runBridgeGeneric(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if n != bridgeN {
		return nil, wrapShape("bridge_generic: N must equal 5")
	}
	if len(rel) < bridgeN*t {
		return nil, wrapAlloc("bridge_generic: rel too short for 5*T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("bridge_generic", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			bridgeGenericGroup(rel, t, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}

// runBridgeIdentical dispatches the identical bridge kernel across workers.
// N is accepted for signature symmetry with the other seven entry points, but
// the substitution R1=...=R5=R fixes the closed form at 5 components
// regardless of N's value, so (per §6's failure table: "none beyond
// allocation") N is not validated here the way bridge_generic validates it.
func runBridgeIdentical(rel []float64, n, t int, opts []Option) ([]float64, error) {
	if len(rel) < t {
		return nil, wrapAlloc("bridge_identical: rel too short for T")
	}

	capSnap := Capabilities()
	cfg := resolveConfig(opts)
	tier := capSnap.BestTier()
	w := partition(t, capSnap.NumCores, tier, cfg)
	logDispatch("bridge_identical", tier, w, -1, false)

	out := make([]float64, t)
	err := dispatch(w, func(b int) {
		strideGroups(b, w, tier.Width(), t, func(s, e int) {
			bridgeIdenticalGroup(rel, s, e, tier, out)
		})
	})
	if err != nil {
		return nil, err
	}
	enforceMonotone(out)
	return out, nil
}
