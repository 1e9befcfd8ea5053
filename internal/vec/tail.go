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

package vec

// Segment is one contiguous run of a Plan, to be processed at Tier using
// Tier.Width()-wide groups. End-Start is always a multiple of Tier.Width().
type Segment struct {
	Tier  Tier
	Start int
	End   int
}

// Plan splits [0,n) into segments by cascading down from start through
// start.Cascade(), taking as many whole-width groups as fit at each tier
// before falling through to the next. Because Scalar (width 1) always
// terminates the cascade, Plan always covers [0,n) exactly; there is never
// an uncovered remainder.
//
// This is the tail-cascade policy of §4.3: a kernel dispatched at tier L
// processes whole L-lane groups, and the leftover is handled by the next
// narrower tier, recursively, down to scalar.
func Plan(start Tier, n int) []Segment {
	if n <= 0 {
		return nil
	}
	var segs []Segment
	offset := 0
	for _, t := range start.Cascade() {
		if offset == n {
			break
		}
		w := t.Width()
		if w <= 0 {
			w = 1
		}
		remaining := n - offset
		groups := remaining / w
		if groups == 0 {
			continue
		}
		end := offset + groups*w
		segs = append(segs, Segment{Tier: t, Start: offset, End: end})
		offset = end
	}
	return segs
}
