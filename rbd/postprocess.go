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

// enforceMonotone walks out left-to-right setting out[t] = min(out[t],
// out[t-1]). Reliability cannot increase over time; this also absorbs the
// small numerical fluctuations a vectorized reduction can leave near the
// boundaries of the valid range. It runs single-threaded after every
// worker has joined: the dependency on out[t-1] makes it inherently
// sequential.
func enforceMonotone(out []float64) {
	for t := 1; t < len(out); t++ {
		if out[t] > out[t-1] {
			out[t] = out[t-1]
		}
	}
}
