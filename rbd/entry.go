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

// SeriesGeneric computes R_out[t] = clamp(Π_i rel[i,t]) for a block of n
// components, each with its own reliability curve packed row-major into
// rel (component i, time index j at rel[i*t+j]). n must be >= 1.
func SeriesGeneric(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("series_generic", n, t)
	out, err := runSeriesGeneric(rel, n, t, opts)
	logResult("series_generic", err)
	return out, err
}

// SeriesIdentical computes R_out[t] = clamp(rel[t]^n) for a block of n
// identical components sharing one reliability curve.
func SeriesIdentical(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("series_identical", n, t)
	out, err := runSeriesIdentical(rel, n, t, opts)
	logResult("series_identical", err)
	return out, err
}

// ParallelGeneric computes R_out[t] = clamp(1 - Π_i (1-rel[i,t])) for a
// block of n components, each with its own reliability curve.
func ParallelGeneric(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("parallel_generic", n, t)
	out, err := runParallelGeneric(rel, n, t, opts)
	logResult("parallel_generic", err)
	return out, err
}

// ParallelIdentical computes R_out[t] = clamp(1 - (1-rel[t])^n) for a block
// of n identical components.
func ParallelIdentical(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("parallel_identical", n, t)
	out, err := runParallelIdentical(rel, n, t, opts)
	logResult("parallel_identical", err)
	return out, err
}

// KoonGeneric computes the reliability of a K-out-of-N block (at least k of
// n components must work) from n independent reliability curves.
func KoonGeneric(rel []float64, n, k, t int, opts ...Option) ([]float64, error) {
	logCall("koon_generic", n, t)
	out, err := runKoonGeneric(rel, n, k, t, opts)
	logResult("koon_generic", err)
	return out, err
}

// KoonIdentical computes the reliability of a K-out-of-N block of n
// identical components sharing one reliability curve.
func KoonIdentical(rel []float64, n, k, t int, opts ...Option) ([]float64, error) {
	logCall("koon_identical", n, t)
	out, err := runKoonIdentical(rel, n, k, t, opts)
	logResult("koon_identical", err)
	return out, err
}

// BridgeGeneric computes the reliability of a 5-component bridge network.
// n must equal 5.
func BridgeGeneric(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("bridge_generic", n, t)
	out, err := runBridgeGeneric(rel, n, t, opts)
	logResult("bridge_generic", err)
	return out, err
}

// BridgeIdentical computes the reliability of a 5-component bridge network
// whose components share one reliability curve. The closed form substitutes
// R1=...=R5=rel regardless of n; n is accepted for signature symmetry with
// the other seven entry points but is not itself validated.
func BridgeIdentical(rel []float64, n, t int, opts ...Option) ([]float64, error) {
	logCall("bridge_identical", n, t)
	out, err := runBridgeIdentical(rel, n, t, opts)
	logResult("bridge_identical", err)
	return out, err
}
