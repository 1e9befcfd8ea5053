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

import "math"

// Vec is a lane-width-tagged group of float64 values. It plays the same
// role as hwy.Vec[T]: callers never build one by hand, only via Load,
// Zero or Splat, and the lane count it carries is fixed for its lifetime.
type Vec struct {
	data []float64
}

// NumLanes returns how many lanes this vector carries.
func (v Vec) NumLanes() int {
	return len(v.data)
}

// Data exposes the underlying lanes. Intended for tests and reduction ops.
func (v Vec) Data() []float64 {
	return v.data
}

// Load reads width lanes starting at src[0]. The caller must ensure
// len(src) >= width.
func Load(src []float64, width int) Vec {
	data := make([]float64, width)
	copy(data, src[:width])
	return Vec{data: data}
}

// Store writes v's lanes into dst[0:v.NumLanes()].
func Store(v Vec, dst []float64) {
	copy(dst[:len(v.data)], v.data)
}

// Zero returns a width-lane vector of zeros.
func Zero(width int) Vec {
	return Vec{data: make([]float64, width)}
}

// Splat returns a width-lane vector with every lane set to x.
func Splat(x float64, width int) Vec {
	data := make([]float64, width)
	for i := range data {
		data[i] = x
	}
	return Vec{data: data}
}

// Add returns a+b, lanewise. a and b must have equal lane counts.
func Add(a, b Vec) Vec {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec{data: out}
}

// Sub returns a-b, lanewise.
func Sub(a, b Vec) Vec {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] - b.data[i]
	}
	return Vec{data: out}
}

// Mul returns a*b, lanewise.
func Mul(a, b Vec) Vec {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] * b.data[i]
	}
	return Vec{data: out}
}

// FMA returns a*b+c, lanewise, computed with math.FMA: every lane rounds
// once, whichever tier the caller dispatched at.
func FMA(a, b, c Vec) Vec {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = math.FMA(a.data[i], b.data[i], c.data[i])
	}
	return Vec{data: out}
}

// ReduceSum horizontally sums all lanes.
func ReduceSum(v Vec) float64 {
	var sum float64
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceProduct horizontally multiplies all lanes. Used by the series
// kernel, which reduces by product rather than by sum.
func ReduceProduct(v Vec) float64 {
	prod := 1.0
	for _, x := range v.data {
		prod *= x
	}
	return prod
}

// ClampScalar implements the C1 contract: NaN or x<0 maps to 0, x>1 maps to
// 1, otherwise x is unchanged.
func ClampScalar(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp applies ClampScalar lanewise.
func Clamp(v Vec) Vec {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = ClampScalar(x)
	}
	return Vec{data: out}
}

// Complement returns 1-v, lanewise (reliability <-> unreliability).
func Complement(v Vec) Vec {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = 1 - x
	}
	return Vec{data: out}
}
