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

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func closeEnough(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-6 {
			return false
		}
	}
	return true
}

func TestSeedSeriesIdentical(t *testing.T) {
	out, err := SeriesIdentical([]float64{0.9}, 3, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.729, out[0], epsilon)
}

func TestSeedParallelIdentical(t *testing.T) {
	out, err := ParallelIdentical([]float64{0.5}, 3, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.875, out[0], epsilon)
}

func TestSeedKoonIdentical(t *testing.T) {
	out, err := KoonIdentical([]float64{0.9}, 3, 2, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.972, out[0], epsilon)
}

func TestSeedBridgeIdentical(t *testing.T) {
	out, err := BridgeIdentical([]float64{0.9}, 5, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.97848, out[0], epsilon)
}

func TestSeedSeriesGeneric(t *testing.T) {
	rel := []float64{1.0, 0.5, 1.0, 0.5}
	out, err := SeriesGeneric(rel, 2, 2)
	require.NoError(t, err)
	require.True(t, closeEnough([]float64{1.0, 0.25}, out))
}

func TestSeedKoonGeneric(t *testing.T) {
	rel := make([]float64, 5)
	for i := range rel {
		rel[i] = 0.9
	}
	out, err := KoonGeneric(rel, 5, 3, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.99144, out[0], 1e-5)
}

func TestBoundsAreRespected(t *testing.T) {
	rel := []float64{-5, 0, 0.3, 0.6, 1, 5, math.NaN()}
	t_ := len(rel)
	out, err := SeriesIdentical(rel, 4, t_)
	require.NoError(t, err)
	for _, v := range out {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestMonotonicityIsEnforced(t *testing.T) {
	rel := []float64{0.2, 0.9, 0.1, 0.95, 0.99}
	out, err := ParallelIdentical(rel, 3, len(rel))
	require.NoError(t, err)
	for i := 1; i < len(out); i++ {
		require.LessOrEqual(t, out[i], out[i-1])
	}
}

func TestIdenticalGenericEquivalence(t *testing.T) {
	curve := []float64{0.95, 0.8, 0.6, 0.4, 0.2}
	const n = 4
	t_ := len(curve)

	generic := make([]float64, 0, n*t_)
	for i := 0; i < n; i++ {
		generic = append(generic, curve...)
	}

	gotGeneric, err := SeriesGeneric(generic, n, t_)
	require.NoError(t, err)
	gotIdentical, err := SeriesIdentical(curve, n, t_)
	require.NoError(t, err)

	if diff := cmp.Diff(gotIdentical, gotGeneric, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("identical/generic mismatch (-identical +generic):\n%s", diff)
	}
}

func TestKoonTrivialEdges(t *testing.T) {
	rel := []float64{0.3, 0.5, 0.7}
	const n, t_ = 3, 1

	parallel, err := ParallelGeneric(rel, n, t_)
	require.NoError(t, err)
	koonK1, err := KoonGeneric(rel, n, 1, t_)
	require.NoError(t, err)
	require.True(t, closeEnough(parallel, koonK1))

	series, err := SeriesGeneric(rel, n, t_)
	require.NoError(t, err)
	koonKN, err := KoonGeneric(rel, n, n, t_)
	require.NoError(t, err)
	require.True(t, closeEnough(series, koonKN))

	koonZero, err := KoonGeneric(rel, n, 0, t_)
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, koonZero)

	koonOver, err := KoonGeneric(rel, n, n+1, t_)
	require.NoError(t, err)
	require.Equal(t, []float64{0.0}, koonOver)
}

func TestErrorPaths(t *testing.T) {
	_, err := SeriesGeneric(nil, 0, 10)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = SeriesGeneric([]float64{1, 2}, 2, 10)
	require.ErrorIs(t, err, ErrAllocation)

	_, err = BridgeGeneric(make([]float64, 5*10), 4, 10)
	require.ErrorIs(t, err, ErrInvalidShape)

	// bridge_identical has no N-shape failure mode per §6 ("none beyond
	// allocation"): the closed form substitutes R1..R5=R regardless of N.
	_, err = BridgeIdentical(make([]float64, 10), 4, 10)
	require.NoError(t, err)
}

func TestKoonOverflowSurfacesAsError(t *testing.T) {
	rel := make([]float64, 255)
	for i := range rel {
		rel[i] = 0.9
	}
	_, err := KoonIdentical(rel, 255, 127, 1)
	require.ErrorIs(t, err, ErrOverflow)
}
