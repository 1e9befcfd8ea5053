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
	"testing"

	"github.com/marcopapini/librbd/internal/vec"
	"github.com/stretchr/testify/require"
)

// bridgeReference evaluates the closed form directly from its definition
// (not the FMA-friendly rearrangement) for cross-checking.
func bridgeReference(r1, r2, r3, r4, r5 float64) float64 {
	f1, f2, f3, f4, f5 := 1-r1, 1-r2, 1-r3, 1-r4, 1-r5
	return r5*(1-f1*f3)*(1-f2*f4) + f5*(1-(1-r1*r2)*(1-r3*r4))
}

func TestBridgeGenericMatchesReferenceFormula(t *testing.T) {
	const t_ = 1
	rel := []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	// row-major: component i, time t at rel[i*t_+t]
	out := make([]float64, t_)
	bridgeGenericGroup(rel, t_, 0, t_, vec.AVX2x4, out)

	want := bridgeReference(rel[0], rel[1], rel[2], rel[3], rel[4])
	require.InDelta(t, want, out[0], 1e-9)
}

func TestBridgeIdenticalMatchesGenericWithEqualComponents(t *testing.T) {
	const t_ = 1
	r := 0.9
	genRel := []float64{r, r, r, r, r}
	genOut := make([]float64, t_)
	bridgeGenericGroup(genRel, t_, 0, t_, vec.Scalar, genOut)

	idOut := make([]float64, t_)
	bridgeIdenticalGroup([]float64{r}, 0, t_, vec.Scalar, idOut)

	require.InDelta(t, genOut[0], idOut[0], 1e-9)
}

func TestRunBridgeGenericRejectsWrongN(t *testing.T) {
	_, err := runBridgeGeneric(make([]float64, 40), 4, 10, nil)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestRunBridgeIdenticalIgnoresN(t *testing.T) {
	// Per §6's failure table, bridge_identical has no N-shape failure mode
	// ("none beyond allocation"): the closed form substitutes R1..R5=R
	// regardless of N, so an N other than 5 still succeeds.
	out, err := runBridgeIdentical([]float64{0.9}, 3, 1, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.97848, out[0], 1e-5)
}
