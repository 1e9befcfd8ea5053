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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierWidth(t *testing.T) {
	require.Equal(t, 1, Scalar.Width())
	require.Equal(t, 2, SSE2x2.Width())
	require.Equal(t, 2, NEONx2.Width())
	require.Equal(t, 4, AVX2x4.Width())
	require.Equal(t, 4, AVX2FMAx4.Width())
	require.Equal(t, 8, AVX512x8.Width())
}

func TestCascadeEndsInScalar(t *testing.T) {
	for _, tier := range []Tier{Scalar, SSE2x2, AVX2x4, AVX2FMAx4, AVX512x8, NEONx2, RVVxVL} {
		cascade := tier.Cascade()
		require.NotEmpty(t, cascade)
		require.Equal(t, Scalar, cascade[len(cascade)-1])
		require.Equal(t, tier, cascade[0])
	}
}

func TestPlanCoversEverything(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 8, 9, 31, 10007} {
		segs := Plan(AVX512x8, n)
		total := 0
		for i, s := range segs {
			require.Equal(t, total, s.Start, "segment %d must start where previous ended", i)
			require.Zero(t, (s.End-s.Start)%s.Tier.Width())
			total = s.End
		}
		require.Equal(t, n, total)
	}
}

func TestPlanEmpty(t *testing.T) {
	require.Nil(t, Plan(AVX512x8, 0))
}
