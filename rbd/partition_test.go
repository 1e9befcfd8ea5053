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

func TestPartitionSmallTIsInline(t *testing.T) {
	w := partition(100, 8, vec.Scalar, config{})
	require.Equal(t, 1, w)
}

func TestPartitionNeverExceedsCores(t *testing.T) {
	w := partition(1_000_000_000, 8, vec.Scalar, config{})
	require.LessOrEqual(t, w, 8)
}

func TestPartitionRespectsMaxWorkers(t *testing.T) {
	cfg := config{maxWorkers: 2}
	w := partition(1_000_000_000, 8, vec.Scalar, cfg)
	require.LessOrEqual(t, w, 2)
}

func TestPartitionAtLeastOne(t *testing.T) {
	w := partition(0, 8, vec.Scalar, config{})
	require.GreaterOrEqual(t, w, 1)
}

func TestStrideGroupsCoversEveryIndexExactlyOnce(t *testing.T) {
	const w, l, tTotal = 3, 4, 97
	covered := make([]int, tTotal)
	for b := 0; b < w; b++ {
		strideGroups(b, w, l, tTotal, func(s, e int) {
			for i := s; i < e; i++ {
				covered[i]++
			}
		})
	}
	for i, c := range covered {
		require.Equal(t, 1, c, "index %d covered %d times", i, c)
	}
}
