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

	"github.com/stretchr/testify/require"
)

func TestSubsetCount(t *testing.T) {
	s, ok := subsetCount(5, 3, 5)
	require.True(t, ok)
	require.Equal(t, uint64(10+5+1), s)
}

func TestBuildCombinationTableEnumeratesAllSubsets(t *testing.T) {
	table, ok := buildCombinationTable(5, 2, 2)
	require.True(t, ok)
	require.Len(t, table.descs, 1)

	d := table.descs[0]
	require.EqualValues(t, 10, d.count)

	seen := make(map[[2]uint8]bool)
	for i := uint64(0); i < d.count; i++ {
		subset := table.subset(d, i)
		require.Len(t, subset, 2)
		require.Less(t, subset[0], subset[1])
		seen[[2]uint8{subset[0], subset[1]}] = true
	}
	require.Len(t, seen, 10)
}

func TestBuildCombinationTableKZero(t *testing.T) {
	table, ok := buildCombinationTable(5, 0, 0)
	require.True(t, ok)
	require.Len(t, table.descs, 1)
	require.EqualValues(t, 1, table.descs[0].count)
	require.Empty(t, table.subset(table.descs[0], 0))
}

func TestBuildCombinationTableMultipleK(t *testing.T) {
	table, ok := buildCombinationTable(4, 2, 4)
	require.True(t, ok)
	require.Len(t, table.descs, 3)
	require.EqualValues(t, 6, table.descs[0].count)
	require.EqualValues(t, 4, table.descs[1].count)
	require.EqualValues(t, 1, table.descs[2].count)
}
