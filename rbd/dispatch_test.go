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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchInlineForSingleWorker(t *testing.T) {
	var called int32
	err := dispatch(1, func(b int) {
		atomic.AddInt32(&called, 1)
		require.Equal(t, 0, b)
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, called)
}

func TestDispatchRunsEveryWorkerExactlyOnce(t *testing.T) {
	const w = 6
	seen := make([]int32, w)
	err := dispatch(w, func(b int) {
		atomic.AddInt32(&seen[b], 1)
	})
	require.NoError(t, err)
	for _, s := range seen {
		require.EqualValues(t, 1, s)
	}
}

func TestDispatchRecoversPanicAsPartialSpawn(t *testing.T) {
	err := dispatch(4, func(b int) {
		if b == 2 {
			panic("simulated worker failure")
		}
	})
	require.ErrorIs(t, err, ErrPartialSpawn)
}
