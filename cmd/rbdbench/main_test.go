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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEachSubcommandRunsCleanly(t *testing.T) {
	cases := [][]string{
		{"series", "--n", "5", "--t", "100"},
		{"parallel", "--n", "5", "--t", "100"},
		{"koon", "--n", "5", "--k", "3", "--t", "100"},
		{"bridge", "--t", "100"},
	}
	for _, args := range cases {
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		require.NoError(t, err, "args=%v", args)
	}
}
