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

//go:build amd64

package rbd

import (
	"golang.org/x/sys/cpu"

	"github.com/marcopapini/librbd/internal/vec"
)

func init() {
	detectTiers = detectTiersAMD64
}

func detectTiersAMD64() []vec.Tier {
	var tiers []vec.Tier
	if cpu.X86.HasSSE2 {
		tiers = append(tiers, vec.SSE2x2)
	}
	if cpu.X86.HasAVX2 {
		tiers = append(tiers, vec.AVX2x4)
		if cpu.X86.HasFMA {
			tiers = append(tiers, vec.AVX2FMAx4)
		}
	}
	if cpu.X86.HasAVX512F {
		tiers = append(tiers, vec.AVX512x8)
	}
	return tiers
}
