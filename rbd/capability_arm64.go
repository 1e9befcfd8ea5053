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

//go:build arm64

package rbd

import (
	"golang.org/x/sys/cpu"

	"github.com/marcopapini/librbd/internal/vec"
)

func init() {
	detectTiers = detectTiersARM64
}

// detectTiersARM64 reports NEON whenever it is present. ARMv8-A makes
// ASIMD (NEON) mandatory, so this is true on every arm64 target Go
// supports; the check is kept so the logic mirrors the other platforms and
// degrades gracefully if that ever stops being the case.
func detectTiersARM64() []vec.Tier {
	if cpu.ARM64.HasASIMD {
		return []vec.Tier{vec.NEONx2}
	}
	return nil
}
