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

//go:build !amd64 && !arm64

package rbd

import "github.com/marcopapini/librbd/internal/vec"

func init() {
	detectTiers = detectTiersOther
}

// detectTiersOther covers every platform without a dedicated capability
// probe, including riscv64. golang.org/x/sys/cpu exposes no RISC-V
// vector-extension detection on any currently supported Go toolchain, so
// RVVxVL is never reported available here: a tier that cannot be tested
// safely is reported unsupported rather than guessed at.
func detectTiersOther() []vec.Tier {
	return nil
}
