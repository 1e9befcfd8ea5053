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

// Package rbd evaluates the time-series reliability of Reliability Block
// Diagrams: Series, Parallel, K-out-of-N and Bridge blocks, each in a
// "generic" (one reliability curve per component) and "identical" (one
// curve shared by every component) flavour.
//
// Given per-component reliability samples at T time instants, each entry
// point computes the block's reliability curve at those same instants,
// partitioning the time axis across goroutines and picking the widest
// available vector tier for the inner kernel. Outputs are always clamped
// to [0,1] and post-processed to be non-increasing in time.
//
// Basic usage:
//
//	out, err := rbd.SeriesIdentical(curve, n, t)
//	if err != nil {
//	    // invalid shape or allocation failure; out is nil
//	}
package rbd
