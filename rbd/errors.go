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
	"errors"
	"fmt"
)

// Sentinel errors identifying the taxonomy of §7. Every error an entry
// point returns wraps exactly one of these, so callers can branch with
// errors.Is.
var (
	// ErrInvalidShape covers N=0 for Series/Parallel/K-of-N and N!=5 for
	// BridgeGeneric. BridgeIdentical does not check N.
	ErrInvalidShape = errors.New("rbd: invalid shape")

	// ErrAllocation covers an input slice shorter than the N*T (or T)
	// samples the call needs, and a combination table that could not be
	// built.
	ErrAllocation = errors.New("rbd: allocation failure")

	// ErrOverflow covers a binomial coefficient C(n,k) exceeding 64 bits.
	ErrOverflow = errors.New("rbd: combinatorial overflow")

	// ErrPartialSpawn covers a worker that panicked; dispatch recovers the
	// panic, lets the other workers run to completion and joins them, but
	// reports failure since that worker's output region may be incomplete.
	ErrPartialSpawn = errors.New("rbd: worker spawn failure")
)

// wrapShape wraps ErrInvalidShape with a component-specific message so
// errors.Is(err, ErrInvalidShape) still succeeds after fmt.Errorf wrapping.
func wrapShape(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidShape)
}

// wrapAlloc wraps ErrAllocation with a component-specific message.
func wrapAlloc(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrAllocation)
}

// wrapOverflow wraps ErrOverflow with a component-specific message.
func wrapOverflow(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrOverflow)
}
