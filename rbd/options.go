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

// config holds the per-call settings an Option can override. Its zero value
// is the default behaviour: auto core count, no forced worker count.
type config struct {
	maxWorkers int // 0 means "let the partitioner decide"
}

// Option customizes a single entry-point call. Options exist for testing
// determinism and for callers who want to cap concurrency.
type Option func(*config)

// WithMaxWorkers caps the worker count the partitioner may choose. It is
// mainly useful for deterministic tests and for embedding the engine in a
// larger program that already manages its own goroutine budget.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxWorkers = n
		}
	}
}

func resolveConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
