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
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/samber/lo"
)

// syntheticCurve builds a decaying exponential reliability curve of length t,
// used when no --input file is given: rel[i] = exp(-lambda*i).
func syntheticCurve(t int, lambda float64) []float64 {
	return lo.Times(t, func(i int) float64 {
		return math.Exp(-lambda * float64(i))
	})
}

// readCurveFile reads a single-column CSV of T reliability samples.
func readCurveFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = 1

	var out []float64
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parse sample %q: %w", record[0], err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("input file %q contained no samples", path)
	}
	return out, nil
}

// replicateRows copies curve n times into a single N*T row-major buffer, the
// shape the generic kernels expect.
func replicateRows(curve []float64, n int) []float64 {
	rows := lo.Times(n, func(int) []float64 { return curve })
	return lo.Flatten(rows)
}

// loadCurve reads the first T samples from path if non-empty, else
// synthesizes a decaying exponential curve of length t.
func loadCurve(path string, t int) ([]float64, error) {
	if path == "" {
		return syntheticCurve(t, 0.01), nil
	}
	curve, err := readCurveFile(path)
	if err != nil {
		return nil, err
	}
	if len(curve) > t {
		curve = curve[:t]
	}
	return curve, nil
}

// printCurve writes the first few and last few samples of a result curve to
// stdout, enough to sanity-check without flooding the terminal for large T.
func printCurve(out []float64) {
	const edge = 5
	n := len(out)
	if n <= 2*edge {
		for i, v := range out {
			fmt.Printf("t=%d %.10f\n", i, v)
		}
		return
	}
	for i := 0; i < edge; i++ {
		fmt.Printf("t=%d %.10f\n", i, out[i])
	}
	fmt.Println("...")
	for i := n - edge; i < n; i++ {
		fmt.Printf("t=%d %.10f\n", i, out[i])
	}
}
