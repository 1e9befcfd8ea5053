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
	"fmt"

	"github.com/marcopapini/librbd/rbd"
	"github.com/spf13/cobra"
)

var koonCmd = &cobra.Command{
	Use:   "koon",
	Short: "Evaluate a K-out-of-N block",
	RunE:  runKoon,
}

func init() {
	koonCmd.Flags().Int("n", 5, "number of components")
	koonCmd.Flags().Int("k", 3, "minimum working components")
	koonCmd.Flags().Int("t", 100, "number of time samples")
	koonCmd.Flags().Bool("identical", false, "treat components as identical")
	koonCmd.Flags().Int("workers", 0, "maximum worker count (0 = automatic)")
	koonCmd.Flags().String("input", "", "CSV file of reliability samples (one column)")
}

func runKoon(cmd *cobra.Command, args []string) error {
	logger := configureLogging()
	rbd.SetLogger(logger)
	maybeServeMetrics()

	n, _ := cmd.Flags().GetInt("n")
	k, _ := cmd.Flags().GetInt("k")
	t, _ := cmd.Flags().GetInt("t")
	identical, _ := cmd.Flags().GetBool("identical")
	workers, _ := cmd.Flags().GetInt("workers")
	input, _ := cmd.Flags().GetString("input")

	curve, err := loadCurve(input, t)
	if err != nil {
		return err
	}

	var opts []rbd.Option
	if workers > 0 {
		opts = append(opts, rbd.WithMaxWorkers(workers))
	}

	done := timeEval("koon", t)
	var out []float64
	if identical {
		out, err = rbd.KoonIdentical(curve, n, k, t, opts...)
	} else {
		out, err = rbd.KoonGeneric(replicateRows(curve, n), n, k, t, opts...)
	}
	done(err)
	if err != nil {
		return fmt.Errorf("koon: %w", err)
	}

	printCurve(out)
	return nil
}
