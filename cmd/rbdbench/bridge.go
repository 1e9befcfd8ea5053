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

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Evaluate a 5-component Bridge block",
	RunE:  runBridge,
}

func init() {
	bridgeCmd.Flags().Int("t", 100, "number of time samples")
	bridgeCmd.Flags().Bool("identical", false, "treat components as identical")
	bridgeCmd.Flags().Int("workers", 0, "maximum worker count (0 = automatic)")
	bridgeCmd.Flags().String("input", "", "CSV file of reliability samples (one column)")
}

func runBridge(cmd *cobra.Command, args []string) error {
	logger := configureLogging()
	rbd.SetLogger(logger)
	maybeServeMetrics()

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

	const n = 5
	done := timeEval("bridge", t)
	var out []float64
	if identical {
		out, err = rbd.BridgeIdentical(curve, n, t, opts...)
	} else {
		out, err = rbd.BridgeGeneric(replicateRows(curve, n), n, t, opts...)
	}
	done(err)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}

	printCurve(out)
	return nil
}
