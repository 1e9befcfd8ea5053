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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	metricsAddr string
	version     = "dev"

	rootCmd = &cobra.Command{
		Use:     "rbdbench",
		Short:   "Evaluate Reliability Block Diagram reliability curves",
		Long:    `rbdbench drives the rbd package's Series, Parallel, K-of-N and Bridge kernels from the command line, for manual inspection and benchmarking.`,
		Version: version,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (disabled if empty)")

	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(parallelCmd)
	rootCmd.AddCommand(koonCmd)
	rootCmd.AddCommand(bridgeCmd)
}

func configureLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr}, workerGaugeSink{})
	logger := zerolog.New(w).With().Timestamp().Logger().Level(level)
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
