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
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	evalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rbdbench",
		Name:      "evaluation_seconds",
		Help:      "Wall-clock duration of a single block evaluation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"block"})

	evalOutcome = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rbdbench",
		Name:      "evaluations_total",
		Help:      "Count of block evaluations by outcome.",
	}, []string{"block", "outcome"})

	lastT = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rbdbench",
		Name:      "last_t",
		Help:      "T parameter of the most recent evaluation.",
	}, []string{"block"})

	lastWorkers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rbdbench",
		Name:      "last_workers",
		Help:      "Worker count chosen by the most recent partitioning decision.",
	}, []string{"op"})
)

// workerGaugeSink is an io.Writer that sits alongside the console writer in
// the zerolog multi-writer chain. It parses the same raw JSON event bytes
// zerolog would otherwise only hand to the console formatter, and feeds any
// "partitioned" event's worker count into lastWorkers. Those events are
// Debug level, so they reach the sink, and the gauge is updated, only when
// --verbose is set. It never returns an error itself so a malformed or
// unrelated line never breaks logging.
type workerGaugeSink struct{}

func (workerGaugeSink) Write(p []byte) (int, error) {
	var ev struct {
		Op      string `json:"op"`
		Message string `json:"message"`
		Workers int    `json:"workers"`
	}
	if err := json.Unmarshal(p, &ev); err == nil && ev.Message == "partitioned" {
		lastWorkers.WithLabelValues(ev.Op).Set(float64(ev.Workers))
	}
	return len(p), nil
}

// maybeServeMetrics starts a background HTTP server exposing /metrics if an
// address was configured. It never blocks the caller.
func maybeServeMetrics() {
	if metricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: metricsAddr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}

// timeEval records duration and outcome for one block evaluation and returns
// a function to call with the evaluation's result.
func timeEval(block string, t int) func(error) {
	start := time.Now()
	lastT.WithLabelValues(block).Set(float64(t))
	return func(err error) {
		evalDuration.WithLabelValues(block).Observe(time.Since(start).Seconds())
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		evalOutcome.WithLabelValues(block, outcome).Inc()
	}
}
