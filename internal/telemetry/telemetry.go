//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package telemetry defines Prometheus collectors for scoring calls.
// Registration is left to the embedding application.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Scoring call Prometheus metrics.
var (
	ScoringCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nlgeval",
			Name:      "scoring_calls_total",
			Help:      "Total number of scoring calls",
		},
		[]string{"mode", "status"},
	)

	ScoringCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nlgeval",
			Name:      "scoring_call_duration_seconds",
			Help:      "Scoring call duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"mode"},
	)
)

// ObserveCall records one scoring call outcome.
func ObserveCall(mode string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ScoringCallsTotal.WithLabelValues(mode, status).Inc()
	ScoringCallDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// Collectors returns every collector for registration by the embedder.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		ScoringCallsTotal,
		ScoringCallDuration,
	}
}
