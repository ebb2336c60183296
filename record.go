//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package nlgeval

import (
	"fmt"
	"strings"

	"github.com/gregorlied/nlg-eval/metric"
)

// DFMode reports how the TF-IDF metric obtained its document frequencies.
type DFMode string

const (
	// DFModeCorpus means frequencies were built from the scored corpus itself.
	DFModeCorpus DFMode = "corpus"
	// DFModePooled means a caller-supplied pooled table was used.
	DFModePooled DFMode = "pooled"
)

// NamedScore is one entry of the flattened name-to-value view of a record.
type NamedScore struct {
	// Name is the reported metric or sub-value name, e.g. Bleu_2 or METEOR.
	Name string `json:"name"`
	// Score is the numeric value.
	Score float64 `json:"score"`
}

// ScoreRecord is the ordered result of one scoring call. Skipped metrics are
// absent entirely; they are never reported as zero.
type ScoreRecord struct {
	// ID uniquely identifies this scoring call.
	ID string `json:"id"`
	// DFMode reports the document-frequency mode in effect for the TF-IDF
	// metric; empty when that metric was skipped.
	DFMode DFMode `json:"dfMode,omitempty"`
	// Results lists per-family results in fixed report order.
	Results []metric.Result `json:"results"`
}

// Get returns the result for a metric family name.
func (r *ScoreRecord) Get(name string) (metric.Result, bool) {
	for _, result := range r.Results {
		if result.Name == name {
			return result, true
		}
	}
	return metric.Result{}, false
}

// Values flattens the record into its ordered name-to-value mapping. Families
// with sub-values contribute one entry per sub-value.
func (r *ScoreRecord) Values() []NamedScore {
	var values []NamedScore
	for _, result := range r.Results {
		if len(result.SubScores) > 0 {
			for _, sub := range result.SubScores {
				values = append(values, NamedScore{Name: sub.Name, Score: sub.Score})
			}
			continue
		}
		values = append(values, NamedScore{Name: result.Name, Score: result.Score})
	}
	return values
}

// Value returns the flattened value for a metric or sub-value name.
func (r *ScoreRecord) Value(name string) (float64, bool) {
	for _, v := range r.Values() {
		if v.Name == name {
			return v.Score, true
		}
	}
	return 0, false
}

// Warnings collects the degenerate-input warnings from every result.
func (r *ScoreRecord) Warnings() []metric.Warning {
	var warnings []metric.Warning
	for _, result := range r.Results {
		warnings = append(warnings, result.Warnings...)
	}
	return warnings
}

// Report renders the record as a fixed-width human-readable table.
func (r *ScoreRecord) Report() string {
	var b strings.Builder
	for _, v := range r.Values() {
		fmt.Fprintf(&b, "%-8s %0.6f\n", v.Name+":", v.Score)
	}
	for _, result := range r.Results {
		if result.Degraded {
			fmt.Fprintf(&b, "# %s degraded; active stages: %s\n",
				result.Name, strings.Join(result.Stages, ", "))
		}
	}
	return b.String()
}
