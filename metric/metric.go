//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package metric provides the shared contracts for scoring metrics.
package metric

// Family names as they appear in a score record.
const (
	FamilyBleu   = "Bleu"
	FamilyMeteor = "METEOR"
	FamilyRougeL = "ROUGE_L"
	FamilyCider  = "CIDEr"
)

// Sub-value names reported by the n-gram precision family.
const (
	NameBleu1 = "Bleu_1"
	NameBleu2 = "Bleu_2"
	NameBleu3 = "Bleu_3"
	NameBleu4 = "Bleu_4"
)

// Tokenizer tokenizes text into an ordered list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// SubScore is one named component of a metric family result.
type SubScore struct {
	// Name identifies the component, e.g. Bleu_2.
	Name string `json:"name"`
	// Score is the component value.
	Score float64 `json:"score"`
}

// Result holds a single metric family's outcome for one scoring call.
type Result struct {
	// Name identifies the metric family.
	Name string `json:"name"`
	// Score is the corpus-level value. For families with sub-values it equals
	// the highest-order sub-value.
	Score float64 `json:"score"`
	// SubScores lists named component values in report order, when the family
	// reports more than one value.
	SubScores []SubScore `json:"subScores,omitempty"`
	// PerExample lists per-example scores when requested.
	PerExample []float64 `json:"perExample,omitempty"`
	// Details carries auxiliary statistics such as per-order precisions.
	Details map[string]float64 `json:"details,omitempty"`
	// Warnings lists degenerate-input signals raised while scoring.
	Warnings []Warning `json:"warnings,omitempty"`
	// Degraded reports that an optional resource was unavailable and the
	// metric ran with reduced capability.
	Degraded bool `json:"degraded,omitempty"`
	// Stages lists the matching stages that were active, for metrics with
	// configurable matcher capabilities.
	Stages []string `json:"stages,omitempty"`
}
