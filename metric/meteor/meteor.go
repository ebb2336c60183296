//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package meteor implements alignment-based scoring with configurable matching
// stages (exact, stemmed, synonym), a recall-weighted harmonic mean, and a
// fragmentation penalty.
package meteor

import (
	"context"
	"fmt"
	"math"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/metric"
)

// statistics holds the alignment counts the score is computed from. Corpus
// aggregation sums these across examples before combining; the corpus score is
// a corpus-level statistic, not a mean of per-example scores.
type statistics struct {
	// matches is the number of aligned unigrams.
	matches int
	// hypLen and refLen are the token lengths of the aligned pair.
	hypLen int
	refLen int
	// chunks is the number of maximal contiguous matched runs.
	chunks int
}

// add accumulates another example's statistics.
func (s *statistics) add(o statistics) {
	s.matches += o.matches
	s.hypLen += o.hypLen
	s.refLen += o.refLen
	s.chunks += o.chunks
}

// Score computes the corpus-level METEOR score over the aligned corpus.
func Score(ctx context.Context, c corpus.Corpus, opt ...Option) (metric.Result, error) {
	if err := ctx.Err(); err != nil {
		return metric.Result{}, err
	}
	opts, err := newOptions(opt...)
	if err != nil {
		return metric.Result{}, fmt.Errorf("meteor options: %w", err)
	}
	result := metric.Result{Name: metric.FamilyMeteor}
	for _, stage := range opts.stages {
		result.Stages = append(result.Stages, string(stage))
	}
	if len(c) == 0 {
		result.Warnings = append(result.Warnings, metric.Warning{
			Code:    metric.WarnEmptyCorpus,
			Example: -1,
			Message: "no examples to score",
		})
		return result, nil
	}
	var agg statistics
	for _, example := range c {
		best, bestScore := bestReference(example, opts)
		agg.add(best)
		if opts.perExample {
			result.PerExample = append(result.PerExample, bestScore)
		}
	}
	result.Score = combine(agg, opts)
	result.Details = map[string]float64{
		"precision": ratio(agg.matches, agg.hypLen),
		"recall":    ratio(agg.matches, agg.refLen),
		"fragmentation_penalty": fragmentationPenalty(
			opts.gamma, opts.beta, agg.chunks, agg.matches),
	}
	return result, nil
}

// bestReference aligns the hypothesis against each reference and returns the
// statistics of the highest-scoring alignment. Ties keep the first reference.
func bestReference(example corpus.Example, opts *options) (statistics, float64) {
	hyp := opts.tokenizer.Tokenize(example.Hypothesis)
	var best statistics
	bestScore := -1.0
	for _, reference := range example.References {
		ref := opts.tokenizer.Tokenize(reference)
		st := alignWords(hyp, ref, opts)
		score := combine(st, opts)
		if score > bestScore {
			best = st
			bestScore = score
		}
	}
	if bestScore < 0 {
		bestScore = 0
	}
	return best, bestScore
}

// combine turns alignment statistics into the final score:
// (1 - penalty) * P*R / (alpha*P + (1-alpha)*R).
func combine(st statistics, opts *options) float64 {
	if st.matches == 0 {
		return 0
	}
	precision := ratio(st.matches, st.hypLen)
	recall := ratio(st.matches, st.refLen)
	if precision == 0 || recall == 0 {
		return 0
	}
	fMean := precision * recall / (opts.alpha*precision + (1-opts.alpha)*recall)
	penalty := fragmentationPenalty(opts.gamma, opts.beta, st.chunks, st.matches)
	return (1 - penalty) * fMean
}

// fragmentationPenalty returns gamma*(chunks/matches)^beta, the multiplicative
// penalty that grows as matches fragment into more chunks.
func fragmentationPenalty(gamma, beta float64, chunks, matches int) float64 {
	if matches == 0 || chunks == 0 {
		return 0
	}
	return gamma * math.Pow(float64(chunks)/float64(matches), beta)
}

// ratio divides two counts, returning 0 for an empty denominator.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
