//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package rouge implements longest-common-subsequence scoring (ROUGE-L).
package rouge

import (
	"context"
	"fmt"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/metric"
)

// Score computes the corpus-level ROUGE-L F-measure: the arithmetic mean of
// per-example best-reference F-measures.
func Score(ctx context.Context, c corpus.Corpus, opt ...Option) (metric.Result, error) {
	if err := ctx.Err(); err != nil {
		return metric.Result{}, err
	}
	opts := newOptions(opt...)
	result := metric.Result{Name: metric.FamilyRougeL}
	if len(c) == 0 {
		result.Warnings = append(result.Warnings, metric.Warning{
			Code:    metric.WarnEmptyCorpus,
			Example: -1,
			Message: "no examples to score",
		})
		return result, nil
	}
	var sum float64
	for i, example := range c {
		f, degenerate, err := scoreExample(example, opts)
		if err != nil {
			return metric.Result{}, fmt.Errorf("score example %d: %w", i, err)
		}
		if degenerate {
			result.Warnings = append(result.Warnings, metric.Warning{
				Code:    metric.WarnEmptySequence,
				Example: i,
				Message: "empty hypothesis or reference yields F=0",
			})
		}
		sum += f
		if opts.perExample {
			result.PerExample = append(result.PerExample, f)
		}
	}
	result.Score = sum / float64(len(c))
	return result, nil
}

// scoreExample returns the best-reference F-measure for one example and
// whether a degenerate empty sequence was encountered.
func scoreExample(example corpus.Example, opts *options) (float64, bool, error) {
	hyp := opts.tokenizer.Tokenize(example.Hypothesis)
	best := 0.0
	degenerate := false
	for _, reference := range example.References {
		ref := opts.tokenizer.Tokenize(reference)
		var f float64
		if opts.summaryLevel {
			var err error
			f, err = summaryFMeasure(example.Hypothesis, reference, opts)
			if err != nil {
				return 0, false, err
			}
			if len(hyp) == 0 || len(ref) == 0 {
				degenerate = true
			}
		} else if len(hyp) == 0 || len(ref) == 0 {
			degenerate = true
		} else {
			lcs := lcsLength(ref, hyp)
			recall := float64(lcs) / float64(len(ref))
			precision := float64(lcs) / float64(len(hyp))
			f = fMeasure(precision, recall, opts.beta)
		}
		if f > best {
			best = f
		}
	}
	return best, degenerate, nil
}

// fMeasure combines precision and recall with a recall-weighting beta:
// F = (1+beta^2)*R*P / (R + beta^2*P).
func fMeasure(precision, recall, beta float64) float64 {
	if precision == 0 || recall == 0 {
		return 0
	}
	b2 := beta * beta
	return (1 + b2) * recall * precision / (recall + b2*precision)
}

// lcsLength computes the length of the longest common subsequence using a
// rolling two-row dynamic program.
func lcsLength(ref, hyp []string) int {
	if len(ref) == 0 || len(hyp) == 0 {
		return 0
	}
	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)
	for i := 1; i <= len(ref); i++ {
		curr[0] = 0
		for j := 1; j <= len(hyp); j++ {
			if ref[i-1] == hyp[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(hyp)]
}
