//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package bleu implements the modified n-gram precision family with brevity
// penalty. A zero clipped count at any order yields a precision of 0 for the
// whole corpus with no smoothing; this matches the reference convention and
// is the defined behavior, not a bug.
package bleu

import (
	"context"
	"fmt"
	"math"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/internal/ngram"
	"github.com/gregorlied/nlg-eval/metric"
)

// MaxOrder is the highest n-gram order scored.
const MaxOrder = 4

// statistics accumulates the corpus-level counts BLEU is computed from.
// Aggregation sums counts across examples before dividing; it is not a mean
// of per-example ratios.
type statistics struct {
	// clipped holds summed clipped n-gram matches per order.
	clipped [MaxOrder]int64
	// total holds summed hypothesis n-gram counts per order.
	total [MaxOrder]int64
	// hypLen is the summed hypothesis token length.
	hypLen int64
	// refLen is the summed effective reference length, taking per example the
	// reference length closest to the hypothesis length.
	refLen int64
}

// add accumulates another example's statistics.
func (s *statistics) add(o statistics) {
	for n := 0; n < MaxOrder; n++ {
		s.clipped[n] += o.clipped[n]
		s.total[n] += o.total[n]
	}
	s.hypLen += o.hypLen
	s.refLen += o.refLen
}

// Score computes corpus-level Bleu_1..Bleu_order over the aligned corpus.
func Score(ctx context.Context, c corpus.Corpus, opt ...Option) (metric.Result, error) {
	if err := ctx.Err(); err != nil {
		return metric.Result{}, err
	}
	opts := newOptions(opt...)
	if opts.order < 1 || opts.order > MaxOrder {
		return metric.Result{}, fmt.Errorf("bleu order %d out of range [1,%d]", opts.order, MaxOrder)
	}
	result := metric.Result{Name: metric.FamilyBleu}
	if len(c) == 0 {
		result.Warnings = append(result.Warnings, metric.Warning{
			Code:    metric.WarnEmptyCorpus,
			Example: -1,
			Message: "no examples to score",
		})
		for n := 1; n <= opts.order; n++ {
			result.SubScores = append(result.SubScores, metric.SubScore{Name: subName(n)})
		}
		return result, nil
	}
	var agg statistics
	for _, example := range c {
		st := exampleStatistics(example, opts.tokenizer, opts.order)
		agg.add(st)
		if opts.perExample {
			result.PerExample = append(result.PerExample, combine(st, opts.order))
		}
	}
	result.Details = make(map[string]float64, opts.order+1)
	for n := 1; n <= opts.order; n++ {
		result.Details[fmt.Sprintf("p_%d", n)] = precision(agg, n)
		result.SubScores = append(result.SubScores, metric.SubScore{
			Name:  subName(n),
			Score: combine(agg, n),
		})
	}
	result.Details["brevity_penalty"] = brevityPenalty(agg)
	result.Score = result.SubScores[len(result.SubScores)-1].Score
	return result, nil
}

// subName formats the cumulative-order sub-value name.
func subName(n int) string {
	return fmt.Sprintf("Bleu_%d", n)
}

// exampleStatistics computes clipped and total counts for one example.
func exampleStatistics(example corpus.Example, tok metric.Tokenizer, order int) statistics {
	hyp := tok.Tokenize(example.Hypothesis)
	refs := make([][]string, 0, len(example.References))
	for _, reference := range example.References {
		refs = append(refs, tok.Tokenize(reference))
	}
	var st statistics
	st.hypLen = int64(len(hyp))
	st.refLen = int64(closestReferenceLength(len(hyp), refs))
	for n := 1; n <= order; n++ {
		hypGrams := ngram.Count(hyp, n)
		// Multi-reference clipping: cap each hypothesis n-gram count at the
		// maximum count observed in any single reference.
		maxRefCounts := make(map[string]int, len(hypGrams))
		for _, ref := range refs {
			for gram, cnt := range ngram.Count(ref, n) {
				if cnt > maxRefCounts[gram] {
					maxRefCounts[gram] = cnt
				}
			}
		}
		for gram, cnt := range hypGrams {
			st.total[n-1] += int64(cnt)
			if capped := maxRefCounts[gram]; capped > 0 {
				if cnt < capped {
					st.clipped[n-1] += int64(cnt)
				} else {
					st.clipped[n-1] += int64(capped)
				}
			}
		}
	}
	return st
}

// closestReferenceLength returns the reference length closest to the
// hypothesis length, breaking ties toward the shorter reference.
func closestReferenceLength(hypLen int, refs [][]string) int {
	best := 0
	bestDiff := math.MaxInt
	for _, ref := range refs {
		diff := len(ref) - hypLen
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff || (diff == bestDiff && len(ref) < best) {
			best = len(ref)
			bestDiff = diff
		}
	}
	return best
}

// precision returns the corpus-level modified precision p_n.
func precision(st statistics, n int) float64 {
	if st.total[n-1] == 0 {
		return 0
	}
	return float64(st.clipped[n-1]) / float64(st.total[n-1])
}

// combine returns the brevity-penalized geometric mean of p_1..p_order.
func combine(st statistics, order int) float64 {
	logSum := 0.0
	for n := 1; n <= order; n++ {
		p := precision(st, n)
		if p == 0 {
			return 0
		}
		logSum += math.Log(p)
	}
	return brevityPenalty(st) * math.Exp(logSum/float64(order))
}

// brevityPenalty returns exp(1-r/c) when the hypothesis undershoots the
// effective reference length and 1 otherwise.
func brevityPenalty(st statistics) float64 {
	if st.hypLen == 0 {
		return 1
	}
	if st.hypLen >= st.refLen {
		return 1
	}
	return math.Exp(1 - float64(st.refLen)/float64(st.hypLen))
}
