//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package cider implements consensus-based TF-IDF n-gram scoring (CIDEr).
//
// On a corpus of a single example every observed n-gram appears in every
// reference set, so each IDF term is log(1)=0 and the score is exactly 0.
// This degeneracy is documented, surfaced as a warning, and preserved.
package cider

import (
	"context"
	"math"
	"sort"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/internal/ngram"
	"github.com/gregorlied/nlg-eval/metric"
)

// MaxOrder is the highest n-gram order scored.
const MaxOrder = 4

// scale is the standard readability factor applied to the averaged cosine.
const scale = 10.0

// DocumentFrequencies counts, per n-gram order, the number of examples whose
// reference set contains each n-gram. It is built once per corpus-level call
// and is read-only while scoring; a pooled table may be reused across
// single-example calls.
type DocumentFrequencies struct {
	// counts maps n-gram key to example-occurrence count, indexed by order-1.
	counts [MaxOrder]map[string]int
	// numExamples is the corpus size N the IDF terms are computed against.
	numExamples int
}

// NumExamples returns the corpus size the table was built from.
func (df *DocumentFrequencies) NumExamples() int {
	return df.numExamples
}

// BuildDocumentFrequencies builds the table over the reference sets of c.
func BuildDocumentFrequencies(c corpus.Corpus, tok metric.Tokenizer) *DocumentFrequencies {
	df := &DocumentFrequencies{numExamples: len(c)}
	for n := 0; n < MaxOrder; n++ {
		df.counts[n] = make(map[string]int)
	}
	for _, example := range c {
		for n := 1; n <= MaxOrder; n++ {
			seen := make(map[string]struct{})
			for _, reference := range example.References {
				for gram := range ngram.Count(tok.Tokenize(reference), n) {
					seen[gram] = struct{}{}
				}
			}
			for gram := range seen {
				df.counts[n-1][gram]++
			}
		}
	}
	return df
}

// idf returns log(N/df(g)), flooring df at 1 for n-grams never seen in any
// reference set.
func (df *DocumentFrequencies) idf(order int, gram string) float64 {
	count := df.counts[order-1][gram]
	if count < 1 {
		count = 1
	}
	return math.Log(float64(df.numExamples) / float64(count))
}

// Score computes corpus-level CIDEr: the mean over examples of the
// reference-averaged, order-averaged cosine similarity between TF-IDF vectors,
// scaled by 10.
func Score(ctx context.Context, c corpus.Corpus, opt ...Option) (metric.Result, error) {
	if err := ctx.Err(); err != nil {
		return metric.Result{}, err
	}
	opts := newOptions(opt...)
	result := metric.Result{Name: metric.FamilyCider}
	if len(c) == 0 {
		result.Warnings = append(result.Warnings, metric.Warning{
			Code:    metric.WarnEmptyCorpus,
			Example: -1,
			Message: "no examples to score",
		})
		return result, nil
	}
	df := opts.df
	if df == nil {
		df = BuildDocumentFrequencies(c, opts.tokenizer)
	}
	if df.numExamples <= 1 {
		result.Warnings = append(result.Warnings, metric.Warning{
			Code:    metric.WarnSingleExampleIDF,
			Example: -1,
			Message: "document frequencies from a single example force every IDF to zero",
		})
	}
	var sum float64
	for _, example := range c {
		score := scoreExample(example, df, opts)
		sum += score
		if opts.perExample {
			result.PerExample = append(result.PerExample, score)
		}
	}
	result.Score = sum / float64(len(c))
	return result, nil
}

// scoreExample averages cosine similarity over references and orders for one
// example.
func scoreExample(example corpus.Example, df *DocumentFrequencies, opts *options) float64 {
	hyp := opts.tokenizer.Tokenize(example.Hypothesis)
	total := 0.0
	for n := 1; n <= MaxOrder; n++ {
		hypVec := tfidfVector(hyp, n, df)
		perOrder := 0.0
		for _, reference := range example.References {
			refVec := tfidfVector(opts.tokenizer.Tokenize(reference), n, df)
			perOrder += cosine(hypVec, refVec)
		}
		total += perOrder / float64(len(example.References))
	}
	return scale * total / float64(MaxOrder)
}

// tfidfVector builds the sparse TF-IDF vector of order n for a token sequence.
// tf is the raw n-gram count normalized by the total n-grams of that order.
func tfidfVector(tokens []string, n int, df *DocumentFrequencies) map[string]float64 {
	counts := ngram.Count(tokens, n)
	total := ngram.Total(tokens, n)
	if total == 0 {
		return map[string]float64{}
	}
	vec := make(map[string]float64, len(counts))
	for gram, cnt := range counts {
		vec[gram] = float64(cnt) / float64(total) * df.idf(n, gram)
	}
	return vec
}

// cosine returns the cosine similarity of two sparse vectors. Terms are
// accumulated in sorted key order so repeated runs produce bit-identical sums.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	dot := 0.0
	normA := 0.0
	for _, key := range keys {
		normA += a[key] * a[key]
		if w, ok := b[key]; ok {
			dot += a[key] * w
		}
	}
	keysB := make([]string, 0, len(b))
	for key := range b {
		keysB = append(keysB, key)
	}
	sort.Strings(keysB)
	normB := 0.0
	for _, key := range keysB {
		normB += b[key] * b[key]
	}
	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
