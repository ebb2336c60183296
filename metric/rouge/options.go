//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"github.com/gregorlied/nlg-eval/internal/tokenize"
	"github.com/gregorlied/nlg-eval/metric"
)

// DefaultBeta weights recall over precision in the F-measure.
const DefaultBeta = 1.2

// options holds internal configuration for ROUGE-L scoring.
type options struct {
	// tokenizer produces the metric-owned tokenized view of each sentence.
	tokenizer metric.Tokenizer
	// beta is the recall weight of the F-measure.
	beta float64
	// summaryLevel enables sentence-split union-LCS scoring.
	summaryLevel bool
	// perExample enables per-example scores in the result.
	perExample bool
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		tokenizer: tokenize.Words{},
		beta:      DefaultBeta,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures ROUGE-L scoring.
type Option func(*options)

// WithTokenizer overrides the default tokenizer.
func WithTokenizer(tokenizer metric.Tokenizer) Option {
	return func(o *options) {
		if tokenizer != nil {
			o.tokenizer = tokenizer
		}
	}
}

// WithBeta sets the recall weight of the F-measure.
func WithBeta(beta float64) Option {
	return func(o *options) {
		if beta > 0 {
			o.beta = beta
		}
	}
}

// WithSummaryLevel scores with sentence-split union LCS instead of flat LCS.
func WithSummaryLevel() Option {
	return func(o *options) {
		o.summaryLevel = true
	}
}

// WithPerExampleScores includes per-example F-measures in the result.
func WithPerExampleScores() Option {
	return func(o *options) {
		o.perExample = true
	}
}
