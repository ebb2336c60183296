//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package bleu

import (
	"github.com/gregorlied/nlg-eval/internal/tokenize"
	"github.com/gregorlied/nlg-eval/metric"
)

// options holds internal configuration for BLEU scoring.
type options struct {
	// tokenizer produces the metric-owned tokenized view of each sentence.
	tokenizer metric.Tokenizer
	// order is the highest cumulative n-gram order reported.
	order int
	// perExample enables per-example (sentence-level) scores.
	perExample bool
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		tokenizer: tokenize.Words{},
		order:     MaxOrder,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures BLEU scoring.
type Option func(*options)

// WithTokenizer overrides the default tokenizer.
func WithTokenizer(tokenizer metric.Tokenizer) Option {
	return func(o *options) {
		if tokenizer != nil {
			o.tokenizer = tokenizer
		}
	}
}

// WithOrder caps the highest cumulative order reported, in [1, MaxOrder].
func WithOrder(order int) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithPerExampleScores includes sentence-level scores in the result.
func WithPerExampleScores() Option {
	return func(o *options) {
		o.perExample = true
	}
}
