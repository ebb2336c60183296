//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package cider

import (
	"github.com/gregorlied/nlg-eval/internal/tokenize"
	"github.com/gregorlied/nlg-eval/metric"
)

// options holds internal configuration for CIDEr scoring.
type options struct {
	// tokenizer produces the metric-owned tokenized view of each sentence.
	tokenizer metric.Tokenizer
	// df, when set, scores against an externally built pooled table instead
	// of building one from the scored corpus.
	df *DocumentFrequencies
	// perExample enables per-example scores in the result.
	perExample bool
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		tokenizer: tokenize.Words{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures CIDEr scoring.
type Option func(*options)

// WithTokenizer overrides the default tokenizer.
func WithTokenizer(tokenizer metric.Tokenizer) Option {
	return func(o *options) {
		if tokenizer != nil {
			o.tokenizer = tokenizer
		}
	}
}

// WithDocumentFrequencies scores against a pooled document-frequency table,
// e.g. one built from a larger reference corpus than the examples scored.
func WithDocumentFrequencies(df *DocumentFrequencies) Option {
	return func(o *options) {
		o.df = df
	}
}

// WithPerExampleScores includes per-example scores in the result.
func WithPerExampleScores() Option {
	return func(o *options) {
		o.perExample = true
	}
}
