//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package meteor

import (
	"fmt"

	"github.com/gregorlied/nlg-eval/internal/tokenize"
	"github.com/gregorlied/nlg-eval/metric"
	"github.com/gregorlied/nlg-eval/resource"
)

// Stage identifies one matcher capability, tried in priority order.
type Stage string

const (
	// StageExact matches identical tokens.
	StageExact Stage = "exact"
	// StageStem matches tokens with identical stems.
	StageStem Stage = "stem"
	// StageSynonym matches tokens related by a loaded synonym resource.
	StageSynonym Stage = "synonym"
)

// Standard METEOR parameters, exported so callers layering their own option
// surface can seed it with the same defaults.
const (
	DefaultAlpha = 0.9
	DefaultBeta  = 3.0
	DefaultGamma = 0.5
)

// options holds internal configuration for METEOR scoring.
type options struct {
	// tokenizer produces the metric-owned tokenized view of each sentence.
	tokenizer metric.Tokenizer
	// alpha is the recall weight of the harmonic mean.
	alpha float64
	// beta is the fragmentation penalty exponent.
	beta float64
	// gamma is the fragmentation penalty weight.
	gamma float64
	// stages are the matcher capabilities in priority order.
	stages []Stage
	// synonyms backs the synonym stage; nil disables it.
	synonyms resource.SynonymSet
	// perExample enables per-example scores in the result.
	perExample bool
}

// newOptions applies functional options and validates the stage configuration.
func newOptions(opt ...Option) (*options, error) {
	opts := &options{
		tokenizer: tokenize.Words{},
		alpha:     DefaultAlpha,
		beta:      DefaultBeta,
		gamma:     DefaultGamma,
	}
	for _, o := range opt {
		o(opts)
	}
	if len(opts.stages) == 0 {
		opts.stages = []Stage{StageExact, StageStem}
		if opts.synonyms != nil {
			opts.stages = append(opts.stages, StageSynonym)
		}
	}
	for _, stage := range opts.stages {
		switch stage {
		case StageExact, StageStem:
		case StageSynonym:
			if opts.synonyms == nil {
				return nil, fmt.Errorf("stage %s requires a synonym set", stage)
			}
		default:
			return nil, fmt.Errorf("unknown stage: %s", stage)
		}
	}
	return opts, nil
}

// Option configures METEOR scoring.
type Option func(*options)

// WithTokenizer overrides the default tokenizer.
func WithTokenizer(tokenizer metric.Tokenizer) Option {
	return func(o *options) {
		if tokenizer != nil {
			o.tokenizer = tokenizer
		}
	}
}

// WithParameters sets alpha, beta, and gamma. Out-of-range values keep the
// defaults.
func WithParameters(alpha, beta, gamma float64) Option {
	return func(o *options) {
		if alpha > 0 && alpha <= 1 {
			o.alpha = alpha
		}
		if beta > 0 {
			o.beta = beta
		}
		if gamma >= 0 && gamma <= 1 {
			o.gamma = gamma
		}
	}
}

// WithStages sets the matcher capabilities tried in priority order.
func WithStages(stages ...Stage) Option {
	return func(o *options) {
		o.stages = append([]Stage(nil), stages...)
	}
}

// WithSynonyms supplies the synonym resource. When stages are left at their
// default, configuring synonyms enables the synonym stage.
func WithSynonyms(synonyms resource.SynonymSet) Option {
	return func(o *options) {
		o.synonyms = synonyms
	}
}

// WithPerExampleScores includes per-example scores in the result.
func WithPerExampleScores() Option {
	return func(o *options) {
		o.perExample = true
	}
}
