//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package nlgeval

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gregorlied/nlg-eval/internal/tokenize"
	"github.com/gregorlied/nlg-eval/metric"
	"github.com/gregorlied/nlg-eval/metric/bleu"
	"github.com/gregorlied/nlg-eval/metric/cider"
	"github.com/gregorlied/nlg-eval/metric/meteor"
	"github.com/gregorlied/nlg-eval/metric/rouge"
	"github.com/gregorlied/nlg-eval/resource"
)

// DefaultSynonymResourceID is the resource identifier requested from the
// configured loader for the synonym stage.
const DefaultSynonymResourceID = "synonyms.txt"

// validOmitNames are the names accepted by WithOmitMetrics.
var validOmitNames = map[string]bool{
	metric.NameBleu1:    true,
	metric.NameBleu2:    true,
	metric.NameBleu3:    true,
	metric.NameBleu4:    true,
	metric.FamilyMeteor: true,
	metric.FamilyRougeL: true,
	metric.FamilyCider:  true,
}

// options holds scorer configuration.
type options struct {
	logger            *zap.Logger
	tokenizer         metric.Tokenizer
	parallelism       int
	skipAlignment     bool
	skipOverlap       bool
	skipTFIDF         bool
	omit              map[string]bool
	loader            resource.Loader
	synonymResourceID string
	pooledDF          *cider.DocumentFrequencies
	perExample        bool
	summaryLevelLCS   bool
	lcsBeta           float64
	meteorAlpha       float64
	meteorBeta        float64
	meteorGamma       float64
}

// newOptions applies functional options and validates them.
func newOptions(opt ...Option) (*options, error) {
	opts := &options{
		logger:            zap.NewNop(),
		tokenizer:         tokenize.Words{},
		omit:              make(map[string]bool),
		synonymResourceID: DefaultSynonymResourceID,
		lcsBeta:           rouge.DefaultBeta,
		meteorAlpha:       meteor.DefaultAlpha,
		meteorBeta:        meteor.DefaultBeta,
		meteorGamma:       meteor.DefaultGamma,
	}
	for _, o := range opt {
		o(opts)
	}
	for name := range opts.omit {
		if !validOmitNames[name] {
			return nil, fmt.Errorf("invalid metric to omit: %s", name)
		}
	}
	if opts.parallelism < 0 {
		return nil, fmt.Errorf("parallelism must not be negative, got %d", opts.parallelism)
	}
	return opts, nil
}

// bleuOrder resolves the highest cumulative BLEU order to report. Omitting
// Bleu_i omits Bleu_j for every j >= i; order 0 disables the family.
func (o *options) bleuOrder() int {
	if o.skipOverlap {
		return 0
	}
	order := bleu.MaxOrder
	for i := 1; i <= bleu.MaxOrder; i++ {
		if o.omit[fmt.Sprintf("Bleu_%d", i)] {
			order = i - 1
			break
		}
	}
	return order
}

// meteorEnabled reports whether the alignment metric runs.
func (o *options) meteorEnabled() bool {
	return !o.skipAlignment && !o.omit[metric.FamilyMeteor]
}

// rougeEnabled reports whether the LCS metric runs.
func (o *options) rougeEnabled() bool {
	return !o.skipOverlap && !o.omit[metric.FamilyRougeL]
}

// ciderEnabled reports whether the TF-IDF metric runs.
func (o *options) ciderEnabled() bool {
	return !o.skipTFIDF && !o.omit[metric.FamilyCider]
}

// Option configures a Scorer.
type Option func(*options)

// WithLogger sets the logger used for degradation events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTokenizer overrides the default tokenizer for every metric.
func WithTokenizer(tokenizer metric.Tokenizer) Option {
	return func(o *options) {
		if tokenizer != nil {
			o.tokenizer = tokenizer
		}
	}
}

// WithParallelism runs the metrics on a worker pool of the given size.
// Results are identical to serial execution.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithSkipAlignmentMetric skips the alignment (METEOR) metric.
func WithSkipAlignmentMetric() Option {
	return func(o *options) {
		o.skipAlignment = true
	}
}

// WithSkipOverlapMetrics skips the n-gram (BLEU) and LCS (ROUGE-L) metrics.
func WithSkipOverlapMetrics() Option {
	return func(o *options) {
		o.skipOverlap = true
	}
}

// WithSkipTFIDFMetric skips the TF-IDF (CIDEr) metric.
func WithSkipTFIDFMetric() Option {
	return func(o *options) {
		o.skipTFIDF = true
	}
}

// WithOmitMetrics omits metrics by reported name. Omitting Bleu_i also omits
// Bleu_j for j >= i.
func WithOmitMetrics(names ...string) Option {
	return func(o *options) {
		for _, name := range names {
			o.omit[name] = true
		}
	}
}

// WithResourceLoader configures the loader for the optional synonym resource.
func WithResourceLoader(loader resource.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithSynonymResourceID overrides the identifier requested from the loader.
func WithSynonymResourceID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.synonymResourceID = id
		}
	}
}

// WithPooledDocumentFrequencies scores the TF-IDF metric against a pooled
// table built from a larger reference corpus. The record reports the mode.
func WithPooledDocumentFrequencies(df *cider.DocumentFrequencies) Option {
	return func(o *options) {
		o.pooledDF = df
	}
}

// WithPerExampleScores includes per-example scores in every metric result.
func WithPerExampleScores() Option {
	return func(o *options) {
		o.perExample = true
	}
}

// WithSummaryLevelLCS scores ROUGE-L at summary level over Punkt sentences.
func WithSummaryLevelLCS() Option {
	return func(o *options) {
		o.summaryLevelLCS = true
	}
}

// WithLCSBeta sets the recall weight of the ROUGE-L F-measure.
func WithLCSBeta(beta float64) Option {
	return func(o *options) {
		o.lcsBeta = beta
	}
}

// WithMeteorParameters sets the METEOR alpha, beta, and gamma parameters.
// A gamma of zero disables the fragmentation penalty.
func WithMeteorParameters(alpha, beta, gamma float64) Option {
	return func(o *options) {
		o.meteorAlpha = alpha
		o.meteorBeta = beta
		o.meteorGamma = gamma
	}
}
