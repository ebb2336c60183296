//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package nlgeval scores machine-generated text against human-written
// references with the BLEU, METEOR, ROUGE-L, and CIDEr metric families and
// merges the results into a single ordered record per scoring call.
package nlgeval

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/internal/pool"
	"github.com/gregorlied/nlg-eval/internal/telemetry"
	"github.com/gregorlied/nlg-eval/metric"
	"github.com/gregorlied/nlg-eval/metric/bleu"
	"github.com/gregorlied/nlg-eval/metric/cider"
	"github.com/gregorlied/nlg-eval/metric/meteor"
	"github.com/gregorlied/nlg-eval/metric/rouge"
	"github.com/gregorlied/nlg-eval/resource"
)

// Scorer runs the configured metrics over corpora and single examples. Shared
// resources are acquired lazily on first use, reused read-only across calls on
// the same Scorer, and released by Close.
type Scorer interface {
	// ScoreCorpus aligns the hypotheses with every reference source and
	// returns the corpus-level record.
	ScoreCorpus(ctx context.Context, hypotheses []string, referenceSources ...[]string) (*ScoreRecord, error)
	// ScoreCorpusFiles reads line-oriented text files and scores them.
	ScoreCorpusFiles(ctx context.Context, hypothesisPath string, referencePaths ...string) (*ScoreRecord, error)
	// ScoreExample scores a single hypothesis against its references as a
	// corpus of size one. The TF-IDF metric yields its documented zero unless
	// a pooled document-frequency table was configured.
	ScoreExample(ctx context.Context, hypothesis string, references []string) (*ScoreRecord, error)
	// ScoreExampleString is ScoreExample for references packed into one string
	// separated by corpus.ReferenceDelimiter.
	ScoreExampleString(ctx context.Context, hypothesis, references string) (*ScoreRecord, error)
	// Close releases the worker pool and loaded resources.
	Close() error
}

// New creates a Scorer with the supplied options.
func New(opt ...Option) (Scorer, error) {
	opts, err := newOptions(opt...)
	if err != nil {
		return nil, err
	}
	s := &scorer{opts: opts}
	if opts.parallelism > 1 {
		runner, err := pool.New(opts.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create metric pool: %w", err)
		}
		s.pool = runner
	}
	return s, nil
}

// scorer is the default implementation of Scorer.
type scorer struct {
	opts *options
	pool *pool.Runner

	// synonym resource state, loaded once and shared read-only.
	synOnce  sync.Once
	synonyms resource.SynonymSet
	synErr   error
}

// ScoreCorpus aligns and scores a whole corpus.
func (s *scorer) ScoreCorpus(ctx context.Context, hypotheses []string, referenceSources ...[]string) (*ScoreRecord, error) {
	start := time.Now()
	record, err := s.alignAndScore(ctx, hypotheses, referenceSources)
	telemetry.ObserveCall("corpus", err, time.Since(start))
	return record, err
}

// ScoreCorpusFiles reads hypothesis and reference files and scores them.
func (s *scorer) ScoreCorpusFiles(ctx context.Context, hypothesisPath string, referencePaths ...string) (*ScoreRecord, error) {
	start := time.Now()
	record, err := s.scoreFiles(ctx, hypothesisPath, referencePaths)
	telemetry.ObserveCall("corpus_files", err, time.Since(start))
	return record, err
}

// ScoreExample scores one hypothesis/reference pair as a corpus of size one.
func (s *scorer) ScoreExample(ctx context.Context, hypothesis string, references []string) (*ScoreRecord, error) {
	start := time.Now()
	record, err := s.scoreExample(ctx, hypothesis, references)
	telemetry.ObserveCall("example", err, time.Since(start))
	return record, err
}

// ScoreExampleString splits the packed reference string and scores the pair.
func (s *scorer) ScoreExampleString(ctx context.Context, hypothesis, references string) (*ScoreRecord, error) {
	start := time.Now()
	record, err := s.scoreExample(ctx, hypothesis, corpus.SplitReferences(references))
	telemetry.ObserveCall("example", err, time.Since(start))
	return record, err
}

// Close releases the worker pool and drops loaded resources.
func (s *scorer) Close() error {
	if s.pool != nil {
		s.pool.Release()
		s.pool = nil
	}
	s.synonyms = nil
	return nil
}

// scoreFiles loads the text sources and delegates to corpus scoring.
func (s *scorer) scoreFiles(ctx context.Context, hypothesisPath string, referencePaths []string) (*ScoreRecord, error) {
	hypotheses, err := corpus.FileSource(hypothesisPath).Lines()
	if err != nil {
		return nil, fmt.Errorf("read hypotheses: %w", err)
	}
	referenceSources := make([][]string, 0, len(referencePaths))
	for _, path := range referencePaths {
		lines, err := corpus.FileSource(path).Lines()
		if err != nil {
			return nil, fmt.Errorf("read references: %w", err)
		}
		referenceSources = append(referenceSources, lines)
	}
	return s.alignAndScore(ctx, hypotheses, referenceSources)
}

// scoreExample wraps one example into a corpus and scores it.
func (s *scorer) scoreExample(ctx context.Context, hypothesis string, references []string) (*ScoreRecord, error) {
	aligned, err := corpus.FromExamples([]corpus.Example{{
		Hypothesis: hypothesis,
		References: references,
	}})
	if err != nil {
		return nil, err
	}
	return s.scoreAligned(ctx, aligned)
}

// alignAndScore validates alignment and scores the resulting corpus.
func (s *scorer) alignAndScore(ctx context.Context, hypotheses []string, referenceSources [][]string) (*ScoreRecord, error) {
	aligned, err := corpus.Align(hypotheses, referenceSources...)
	if err != nil {
		return nil, err
	}
	return s.scoreAligned(ctx, aligned)
}

// metricJob is one metric family run plus its post-run annotation.
type metricJob struct {
	name   string
	run    func() (metric.Result, error)
	post   func(*metric.Result)
	result metric.Result
	err    error
}

// scoreAligned runs every enabled metric over the aligned corpus and merges
// the results into one record. Jobs are assembled and merged in a fixed order
// so parallel and serial execution produce identical records.
func (s *scorer) scoreAligned(ctx context.Context, c corpus.Corpus) (*ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	jobs := s.buildJobs(ctx, c)
	if s.pool != nil {
		fns := make([]func(), 0, len(jobs))
		for _, job := range jobs {
			job := job
			fns = append(fns, func() {
				job.result, job.err = job.run()
			})
		}
		if err := s.pool.Run(fns...); err != nil {
			return nil, fmt.Errorf("run metrics: %w", err)
		}
	} else {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			job.result, job.err = job.run()
		}
	}
	record := &ScoreRecord{ID: uuid.NewString()}
	for _, job := range jobs {
		if job.err != nil {
			return nil, fmt.Errorf("score %s: %w", job.name, job.err)
		}
		if job.post != nil {
			job.post(&job.result)
		}
		record.Results = append(record.Results, job.result)
	}
	if s.opts.ciderEnabled() {
		record.DFMode = DFModeCorpus
		if s.opts.pooledDF != nil {
			record.DFMode = DFModePooled
		}
	}
	return record, nil
}

// buildJobs assembles the enabled metric runs in fixed report order.
func (s *scorer) buildJobs(ctx context.Context, c corpus.Corpus) []*metricJob {
	var jobs []*metricJob
	if order := s.opts.bleuOrder(); order > 0 {
		bleuOpts := []bleu.Option{
			bleu.WithTokenizer(s.opts.tokenizer),
			bleu.WithOrder(order),
		}
		if s.opts.perExample {
			bleuOpts = append(bleuOpts, bleu.WithPerExampleScores())
		}
		jobs = append(jobs, &metricJob{
			name: metric.FamilyBleu,
			run:  func() (metric.Result, error) { return bleu.Score(ctx, c, bleuOpts...) },
		})
	}
	if s.opts.meteorEnabled() {
		synonyms, degraded := s.loadSynonyms(ctx)
		meteorOpts := []meteor.Option{
			meteor.WithTokenizer(s.opts.tokenizer),
			meteor.WithParameters(s.opts.meteorAlpha, s.opts.meteorBeta, s.opts.meteorGamma),
		}
		if synonyms != nil {
			meteorOpts = append(meteorOpts, meteor.WithSynonyms(synonyms))
		}
		if s.opts.perExample {
			meteorOpts = append(meteorOpts, meteor.WithPerExampleScores())
		}
		jobs = append(jobs, &metricJob{
			name: metric.FamilyMeteor,
			run:  func() (metric.Result, error) { return meteor.Score(ctx, c, meteorOpts...) },
			post: func(r *metric.Result) { r.Degraded = degraded },
		})
	}
	if s.opts.rougeEnabled() {
		rougeOpts := []rouge.Option{
			rouge.WithTokenizer(s.opts.tokenizer),
			rouge.WithBeta(s.opts.lcsBeta),
		}
		if s.opts.summaryLevelLCS {
			rougeOpts = append(rougeOpts, rouge.WithSummaryLevel())
		}
		if s.opts.perExample {
			rougeOpts = append(rougeOpts, rouge.WithPerExampleScores())
		}
		jobs = append(jobs, &metricJob{
			name: metric.FamilyRougeL,
			run:  func() (metric.Result, error) { return rouge.Score(ctx, c, rougeOpts...) },
		})
	}
	if s.opts.ciderEnabled() {
		ciderOpts := []cider.Option{
			cider.WithTokenizer(s.opts.tokenizer),
		}
		if s.opts.pooledDF != nil {
			ciderOpts = append(ciderOpts, cider.WithDocumentFrequencies(s.opts.pooledDF))
		}
		if s.opts.perExample {
			ciderOpts = append(ciderOpts, cider.WithPerExampleScores())
		}
		jobs = append(jobs, &metricJob{
			name: metric.FamilyCider,
			run:  func() (metric.Result, error) { return cider.Score(ctx, c, ciderOpts...) },
		})
	}
	return jobs
}

// loadSynonyms resolves the optional synonym resource once per Scorer. A
// loader failure degrades the alignment metric to the remaining stages and is
// reported through the result's Degraded flag, never as a call failure.
func (s *scorer) loadSynonyms(ctx context.Context) (resource.SynonymSet, bool) {
	if s.opts.loader == nil {
		return nil, false
	}
	s.synOnce.Do(func() {
		s.synonyms, s.synErr = s.opts.loader.Load(ctx, s.opts.synonymResourceID)
		if s.synErr != nil {
			s.opts.logger.Warn("synonym resource unavailable; alignment metric degrades to exact and stem stages",
				zap.String("resource", s.opts.synonymResourceID),
				zap.Error(s.synErr))
		}
	})
	if s.synErr != nil {
		return nil, true
	}
	return s.synonyms, false
}
