//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package corpus aligns hypothesis and reference sequences into scoring corpora.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Example pairs one hypothesis with its ordered, non-empty list of references.
type Example struct {
	// Hypothesis is the machine-generated sentence.
	Hypothesis string
	// References are the human-written sentences the hypothesis is scored against.
	References []string
}

// Corpus is an ordered, immutable sequence of aligned examples.
type Corpus []Example

// AlignmentError reports a hypothesis/reference count mismatch. It names the
// exact counts that mismatched so a failed call states which contract was
// violated.
type AlignmentError struct {
	// HypothesisCount is the number of hypothesis lines supplied.
	HypothesisCount int
	// ReferenceCounts holds the line count of each reference source in order.
	ReferenceCounts []int
	// err carries the per-source mismatch details.
	err error
}

// Error formats the mismatched counts.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("hypothesis/reference count mismatch: %d hypotheses, reference sources %v: %v",
		e.HypothesisCount, e.ReferenceCounts, e.err)
}

// Unwrap exposes the per-source mismatch details.
func (e *AlignmentError) Unwrap() error {
	return e.err
}

// Align validates that every reference source has exactly one line per
// hypothesis and produces the index-preserving aligned corpus. An empty
// hypothesis list with equally empty reference sources is accepted and yields
// an empty corpus. Align has no side effects.
func Align(hypotheses []string, referenceSources ...[]string) (Corpus, error) {
	if len(referenceSources) == 0 {
		return nil, errors.New("at least one reference source is required")
	}
	var mismatches *multierror.Error
	counts := make([]int, 0, len(referenceSources))
	for i, source := range referenceSources {
		counts = append(counts, len(source))
		if len(source) != len(hypotheses) {
			mismatches = multierror.Append(mismatches, fmt.Errorf(
				"reference source %d has %d lines, want %d", i, len(source), len(hypotheses)))
		}
	}
	if mismatches != nil {
		return nil, &AlignmentError{
			HypothesisCount: len(hypotheses),
			ReferenceCounts: counts,
			err:             mismatches.ErrorOrNil(),
		}
	}
	aligned := make(Corpus, 0, len(hypotheses))
	for i, hypothesis := range hypotheses {
		references := make([]string, 0, len(referenceSources))
		for _, source := range referenceSources {
			references = append(references, strings.TrimSpace(source[i]))
		}
		aligned = append(aligned, Example{
			Hypothesis: strings.TrimSpace(hypothesis),
			References: references,
		})
	}
	return aligned, nil
}

// ReferenceDelimiter separates references packed into a single string, the
// interchange form used by line-oriented tooling where one example's
// references travel as one field.
const ReferenceDelimiter = "||<|>||"

// SplitReferences splits a delimiter-packed reference string into trimmed
// references, dropping empty entries.
func SplitReferences(joined string) []string {
	parts := strings.Split(joined, ReferenceDelimiter)
	references := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		references = append(references, part)
	}
	return references
}

// FromExamples builds a corpus from caller-assembled examples. Reference-set
// cardinality may vary across examples, but every example must carry at least
// one reference.
func FromExamples(examples []Example) (Corpus, error) {
	aligned := make(Corpus, 0, len(examples))
	for i, example := range examples {
		if len(example.References) == 0 {
			return nil, fmt.Errorf("example %d has no references", i)
		}
		references := make([]string, 0, len(example.References))
		for _, reference := range example.References {
			references = append(references, strings.TrimSpace(reference))
		}
		aligned = append(aligned, Example{
			Hypothesis: strings.TrimSpace(example.Hypothesis),
			References: references,
		})
	}
	return aligned, nil
}
