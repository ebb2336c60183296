//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package metric

import "fmt"

// WarningCode identifies a class of degenerate input.
type WarningCode int

const (
	// WarnUnknown represents an unspecified degeneracy.
	WarnUnknown WarningCode = iota
	// WarnEmptyCorpus signals that the corpus had zero examples.
	WarnEmptyCorpus
	// WarnEmptySequence signals an empty hypothesis or reference token sequence.
	WarnEmptySequence
	// WarnSingleExampleIDF signals that document frequencies were built from a
	// single example, forcing every IDF term to zero.
	WarnSingleExampleIDF
)

// String returns the string representation of the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnEmptyCorpus:
		return "empty_corpus"
	case WarnEmptySequence:
		return "empty_sequence"
	case WarnSingleExampleIDF:
		return "single_example_idf"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal signal that a metric's defined degenerate behavior
// triggered. The numeric result is still valid; callers inspect warnings to
// avoid misreading a forced low score as a computation fault.
type Warning struct {
	// Code classifies the degeneracy.
	Code WarningCode `json:"code"`
	// Example is the zero-based example index, or -1 for corpus-wide warnings.
	Example int `json:"example"`
	// Message describes the degeneracy in user-readable form.
	Message string `json:"message"`
}

// String renders the warning for logs and reports.
func (w Warning) String() string {
	if w.Example < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (example %d): %s", w.Code, w.Example, w.Message)
}
