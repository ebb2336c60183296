//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_Valid verifies index-preserving alignment across sources.
func TestAlign_Valid(t *testing.T) {
	hyps := []string{"h1", "h2"}
	refsA := []string{"a1 ", "a2"}
	refsB := []string{" b1", "b2"}

	aligned, err := Align(hyps, refsA, refsB)
	require.NoError(t, err)
	require.Len(t, aligned, 2)
	assert.Equal(t, Example{Hypothesis: "h1", References: []string{"a1", "b1"}}, aligned[0])
	assert.Equal(t, Example{Hypothesis: "h2", References: []string{"a2", "b2"}}, aligned[1])
}

// TestAlign_CountMismatch verifies that mismatched counts fail with an
// AlignmentError naming the exact counts.
func TestAlign_CountMismatch(t *testing.T) {
	hyps := []string{"h1", "h2", "h3", "h4", "h5"}
	refs := []string{"r1", "r2", "r3", "r4"}

	aligned, err := Align(hyps, refs)
	require.Error(t, err)
	assert.Nil(t, aligned)

	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr))
	assert.Equal(t, 5, alignErr.HypothesisCount)
	assert.Equal(t, []int{4}, alignErr.ReferenceCounts)
	assert.Contains(t, err.Error(), "has 4 lines, want 5")
}

// TestAlign_MultipleSourceMismatch verifies that every mismatched source is named.
func TestAlign_MultipleSourceMismatch(t *testing.T) {
	_, err := Align([]string{"h1"}, []string{"r1"}, []string{"r1", "r2"}, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference source 1 has 2 lines, want 1")
	assert.Contains(t, err.Error(), "reference source 2 has 0 lines, want 1")
}

// TestAlign_EmptyCorpus verifies that zero examples align to an empty corpus.
func TestAlign_EmptyCorpus(t *testing.T) {
	aligned, err := Align(nil, []string{})
	require.NoError(t, err)
	assert.Empty(t, aligned)
}

// TestAlign_NoSources verifies that at least one reference source is required.
func TestAlign_NoSources(t *testing.T) {
	_, err := Align([]string{"h1"})
	require.Error(t, err)
}

// TestFromExamples verifies varying reference cardinality and validation.
func TestFromExamples(t *testing.T) {
	aligned, err := FromExamples([]Example{
		{Hypothesis: "h1", References: []string{"r1"}},
		{Hypothesis: "h2", References: []string{"r2a", "r2b"}},
	})
	require.NoError(t, err)
	require.Len(t, aligned, 2)
	assert.Len(t, aligned[0].References, 1)
	assert.Len(t, aligned[1].References, 2)

	_, err = FromExamples([]Example{{Hypothesis: "h1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example 0 has no references")
}

// TestSplitReferences verifies delimiter splitting, trimming, and empty-entry
// dropping.
func TestSplitReferences(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []string
	}{
		"single":        {"the cat sat", []string{"the cat sat"}},
		"two":           {"the cat sat||<|>||a cat sat down", []string{"the cat sat", "a cat sat down"}},
		"padded":        {" r1 ||<|>|| r2 ", []string{"r1", "r2"}},
		"empty entries": {"r1||<|>||||<|>||r2", []string{"r1", "r2"}},
		"all empty":     {"||<|>||", []string{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitReferences(tt.in))
		})
	}
}

// TestFileSource verifies line-oriented reading in order.
func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyps.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\nthird\n"), 0o600))

	lines, err := FileSource(path).Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

// TestFileSource_Missing verifies that a missing file fails.
func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource(filepath.Join(t.TempDir(), "missing.txt")).Lines()
	require.Error(t, err)
}

// TestSliceSource verifies that the returned lines are an independent copy.
func TestSliceSource(t *testing.T) {
	src := SliceSource{"a", "b"}
	lines, err := src.Lines()
	require.NoError(t, err)
	lines[0] = "mutated"
	assert.Equal(t, "a", src[0])
}
