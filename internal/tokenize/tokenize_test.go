//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWords verifies lowercasing, punctuation normalization, and splitting.
func TestWords(t *testing.T) {
	tests := map[string][]string{
		"The cat sat on the mat.": {"the", "cat", "sat", "on", "the", "mat"},
		"Hello,   World!":         {"hello", "world"},
		"it's a test-case":        {"it", "s", "a", "test", "case"},
		"":                        {},
		"!!!":                     {},
	}
	for input, expected := range tests {
		assert.Equal(t, expected, Words{}.Tokenize(input), "input %q", input)
	}
}

// TestFields verifies whitespace-only splitting without normalization.
func TestFields(t *testing.T) {
	assert.Equal(t, []string{"The", "cat's", "mat."}, Fields{}.Tokenize("The cat's  mat."))
}

// TestSentences verifies Punkt sentence splitting.
func TestSentences(t *testing.T) {
	sents, err := Sentences("The cat sat on the mat. The dog barked loudly!")
	require.NoError(t, err)
	require.Len(t, sents, 2)
	assert.Contains(t, sents[0], "cat")
	assert.Contains(t, sents[1], "dog")
}

// TestSentences_Empty verifies that empty input yields no sentences.
func TestSentences_Empty(t *testing.T) {
	sents, err := Sentences("")
	require.NoError(t, err)
	assert.Empty(t, sents)
}
