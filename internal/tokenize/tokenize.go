//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package tokenize provides the default word tokenizer and sentence splitting.
package tokenize

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches runs of characters outside [a-z0-9] for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches runs of whitespace for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
)

// Words is the default word tokenizer: lowercase, punctuation normalized to
// spaces, split on whitespace.
type Words struct{}

// Tokenize splits text into lowercase alphanumeric tokens.
func (Words) Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlphaNumRE.ReplaceAllString(text, " ")
	parts := spacesRE.Split(strings.TrimSpace(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Fields tokenizes by whitespace only, preserving case and punctuation. It is
// the right choice for corpora that were already tokenized upstream.
type Fields struct{}

// Tokenize splits text on whitespace without normalization.
func (Fields) Tokenize(text string) []string {
	return strings.Fields(text)
}
