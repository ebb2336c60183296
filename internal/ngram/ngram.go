//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package ngram provides n-gram multiset counting shared by the overlap metrics.
package ngram

import "strings"

// separator joins tokens into map keys. NUL cannot occur in tokenized text.
const separator = "\x00"

// Count returns the multiset of n-grams of the given order, keyed by the
// separator-joined token sequence.
func Count(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	grams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		grams[strings.Join(tokens[i:i+n], separator)]++
	}
	return grams
}

// Total returns the number of n-grams of the given order in a token sequence.
func Total(tokens []string, n int) int {
	if n <= 0 || len(tokens) < n {
		return 0
	}
	return len(tokens) - n + 1
}
