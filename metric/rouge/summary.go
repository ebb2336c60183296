//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"fmt"
	"sort"

	"github.com/gregorlied/nlg-eval/internal/tokenize"
)

// summaryFMeasure computes the summary-level LCS F-measure: the hypothesis and
// reference are split into sentences, each reference sentence contributes the
// union of its LCS matches against all hypothesis sentences, and matched
// tokens are consumed so they are not double-counted across sentences.
func summaryFMeasure(hypothesis, reference string, opts *options) (float64, error) {
	refSents, err := sentenceTokens(reference, opts)
	if err != nil {
		return 0, fmt.Errorf("split reference: %w", err)
	}
	hypSents, err := sentenceTokens(hypothesis, opts)
	if err != nil {
		return 0, fmt.Errorf("split hypothesis: %w", err)
	}
	refTotal := 0
	for _, s := range refSents {
		refTotal += len(s)
	}
	hypTotal := 0
	for _, s := range hypSents {
		hypTotal += len(s)
	}
	if refTotal == 0 || hypTotal == 0 {
		return 0, nil
	}

	refBudget := make(map[string]int)
	hypBudget := make(map[string]int)
	for _, s := range refSents {
		for _, token := range s {
			refBudget[token]++
		}
	}
	for _, s := range hypSents {
		for _, token := range s {
			hypBudget[token]++
		}
	}

	hits := 0
	for _, refSent := range refSents {
		for _, token := range unionLCSTokens(refSent, hypSents) {
			if refBudget[token] <= 0 || hypBudget[token] <= 0 {
				continue
			}
			hits++
			refBudget[token]--
			hypBudget[token]--
		}
	}
	recall := float64(hits) / float64(refTotal)
	precision := float64(hits) / float64(hypTotal)
	return fMeasure(precision, recall, opts.beta), nil
}

// sentenceTokens splits text into sentences and tokenizes each one.
func sentenceTokens(text string, opts *options) ([][]string, error) {
	sents, err := tokenize.Sentences(text)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(sents))
	for _, sent := range sents {
		tokens := opts.tokenizer.Tokenize(sent)
		if len(tokens) == 0 {
			continue
		}
		out = append(out, tokens)
	}
	return out, nil
}

// unionLCSTokens returns the reference-sentence tokens covered by the union of
// LCS index sets against every hypothesis sentence.
func unionLCSTokens(refSent []string, hypSents [][]string) []string {
	covered := make(map[int]struct{})
	for _, hypSent := range hypSents {
		for _, idx := range lcsIndices(refSent, hypSent) {
			covered[idx] = struct{}{}
		}
	}
	indices := make([]int, 0, len(covered))
	for idx := range covered {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	tokens := make([]string, 0, len(indices))
	for _, idx := range indices {
		tokens = append(tokens, refSent[idx])
	}
	return tokens
}

// lcsIndices returns the reference-side indices of one longest common
// subsequence, reconstructed by backtracking the full DP table.
func lcsIndices(ref, hyp []string) []int {
	rows, cols := len(ref), len(hyp)
	if rows == 0 || cols == 0 {
		return nil
	}
	table := make([][]int, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			switch {
			case ref[i-1] == hyp[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}
	indices := make([]int, 0, table[rows][cols])
	for i, j := rows, cols; i > 0 && j > 0; {
		switch {
		case ref[i-1] == hyp[j-1]:
			indices = append(indices, i-1)
			i--
			j--
		case table[i][j-1] > table[i-1][j]:
			j--
		default:
			i--
		}
	}
	for l, r := 0, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}
	return indices
}
