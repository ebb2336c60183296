//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package meteor

import (
	"sort"

	"github.com/kljensen/snowball/english"
)

// unmatched marks an unaligned position.
const unmatched = -1

// alignWords builds the word alignment between hypothesis and reference
// tokens. Stages are tried in priority order over the positions still
// unmatched; within a stage a maximum-cardinality matching is found with DFS
// augmenting paths. Candidate reference positions are ordered by positional
// distance so that, among maximum matchings, alignments with fewer chunks are
// preferred. The procedure is deterministic.
func alignWords(hyp, ref []string, opts *options) statistics {
	st := statistics{hypLen: len(hyp), refLen: len(ref)}
	if len(hyp) == 0 || len(ref) == 0 {
		return st
	}
	a := &wordAligner{
		hyp:      hyp,
		ref:      ref,
		opts:     opts,
		hypMatch: make([]int, len(hyp)),
		refMatch: make([]int, len(ref)),
		visited:  make([]bool, len(hyp)),
	}
	for i := range a.hypMatch {
		a.hypMatch[i] = unmatched
	}
	for j := range a.refMatch {
		a.refMatch[j] = unmatched
	}
	for _, stage := range opts.stages {
		a.matchStage(stage)
	}
	a.reduceChunks()
	st.matches, st.chunks = a.countChunks()
	return st
}

// wordAligner holds the mutable matching state for one hypothesis/reference pair.
type wordAligner struct {
	hyp, ref []string
	opts     *options
	// hypMatch maps hypothesis position to matched reference position.
	hypMatch []int
	// refMatch maps reference position to matched hypothesis position.
	refMatch []int
	// visited marks hypothesis positions seen in the current DFS attempt.
	visited []bool
	// hypStem and refStem cache stemmed tokens, filled on first stem-stage use.
	hypStem, refStem []string
}

// matchStage augments the matching with pairs admissible under one stage.
// Positions matched by earlier stages stay fixed.
func (a *wordAligner) matchStage(stage Stage) {
	adjacency := make([][]int, len(a.hyp))
	for i := range a.hyp {
		if a.hypMatch[i] != unmatched {
			continue
		}
		adjacency[i] = a.candidates(stage, i)
	}
	for i := range a.hyp {
		if a.hypMatch[i] != unmatched || len(adjacency[i]) == 0 {
			continue
		}
		for k := range a.visited {
			a.visited[k] = false
		}
		a.augment(i, adjacency)
	}
}

// augment searches for an augmenting path from hypothesis position i.
func (a *wordAligner) augment(i int, adjacency [][]int) bool {
	if a.visited[i] {
		return false
	}
	a.visited[i] = true
	for _, j := range adjacency[i] {
		prev := a.refMatch[j]
		if prev == unmatched || a.augment(prev, adjacency) {
			a.refMatch[j] = i
			a.hypMatch[i] = j
			return true
		}
	}
	return false
}

// candidates returns the free reference positions admissible for hypothesis
// position i under the stage, ordered by positional distance (ties toward the
// earlier position) to bias maximum matchings toward contiguous runs.
func (a *wordAligner) candidates(stage Stage, i int) []int {
	var out []int
	for j := range a.ref {
		if a.refMatch[j] != unmatched {
			continue
		}
		if a.admissible(stage, i, j) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(x, y int) bool {
		dx, dy := absDiff(out[x], i), absDiff(out[y], i)
		if dx != dy {
			return dx < dy
		}
		return out[x] < out[y]
	})
	return out
}

// admissible reports whether hypothesis word i and reference word j match
// under the given stage.
func (a *wordAligner) admissible(stage Stage, i, j int) bool {
	switch stage {
	case StageExact:
		return a.hyp[i] == a.ref[j]
	case StageStem:
		a.ensureStems()
		return a.hypStem[i] == a.refStem[j]
	case StageSynonym:
		return a.opts.synonyms != nil && a.opts.synonyms.Related(a.hyp[i], a.ref[j])
	default:
		return false
	}
}

// ensureStems fills the stem caches on first use.
func (a *wordAligner) ensureStems() {
	if a.hypStem != nil {
		return
	}
	a.hypStem = stemAll(a.hyp)
	a.refStem = stemAll(a.ref)
}

// stemAll stems every token with the snowball English stemmer.
func stemAll(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stems[i] = english.Stem(token, false)
	}
	return stems
}

// reduceChunks permutes match partners among already-matched positions to
// lower the chunk count. The adjacency ordering in candidates biases the
// matching toward contiguous runs but does not guarantee the minimum (e.g.
// "a a b" against "b a a" matches fully yet crosses itself); swapping the
// partners of two matched positions keeps the cardinality and fixes such
// crossings. Only strict improvements are kept, so the pass terminates and
// stays deterministic.
func (a *wordAligner) reduceChunks() {
	_, best := a.countChunks()
	for improved := true; improved; {
		improved = false
		for i, ji := range a.hypMatch {
			if ji == unmatched {
				continue
			}
			for k := i + 1; k < len(a.hypMatch); k++ {
				jk := a.hypMatch[k]
				if jk == unmatched {
					continue
				}
				if !a.anyStageAdmissible(i, jk) || !a.anyStageAdmissible(k, ji) {
					continue
				}
				a.hypMatch[i], a.hypMatch[k] = jk, ji
				a.refMatch[ji], a.refMatch[jk] = k, i
				if _, chunks := a.countChunks(); chunks < best {
					best = chunks
					improved = true
					ji = jk
					continue
				}
				a.hypMatch[i], a.hypMatch[k] = ji, jk
				a.refMatch[ji], a.refMatch[jk] = i, k
			}
		}
	}
}

// anyStageAdmissible reports whether some configured stage admits the pair.
func (a *wordAligner) anyStageAdmissible(i, j int) bool {
	for _, stage := range a.opts.stages {
		if a.admissible(stage, i, j) {
			return true
		}
	}
	return false
}

// countChunks returns the number of matches and the number of maximal
// contiguous matched runs: consecutive hypothesis positions aligned to
// consecutive reference positions form one chunk.
func (a *wordAligner) countChunks() (matches, chunks int) {
	prev := unmatched
	for _, j := range a.hypMatch {
		if j == unmatched {
			prev = unmatched
			continue
		}
		matches++
		if prev == unmatched || j != prev+1 {
			chunks++
		}
		prev = j
	}
	return matches, chunks
}

// absDiff returns |a-b|.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
