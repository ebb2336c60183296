//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package meteor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregorlied/nlg-eval/corpus"
	"github.com/gregorlied/nlg-eval/metric"
	"github.com/gregorlied/nlg-eval/resource"
)

// single builds a one-example corpus.
func single(hyp string, refs ...string) corpus.Corpus {
	return corpus.Corpus{{Hypothesis: hyp, References: refs}}
}

// TestScore_PerfectMatch verifies the score of an identical six-token pair:
// fMean=1 and penalty=0.5*(1/6)^3.
func TestScore_PerfectMatch(t *testing.T) {
	result, err := Score(context.Background(), single("the cat sat on the mat", "the cat sat on the mat"))
	require.NoError(t, err)
	assert.Equal(t, metric.FamilyMeteor, result.Name)
	assert.InDelta(t, 1-0.5/216.0, result.Score, 1e-12)
	assert.InDelta(t, 1.0, result.Details["precision"], 1e-12)
	assert.InDelta(t, 1.0, result.Details["recall"], 1e-12)
	assert.Equal(t, []string{"exact", "stem"}, result.Stages)
}

// TestScore_NoMatches verifies that fully disjoint sentences score 0.
func TestScore_NoMatches(t *testing.T) {
	result, err := Score(context.Background(), single("zz qq", "pp rr"))
	require.NoError(t, err)
	assert.Zero(t, result.Score)
}

// TestScore_StemStage verifies that morphological variants align through the
// stem stage: one match out of one token gives fMean=1 and penalty=gamma.
func TestScore_StemStage(t *testing.T) {
	result, err := Score(context.Background(), single("running", "runs"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-12)

	exactOnly, err := Score(context.Background(), single("running", "runs"), WithStages(StageExact))
	require.NoError(t, err)
	assert.Zero(t, exactOnly.Score)
}

// TestScore_SynonymStage verifies that related words align once a synonym set
// is configured, and that its presence extends the default stages.
func TestScore_SynonymStage(t *testing.T) {
	syn := resource.NewSynonymSet([][]string{{"car", "automobile"}})
	result, err := Score(context.Background(), single("car", "automobile"), WithSynonyms(syn))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-12)
	assert.Equal(t, []string{"exact", "stem", "synonym"}, result.Stages)

	bare, err := Score(context.Background(), single("car", "automobile"))
	require.NoError(t, err)
	assert.Zero(t, bare.Score)
}

// TestScore_SynonymStageWithoutSet verifies the configuration error.
func TestScore_SynonymStageWithoutSet(t *testing.T) {
	_, err := Score(context.Background(), single("a", "a"), WithStages(StageSynonym))
	require.Error(t, err)
	_, err = Score(context.Background(), single("a", "a"), WithStages(Stage("fuzzy")))
	require.Error(t, err)
}

// TestScore_FragmentationPenalty verifies that reordering lowers the score
// even when every word still matches.
func TestScore_FragmentationPenalty(t *testing.T) {
	inOrder, err := Score(context.Background(), single("a b c d e f", "a b c d e f"))
	require.NoError(t, err)
	reordered, err := Score(context.Background(), single("a b c d e f", "f a b c d e"))
	require.NoError(t, err)
	assert.Greater(t, inOrder.Score, reordered.Score)
	assert.InDelta(t, 1.0, reordered.Details["precision"], 1e-12)
}

// TestScore_BestReference verifies the highest-scoring reference is kept.
func TestScore_BestReference(t *testing.T) {
	result, err := Score(context.Background(),
		single("the cat sat on the mat", "zz qq", "the cat sat on the mat"))
	require.NoError(t, err)
	assert.InDelta(t, 1-0.5/216.0, result.Score, 1e-12)
}

// TestScore_CorpusAggregation verifies that statistics are summed across
// examples before combining rather than averaging per-example scores.
func TestScore_CorpusAggregation(t *testing.T) {
	c := corpus.Corpus{
		{Hypothesis: "the cat sat on the mat", References: []string{"the cat sat on the mat"}},
		{Hypothesis: "zz qq", References: []string{"pp rr"}},
	}
	result, err := Score(context.Background(), c, WithPerExampleScores())
	require.NoError(t, err)
	// agg: matches=6, hypLen=refLen=8, chunks=1.
	fMean := 0.75
	penalty := 0.5 / 216.0
	assert.InDelta(t, (1-penalty)*fMean, result.Score, 1e-12)
	require.Len(t, result.PerExample, 2)
	assert.InDelta(t, 1-0.5/216.0, result.PerExample[0], 1e-12)
	assert.Zero(t, result.PerExample[1])
}

// TestScore_EmptyCorpus verifies the empty-corpus warning.
func TestScore_EmptyCorpus(t *testing.T) {
	result, err := Score(context.Background(), corpus.Corpus{})
	require.NoError(t, err)
	assert.Zero(t, result.Score)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, metric.WarnEmptyCorpus, result.Warnings[0].Code)
}

// TestAlignWords_Chunks verifies match and chunk counting on a block swap:
// every token matches but the alignment splits into two contiguous runs.
func TestAlignWords_Chunks(t *testing.T) {
	opts, err := newOptions()
	require.NoError(t, err)
	st := alignWords([]string{"a", "b", "c", "d"}, []string{"c", "d", "a", "b"}, opts)
	assert.Equal(t, 4, st.matches)
	assert.Equal(t, 2, st.chunks)
	assert.Equal(t, 4, st.hypLen)
	assert.Equal(t, 4, st.refLen)
}

// TestAlignWords_ChunkReduction verifies that duplicate tokens do not leave a
// crossed alignment: "a a b" against "b a a" admits a full matching with two
// chunks, and the reduction pass must find it rather than report three.
func TestAlignWords_ChunkReduction(t *testing.T) {
	opts, err := newOptions()
	require.NoError(t, err)
	st := alignWords([]string{"a", "a", "b"}, []string{"b", "a", "a"}, opts)
	assert.Equal(t, 3, st.matches)
	assert.Equal(t, 2, st.chunks)
}

// TestAlignWords_DuplicateTokens verifies one-to-one matching under repeats.
func TestAlignWords_DuplicateTokens(t *testing.T) {
	opts, err := newOptions()
	require.NoError(t, err)
	st := alignWords([]string{"the", "the"}, []string{"the"}, opts)
	assert.Equal(t, 1, st.matches)
	assert.Equal(t, 1, st.chunks)
}

// TestAlignWords_Empty verifies degenerate inputs yield zero statistics.
func TestAlignWords_Empty(t *testing.T) {
	opts, err := newOptions()
	require.NoError(t, err)
	st := alignWords(nil, []string{"a"}, opts)
	assert.Zero(t, st.matches)
	assert.Zero(t, st.chunks)
}

// TestFragmentationPenalty covers the closed form and its edge cases.
func TestFragmentationPenalty(t *testing.T) {
	assert.Zero(t, fragmentationPenalty(0.5, 3.0, 0, 0))
	assert.InDelta(t, 0.5, fragmentationPenalty(0.5, 3.0, 6, 6), 1e-12)
	assert.InDelta(t, 0.5/216.0, fragmentationPenalty(0.5, 3.0, 1, 6), 1e-12)
	// More chunks at fixed matches means a larger penalty.
	assert.Greater(t,
		fragmentationPenalty(0.5, 3.0, 3, 6),
		fragmentationPenalty(0.5, 3.0, 2, 6))
}

// TestWithParameters verifies range guards keep the defaults.
func TestWithParameters(t *testing.T) {
	opts, err := newOptions(WithParameters(0, -1, 2))
	require.NoError(t, err)
	assert.Equal(t, DefaultAlpha, opts.alpha)
	assert.Equal(t, DefaultBeta, opts.beta)
	assert.Equal(t, DefaultGamma, opts.gamma)

	opts, err = newOptions(WithParameters(0.8, 2.5, 0.4))
	require.NoError(t, err)
	assert.Equal(t, 0.8, opts.alpha)
	assert.Equal(t, 2.5, opts.beta)
	assert.Equal(t, 0.4, opts.gamma)
}
