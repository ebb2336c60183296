//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// sentenceTokenizerOnce ensures the Punkt model is loaded once per process.
	sentenceTokenizerOnce sync.Once
	// sentenceTokenizer holds the initialized sentence tokenizer instance.
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
	// sentenceTokenizerErr caches any initialization error.
	sentenceTokenizerErr error
)

// Sentences splits English text into sentences using embedded Punkt training
// data. Empty sentences are dropped.
func Sentences(text string) ([]string, error) {
	sentenceTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			sentenceTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			sentenceTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		sentenceTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if sentenceTokenizerErr != nil {
		return nil, sentenceTokenizerErr
	}
	raw := sentenceTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
