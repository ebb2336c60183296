//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package resource loads optional model resources consumed by the alignment metric.
package resource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrResourceUnavailable signals that an optional model resource could not be
// loaded. Callers recover by degrading the affected metric, never by failing
// the scoring call.
var ErrResourceUnavailable = errors.New("resource unavailable")

// SynonymSet reports whether two words belong to a shared synonym group.
type SynonymSet interface {
	// Related reports whether a and b share a synonym group.
	Related(a, b string) bool
}

// Loader resolves a resource identifier to loaded, read-only model state.
type Loader interface {
	// Load returns the synonym set for the identifier or an error wrapping
	// ErrResourceUnavailable when it cannot be resolved.
	Load(ctx context.Context, id string) (SynonymSet, error)
}

// synonymTable maps each word to the identifiers of the groups containing it.
type synonymTable map[string][]int

// Related reports whether a and b share a group. Identical words are related.
func (t synonymTable) Related(a, b string) bool {
	if a == b {
		return true
	}
	groupsB := t[b]
	for _, ga := range t[a] {
		for _, gb := range groupsB {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

// NewSynonymSet builds an in-memory synonym set from word groups.
func NewSynonymSet(groups [][]string) SynonymSet {
	table := make(synonymTable)
	for id, group := range groups {
		for _, word := range group {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			table[word] = append(table[word], id)
		}
	}
	return table
}

// FileLoader resolves resource identifiers to files in a directory. Each line
// of a synonym file is one whitespace-separated synonym group.
type FileLoader struct {
	// dir is the directory searched for resource files.
	dir string
}

// NewFileLoader creates a loader rooted at the given directory.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// Load reads and parses the synonym file named by id.
func (l *FileLoader) Load(ctx context.Context, id string) (SynonymSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(l.dir, id)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w: %w", id, ErrResourceUnavailable, err)
	}
	defer f.Close()
	var groups [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		groups = append(groups, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read resource %s: %w: %w", id, ErrResourceUnavailable, err)
	}
	return NewSynonymSet(groups), nil
}

// StaticLoader serves preloaded synonym sets by identifier, mainly for tests
// and embedded deployments.
type StaticLoader map[string]SynonymSet

// Load returns the preloaded set or an error wrapping ErrResourceUnavailable.
func (l StaticLoader) Load(ctx context.Context, id string) (SynonymSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if set, ok := l[id]; ok {
		return set, nil
	}
	return nil, fmt.Errorf("load resource %s: %w", id, ErrResourceUnavailable)
}
