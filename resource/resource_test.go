//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package resource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSynonymSet verifies symmetric group membership.
func TestNewSynonymSet(t *testing.T) {
	set := NewSynonymSet([][]string{
		{"fast", "quick", "rapid"},
		{"big", "large"},
	})
	assert.True(t, set.Related("fast", "quick"))
	assert.True(t, set.Related("quick", "fast"))
	assert.True(t, set.Related("big", "large"))
	assert.False(t, set.Related("fast", "large"))
	assert.True(t, set.Related("unknown", "unknown"), "identical words are related")
	assert.False(t, set.Related("unknown", "fast"))
}

// TestFileLoader verifies parsing one synonym group per line.
func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	content := "fast quick rapid\nbig large\nsingleton\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "synonyms.txt"), []byte(content), 0o600))

	set, err := NewFileLoader(dir).Load(context.Background(), "synonyms.txt")
	require.NoError(t, err)
	assert.True(t, set.Related("fast", "rapid"))
	assert.False(t, set.Related("fast", "big"))
	// Lines with fewer than two words are not groups.
	assert.False(t, set.Related("singleton", "fast"))
}

// TestFileLoader_Missing verifies that a missing file reports ErrResourceUnavailable.
func TestFileLoader_Missing(t *testing.T) {
	_, err := NewFileLoader(t.TempDir()).Load(context.Background(), "missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
}

// TestStaticLoader verifies preloaded lookup and the unavailable error.
func TestStaticLoader(t *testing.T) {
	set := NewSynonymSet([][]string{{"a", "b"}})
	loader := StaticLoader{"syn": set}

	got, err := loader.Load(context.Background(), "syn")
	require.NoError(t, err)
	assert.True(t, got.Related("a", "b"))

	_, err = loader.Load(context.Background(), "other")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
}

// TestLoaders_ContextCanceled verifies that canceled contexts fail fast.
func TestLoaders_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileLoader(t.TempDir()).Load(ctx, "x")
	assert.True(t, errors.Is(err, context.Canceled))
	_, err = StaticLoader{}.Load(ctx, "x")
	assert.True(t, errors.Is(err, context.Canceled))
}
