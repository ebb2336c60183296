//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// TextSource supplies an ordered sequence of raw UTF-8 lines, one example per
// line, with no reordering.
type TextSource interface {
	// Lines returns the lines in source order.
	Lines() ([]string, error)
}

// FileSource reads one example per line from a file path.
type FileSource string

// Lines reads the file and returns its lines in order.
func (s FileSource) Lines() ([]string, error) {
	f, err := os.Open(string(s))
	if err != nil {
		return nil, fmt.Errorf("open text source: %w", err)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text source %s: %w", string(s), err)
	}
	return lines, nil
}

// SliceSource serves an in-memory list of lines.
type SliceSource []string

// Lines returns a copy of the underlying lines.
func (s SliceSource) Lines() ([]string, error) {
	return append([]string(nil), s...), nil
}
