//
// Copyright (C) 2026 nlg-eval authors. All rights reserved.
//
// nlg-eval is licensed under the Apache License Version 2.0.
//

// Package pool runs independent scoring tasks on a shared worker pool.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// task carries one function and the wait group tracking the batch.
type task struct {
	fn func()
	wg *sync.WaitGroup
}

func (t *task) reset() {
	t.fn = nil
	t.wg = nil
}

// taskPool recycles task params across batches.
var taskPool = &sync.Pool{
	New: func() any { return new(task) },
}

// Runner executes batches of independent functions on an ants pool.
type Runner struct {
	pool *ants.PoolWithFunc
}

// New creates a Runner with the given worker count.
func New(size int) (*Runner, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	p, err := ants.NewPoolWithFunc(size, func(args any) {
		t, ok := args.(*task)
		if !ok {
			panic("scoring pool args type error")
		}
		wg := t.wg
		defer func() {
			wg.Done()
			t.reset()
			taskPool.Put(t)
		}()
		t.fn()
	})
	if err != nil {
		return nil, fmt.Errorf("create scoring pool: %w", err)
	}
	return &Runner{pool: p}, nil
}

// Run submits every function and waits for all of them to finish. Functions
// must capture their own result slots; Run imposes no ordering.
func (r *Runner) Run(fns ...func()) error {
	var wg sync.WaitGroup
	for _, fn := range fns {
		t := taskPool.Get().(*task)
		t.fn = fn
		t.wg = &wg
		wg.Add(1)
		if err := r.pool.Invoke(t); err != nil {
			wg.Done()
			t.reset()
			taskPool.Put(t)
			wg.Wait()
			return fmt.Errorf("submit scoring task: %w", err)
		}
	}
	wg.Wait()
	return nil
}

// Release shuts the pool down.
func (r *Runner) Release() {
	r.pool.Release()
}
