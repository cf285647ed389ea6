// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs independent mask generation jobs on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("parallel: pool is closed")

// Pool is a fixed-size pool of worker goroutines.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
	mu      sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan func(), 2*workers),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Run calls fn(i) for every i in [0, n) across the workers and waits for
// all calls to finish. Jobs not yet started when ctx is done are skipped and
// report ctx.Err(). The errors are joined in index order.
func (p *Pool) Run(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.IsRunning() {
		return ErrClosed
	}

	errs := make([]error, n)
	var done sync.WaitGroup
	done.Add(n)
	for i := range n {
		p.jobs <- func() {
			defer done.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = fn(i)
		}
	}
	done.Wait()

	return errors.Join(errs...)
}

// Close stops the workers after queued jobs finish. Close is safe to call
// multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
