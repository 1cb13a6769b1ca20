// Copyright 2026 The go-blas Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting
// large kernel calls across CPUs. A Pool is created once and reused
// across many operations, so per-call goroutine spawning and channel
// allocation stay off the hot path of repeated matrix products.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(tiles, func(start, end int) {
//	    computeTiles(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of submitted work.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// cursor is the shared chunk index workers pull from during a
// ParallelFor. It sits alone on its cache line so the atomic adds from
// different CPUs do not false-share with the caller's stack or the
// barrier.
type cursor struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// New creates a pool with the given number of workers, spawned
// immediately. numWorkers <= 0 means GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending work completes. Safe to call
// more than once. A closed pool still accepts ParallelFor calls but
// runs them sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor covers [0, n) with calls fn(start, end), each index
// covered exactly once. Workers pull fixed-size chunks from a shared
// cursor, so an uneven load self-balances; the set of chunk boundaries
// depends only on n and the worker count, never on scheduling order.
// Blocks until all of [0, n) is done.
//
// A nil pool, a closed pool, or an n too small to split runs
// fn(0, n) on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	// Four chunks per worker balances load against cursor traffic.
	grain := max((n+workers*4-1)/(workers*4), 1)

	var cur cursor
	var wg sync.WaitGroup
	wg.Add(workers)
	run := func() {
		for {
			end := int(cur.next.Add(int64(grain)))
			start := end - grain
			if start >= n {
				return
			}
			fn(start, min(end, n))
		}
	}
	for range workers {
		p.workC <- task{fn: run, barrier: &wg}
	}
	wg.Wait()
}
