// Copyright 2026 The go-blas Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelForCoversEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 3, 7, 64, 1000} {
		counts := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			require.LessOrEqual(t, 0, start)
			require.LessOrEqual(t, end, n)
			for i := start; i < end; i++ {
				counts[i].Add(1)
			}
		})
		for i := range counts {
			require.Equal(t, int32(1), counts[i].Load(), "n=%d index %d", n, i)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than the worker count still covers [0, n).
	var total atomic.Int64
	pool.ParallelFor(3, func(start, end int) {
		for i := start; i < end; i++ {
			total.Add(int64(i))
		}
	})
	require.Equal(t, int64(0+1+2), total.Load())

	// n <= 0 never calls fn.
	pool.ParallelFor(0, func(start, end int) {
		t.Fatal("fn called for n=0")
	})
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // idempotent

	var calls int
	pool.ParallelFor(10, func(start, end int) {
		calls++
		require.Equal(t, 0, start)
		require.Equal(t, 10, end)
	})
	require.Equal(t, 1, calls)
}

func TestNilPoolRunsSequentially(t *testing.T) {
	var pool *Pool
	var calls int
	pool.ParallelFor(5, func(start, end int) {
		calls++
		require.Equal(t, 0, start)
		require.Equal(t, 5, end)
	})
	require.Equal(t, 1, calls)
}

func TestDefaultWorkerCount(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	require.Greater(t, pool.NumWorkers(), 0)
}
