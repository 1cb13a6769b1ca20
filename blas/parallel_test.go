// Copyright 2026 go-blas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blas

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-blas/blas/workerpool"
)

func TestParallelGemmMatchesSerialBitwise(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(7))
	for _, dims := range [][3]int{{1, 1, 1}, {5, 5, 5}, {67, 59, 61}, {128, 32, 96}} {
		m, n, k := dims[0], dims[1], dims[2]
		a := mustMat(t, randomBuf(rng, m*k), m, k)
		b := mustMat(t, randomBuf(rng, k*n), k, n)
		c0 := randomBuf(rng, m*n)

		serialBuf := append([]float64(nil), c0...)
		serial := mustMat(t, serialBuf, m, n)
		require.NoError(t, Gemm(1.5, a, b, 0.5, serial))

		parBuf := append([]float64(nil), c0...)
		par := mustMat(t, parBuf, m, n)
		require.NoError(t, ParallelGemm(pool, 1.5, a, b, 0.5, par))

		// Workers own disjoint row bands with unchanged per-cell
		// accumulation order, so equality is exact, not tolerant.
		require.Equal(t, serialBuf, parBuf, "dims %v", dims)
	}
}

func TestParallelGemmNilAndClosedPool(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const m, n, k = 13, 11, 17
	a := mustMat(t, randomBuf(rng, m*k), m, k)
	b := mustMat(t, randomBuf(rng, k*n), k, n)

	want := mustMat(t, make([]float64, m*n), m, n)
	require.NoError(t, Gemm(1, a, b, 0, want))

	gotNil := mustMat(t, make([]float64, m*n), m, n)
	require.NoError(t, ParallelGemm(nil, 1, a, b, 0, gotNil))

	closed := workerpool.New(2)
	closed.Close()
	gotClosed := mustMat(t, make([]float64, m*n), m, n)
	require.NoError(t, ParallelGemm(closed, 1, a, b, 0, gotClosed))

	for i := range m {
		for j := range n {
			require.Equal(t, want.At(i, j), gotNil.At(i, j))
			require.Equal(t, want.At(i, j), gotClosed.At(i, j))
		}
	}
}

func TestParallelGemmValidatesBeforeSplitting(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	a := mustMat(t, make([]float64, 6), 2, 3)
	c := mustMat(t, make([]float64, 4), 2, 2)
	require.ErrorIs(t, ParallelGemm(pool, 1, a, a, 0, c), ErrDimensionMismatch)
}

func BenchmarkParallelGemm(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	rng := rand.New(rand.NewSource(9))
	const n = 128
	am, _ := NewRowMajor(randomBuf(rng, n*n), n, n)
	bm, _ := NewRowMajor(randomBuf(rng, n*n), n, n)
	cm, _ := NewRowMajor(make([]float64, n*n), n, n)

	b.ResetTimer()
	for range b.N {
		_ = ParallelGemm(pool, 1, am, bm, 0, cm)
	}
}
