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

import "github.com/ajroetker/go-blas/blas/workerpool"

// ParallelGemm is Gemm with the row-tile loop split across pool.
// Workers own disjoint row bands of C and each cell is computed by
// exactly one worker with the same per-cell accumulation order as the
// serial kernel, so the result is bitwise identical to Gemm's. A nil
// or closed pool degrades to the serial kernel.
func ParallelGemm[T Float](pool *workerpool.Pool, alpha T, a, b Matrix[T], beta T, c Matrix[T]) error {
	m, n, k, err := mulShapes("ParallelGemm", a, b, c)
	if err != nil {
		return err
	}
	if alpha == 0 {
		scaleMatrix(beta, c)
		return nil
	}
	t := Plan(m, n, k, elemSize[T]())
	rowTiles := (m + t.M - 1) / t.M
	pool.ParallelFor(rowTiles, func(start, end int) {
		gemmRows(alpha, a, b, beta, c, t, start*t.M, min(end*t.M, m))
	})
	return nil
}
