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

import "math"

// Blocking planner for the level-3 kernels. Plan is a pure function of
// its arguments: no state is read or kept, so concurrent calls are
// safe and identical inputs always produce identical tiles.

// DefaultTileBudget is the assumed fast-memory working set, in bytes,
// that one GEMM step's three sub-blocks (A-tile, B-tile, C-tile)
// should jointly fit. 32KB matches a typical L1 data cache; this is a
// documented assumption, not a probed value.
const DefaultTileBudget = 32 << 10

// Tile describes the sub-matrix extents processed per blocking step of
// a level-3 kernel: M x K of A, K x N of B, M x N of C.
type Tile struct {
	M int
	N int
	K int
}

// Plan chooses tile extents for an m x n x k multiply over elements of
// elemSize bytes, under DefaultTileBudget.
func Plan(m, n, k, elemSize int) Tile {
	return PlanBudget(m, n, k, elemSize, DefaultTileBudget)
}

// PlanBudget is Plan with an explicit byte budget, for callers that
// want to tune blocking per call. There is no process-wide override.
//
// The policy picks the largest square tile edge b with
// 3*b*b*elemSize <= budget (the three tiles of a cube-shaped step),
// then clamps each extent to its matrix dimension; tiles never exceed
// the matrix they tile. With the default budget and float32 elements
// b is 52, in the same range as hand-tuned L1 block sizes for scalar
// kernels. Degenerate dimensions yield the trivial single-pass tile.
func PlanBudget(m, n, k, elemSize, budget int) Tile {
	if m <= 0 || n <= 0 || k <= 0 {
		return Tile{M: 1, N: 1, K: 1}
	}
	if elemSize <= 0 || budget <= 0 {
		return Tile{M: 1, N: 1, K: 1}
	}
	b := int(math.Sqrt(float64(budget) / float64(3*elemSize)))
	b = max(b, 1)
	return Tile{M: min(b, m), N: min(b, n), K: min(b, k)}
}
