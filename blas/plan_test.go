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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanFitsBudget(t *testing.T) {
	for _, elemSize := range []int{4, 8} {
		tile := Plan(1000, 1000, 1000, elemSize)
		require.Equal(t, tile.M, tile.N, "unclamped tiles are square")
		require.Equal(t, tile.M, tile.K)

		b := tile.M
		used := 3 * b * b * elemSize
		require.LessOrEqual(t, used, DefaultTileBudget, "three sub-blocks fit the budget")

		// Maximal: one step larger must blow the budget.
		require.Greater(t, 3*(b+1)*(b+1)*elemSize, DefaultTileBudget)
	}
}

func TestPlanClampsToMatrixExtents(t *testing.T) {
	tile := Plan(2, 1000, 3, 8)
	require.Equal(t, 2, tile.M)
	require.Equal(t, 3, tile.K)
	require.LessOrEqual(t, tile.N, 1000)
	require.GreaterOrEqual(t, tile.N, 1)
}

func TestPlanDegenerateDims(t *testing.T) {
	require.Equal(t, Tile{M: 1, N: 1, K: 1}, Plan(0, 10, 10, 4))
	require.Equal(t, Tile{M: 1, N: 1, K: 1}, Plan(10, 0, 10, 4))
	require.Equal(t, Tile{M: 1, N: 1, K: 1}, Plan(10, 10, 0, 4))
	require.Equal(t, Tile{M: 1, N: 1, K: 1}, PlanBudget(10, 10, 10, 4, 0))
}

func TestPlanBudgetExplicit(t *testing.T) {
	// A budget too small for even a 1x1x1 step still yields usable
	// unit tiles.
	require.Equal(t, Tile{M: 1, N: 1, K: 1}, PlanBudget(10, 10, 10, 8, 1))

	// Larger budgets yield larger tiles, monotonically.
	small := PlanBudget(1<<20, 1<<20, 1<<20, 4, 16<<10)
	large := PlanBudget(1<<20, 1<<20, 1<<20, 4, 256<<10)
	require.Less(t, small.M, large.M)
}

func TestPlanIsPure(t *testing.T) {
	a := Plan(123, 456, 789, 4)
	for range 10 {
		require.Equal(t, a, Plan(123, 456, 789, 4))
	}
}
