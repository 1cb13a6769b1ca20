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

func TestNewVectorRejectsBadShapes(t *testing.T) {
	buf := make([]float32, 10)

	_, err := NewVector(buf, 0, 5, 0)
	require.ErrorIs(t, err, ErrShape, "zero stride")

	_, err = NewVector(buf, 0, -1, 1)
	require.ErrorIs(t, err, ErrShape, "negative length")

	_, err = NewVector(buf, 0, 11, 1)
	require.ErrorIs(t, err, ErrShape, "length past end")

	_, err = NewVector(buf, 8, 3, 2)
	require.ErrorIs(t, err, ErrShape, "stride past end")

	_, err = NewVector(buf, 2, 4, -1)
	require.ErrorIs(t, err, ErrShape, "negative stride before start")

	// Empty views are valid over any buffer, even an empty one.
	v, err := NewVector([]float32{}, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
}

func TestVectorStridedAccess(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7}

	v, err := NewVector(buf, 1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	for i, want := range []float64{1, 3, 5} {
		require.Equal(t, want, v.At(i))
	}

	// Negative stride walks the buffer backwards.
	r, err := NewVector(buf, 7, 4, -2)
	require.NoError(t, err)
	for i, want := range []float64{7, 5, 3, 1} {
		require.Equal(t, want, r.At(i))
	}

	v.Set(1, 30)
	require.Equal(t, 30.0, buf[3])
}

func TestVectorIterationRestartable(t *testing.T) {
	buf := []float32{10, 20, 30, 40}
	v, err := NewVector(buf, 3, 4, -1)
	require.NoError(t, err)

	collect := func() []float32 {
		var got []float32
		for _, x := range v.All() {
			got = append(got, x)
		}
		return got
	}

	want := []float32{40, 30, 20, 10}
	require.Equal(t, want, collect())
	// The sequence is computed, not stateful: a second pass sees the
	// same elements.
	require.Equal(t, want, collect())
}
