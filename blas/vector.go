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
	"fmt"
	"iter"
)

// Vector is a non-owning strided view over a caller-owned buffer.
// Element i lives at buffer index off + i*inc. The zero value is a
// valid empty vector.
//
// Views are validated once, at construction. Accessors index without
// re-checking the view invariants, so i must be in [0, Len()).
type Vector[T Float] struct {
	data []T
	off  int
	n    int
	inc  int
}

// NewVector builds a length-n view over buf starting at off with the
// given stride. inc may be negative for reversed traversal but never
// zero (a zero stride would alias every element onto one address).
// All addressed indices must lie inside buf; violations return
// ErrShape and no view.
func NewVector[T Float](buf []T, off, n, inc int) (Vector[T], error) {
	if n < 0 {
		return Vector[T]{}, fmt.Errorf("blas: NewVector: negative length %d: %w", n, ErrShape)
	}
	if inc == 0 {
		return Vector[T]{}, fmt.Errorf("blas: NewVector: zero stride: %w", ErrShape)
	}
	if n > 0 {
		lo, hi := off, off+(n-1)*inc
		if inc < 0 {
			lo, hi = hi, lo
		}
		if lo < 0 || hi >= len(buf) {
			return Vector[T]{}, fmt.Errorf("blas: NewVector: indices [%d,%d] outside buffer of %d: %w",
				lo, hi, len(buf), ErrShape)
		}
	}
	return Vector[T]{data: buf, off: off, n: n, inc: inc}, nil
}

// Len returns the number of elements in the view.
func (v Vector[T]) Len() int { return v.n }

// Inc returns the view's stride.
func (v Vector[T]) Inc() int { return v.inc }

// At returns element i. i must be in [0, Len()).
func (v Vector[T]) At(i int) T { return v.data[v.off+i*v.inc] }

// Set stores x into element i. i must be in [0, Len()).
func (v Vector[T]) Set(i int, x T) { v.data[v.off+i*v.inc] = x }

// All iterates the view's elements in view order (reverse memory order
// when inc is negative). The sequence is computed from the view's
// geometry, so it can be ranged over any number of times.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := v.off
		for i := range v.n {
			if !yield(i, v.data[idx]) {
				return
			}
			idx += v.inc
		}
	}
}

// span returns the inclusive range of buffer indices the view touches
// and whether it touches any at all.
func (v Vector[T]) span() (lo, hi int, ok bool) {
	if v.n == 0 {
		return 0, 0, false
	}
	lo, hi = v.off, v.off+(v.n-1)*v.inc
	if v.inc < 0 {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
