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

import "fmt"

// Shared validation helpers. Public entry points run these to
// completion before any kernel touches a destination element; the
// kernels themselves assume validated inputs and index unchecked.

// sameLen rejects vectors of unequal length.
func sameLen[T Float](op string, x, y Vector[T]) error {
	if x.n != y.n {
		return fmt.Errorf("blas: %s: vector lengths %d and %d: %w", op, x.n, y.n, ErrDimensionMismatch)
	}
	return nil
}

// disjointOrIdentical rejects views that may share elements without
// being the exact same view.
func disjointOrIdentical[T Float](op string, x, y Vector[T]) error {
	if identical(x, y) {
		return nil
	}
	if mayShareElements(x, y) {
		return fmt.Errorf("blas: %s: operands overlap without being identical: %w", op, ErrAliasing)
	}
	return nil
}

// squareMatrix rejects a non-square logical shape.
func squareMatrix[T Float](op string, a Matrix[T]) (n int, err error) {
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("blas: %s: matrix is %dx%d, want square: %w", op, r, c, ErrDimensionMismatch)
	}
	return r, nil
}

// mulShapes rejects incompatible (m x k) * (k x n) -> (m x n) shapes.
func mulShapes[T Float](op string, a, b, c Matrix[T]) (m, n, k int, err error) {
	am, ak := a.Dims()
	bk, bn := b.Dims()
	cm, cn := c.Dims()
	if ak != bk {
		return 0, 0, 0, fmt.Errorf("blas: %s: inner dims %d and %d: %w", op, ak, bk, ErrDimensionMismatch)
	}
	if am != cm || bn != cn {
		return 0, 0, 0, fmt.Errorf("blas: %s: product is %dx%d but destination is %dx%d: %w",
			op, am, bn, cm, cn, ErrDimensionMismatch)
	}
	return am, bn, ak, nil
}
