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

// Level-2 kernels: matrix-vector operations.
//
// Aliasing between a destination vector and a matrix operand is not
// detected here; passing overlapping storage is undefined behavior and
// the caller's contract to avoid.

// Gemv computes y = alpha*A*x + beta*y. Requires A.cols == x.Len() and
// A.rows == y.Len() in A's logical orientation, so a transposed view
// multiplies by the transpose without moving data. beta == 0 never
// reads the prior contents of y; alpha == 0 never reads A or x.
func Gemv[T Float](alpha T, a Matrix[T], x Vector[T], beta T, y Vector[T]) error {
	rows, cols := a.Dims()
	if cols != x.n {
		return fmt.Errorf("blas: Gemv: matrix has %d columns but x has %d elements: %w",
			cols, x.n, ErrDimensionMismatch)
	}
	if rows != y.n {
		return fmt.Errorf("blas: Gemv: matrix has %d rows but y has %d elements: %w",
			rows, y.n, ErrDimensionMismatch)
	}
	if alpha == 0 {
		scaleVec(beta, y)
		return nil
	}
	ars, acs := a.layout()
	iy := y.off
	for i := range rows {
		var sum float64
		ia, ix := a.off+i*ars, x.off
		for range cols {
			sum += float64(a.data[ia]) * float64(x.data[ix])
			ia += acs
			ix += x.inc
		}
		res := float64(alpha) * sum
		if beta != 0 {
			res += float64(beta) * float64(y.data[iy])
		}
		y.data[iy] = T(res)
		iy += y.inc
	}
	return nil
}

// Rank1Update computes A = alpha*x*yT + A. Requires A.rows == x.Len()
// and A.cols == y.Len().
func Rank1Update[T Float](alpha T, x, y Vector[T], a Matrix[T]) error {
	rows, cols := a.Dims()
	if rows != x.n {
		return fmt.Errorf("blas: Rank1Update: matrix has %d rows but x has %d elements: %w",
			rows, x.n, ErrDimensionMismatch)
	}
	if cols != y.n {
		return fmt.Errorf("blas: Rank1Update: matrix has %d columns but y has %d elements: %w",
			cols, y.n, ErrDimensionMismatch)
	}
	if alpha == 0 {
		return nil
	}
	ars, acs := a.layout()
	ix := x.off
	for i := range rows {
		xi := float64(alpha) * float64(x.data[ix])
		ix += x.inc
		ia, iy := a.off+i*ars, y.off
		for range cols {
			a.data[ia] = T(float64(a.data[ia]) + xi*float64(y.data[iy]))
			ia += acs
			iy += y.inc
		}
	}
	return nil
}

// TriangularSolve solves A*x = b in place in b, where A is triangular
// in the half named by uplo. With diag == Unit the diagonal storage is
// never read and is taken as ones.
//
// The diagonal is scanned before any element of b is written, so a
// zero pivot on a non-unit diagonal returns ErrSingular with b intact.
// Substitution then proceeds in the order that only reads
// already-solved components: backward for Upper, forward for Lower.
func TriangularSolve[T Float](a Matrix[T], b Vector[T], uplo Triangle, diag Diag) error {
	if !uplo.valid() || !diag.valid() {
		panic("blas: TriangularSolve: invalid Triangle or Diag flag")
	}
	n, err := squareMatrix("TriangularSolve", a)
	if err != nil {
		return err
	}
	if b.n != n {
		return fmt.Errorf("blas: TriangularSolve: matrix is %dx%d but b has %d elements: %w",
			n, n, b.n, ErrDimensionMismatch)
	}
	if diag == NonUnit {
		for i := range n {
			if a.At(i, i) == 0 {
				return fmt.Errorf("blas: TriangularSolve: zero pivot at row %d: %w", i, ErrSingular)
			}
		}
	}
	ars, acs := a.layout()
	if uplo == Upper {
		for i := n - 1; i >= 0; i-- {
			sum := float64(b.data[b.off+i*b.inc])
			ia := a.off + i*ars + (i+1)*acs
			ib := b.off + (i+1)*b.inc
			for j := i + 1; j < n; j++ {
				sum -= float64(a.data[ia]) * float64(b.data[ib])
				ia += acs
				ib += b.inc
			}
			if diag == NonUnit {
				sum /= float64(a.data[a.off+i*ars+i*acs])
			}
			b.data[b.off+i*b.inc] = T(sum)
		}
		return nil
	}
	for i := range n {
		sum := float64(b.data[b.off+i*b.inc])
		ia := a.off + i*ars
		ib := b.off
		for range i {
			sum -= float64(a.data[ia]) * float64(b.data[ib])
			ia += acs
			ib += b.inc
		}
		if diag == NonUnit {
			sum /= float64(a.data[a.off+i*ars+i*acs])
		}
		b.data[b.off+i*b.inc] = T(sum)
	}
	return nil
}

// scaleVec applies y = beta*y, writing zeros without reading when
// beta == 0 so y may start uninitialized.
func scaleVec[T Float](beta T, y Vector[T]) {
	iy := y.off
	if beta == 0 {
		for range y.n {
			y.data[iy] = 0
			iy += y.inc
		}
		return
	}
	if beta == 1 {
		return
	}
	for range y.n {
		y.data[iy] *= beta
		iy += y.inc
	}
}
