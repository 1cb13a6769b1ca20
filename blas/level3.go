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
	"unsafe"
)

// Level-3 kernels: matrix-matrix operations.
//
// Gemm is the performance path: it walks C tile by tile using extents
// from the blocking planner so each step's working set stays inside
// the documented budget. Per cell the products still accumulate in
// ascending k order across k-tiles, which makes the result independent
// of the chosen tile extents, bit for bit. The destination must not
// share storage with a source operand; that aliasing is not checked
// here and is undefined behavior.

// Gemm computes C = alpha*A*B + beta*C. Requires A.cols == B.rows,
// A.rows == C.rows and B.cols == C.cols, all in logical orientation.
// beta == 0 never reads the prior contents of C; alpha == 0 only
// scales C by beta after shape validation.
func Gemm[T Float](alpha T, a, b Matrix[T], beta T, c Matrix[T]) error {
	m, n, k, err := mulShapes("Gemm", a, b, c)
	if err != nil {
		return err
	}
	if alpha == 0 {
		scaleMatrix(beta, c)
		return nil
	}
	gemmRows(alpha, a, b, beta, c, Plan(m, n, k, elemSize[T]()), 0, m)
	return nil
}

// gemmRows runs the tiled multiply for C rows [i0, i1). Callers have
// validated shapes and handled the alpha == 0 fast path. The row range
// split is what ParallelGemm hands to each worker; per-cell arithmetic
// does not depend on the split.
func gemmRows[T Float](alpha T, a, b Matrix[T], beta T, c Matrix[T], t Tile, i0, i1 int) {
	_, n := c.Dims()
	_, k := a.Dims()
	ars, acs := a.layout()
	brs, bcs := b.layout()
	crs, ccs := c.layout()

	// Per-cell accumulators for one C tile. Holding them across the
	// k-tiles keeps the summation order equal to the naive triple
	// loop's regardless of t.K.
	scratch := make([]float64, t.M*t.N)

	for ib := i0; ib < i1; ib += t.M {
		ih := min(ib+t.M, i1)
		for jb := 0; jb < n; jb += t.N {
			jh := min(jb+t.N, n)
			w := jh - jb
			clear(scratch[:(ih-ib)*w])
			for kb := 0; kb < k; kb += t.K {
				kh := min(kb+t.K, k)
				for i := ib; i < ih; i++ {
					arow := a.off + i*ars + kb*acs
					srow := (i - ib) * w
					for j := jb; j < jh; j++ {
						acc := scratch[srow+j-jb]
						ia := arow
						ibx := b.off + kb*brs + j*bcs
						for p := kb; p < kh; p++ {
							acc += float64(a.data[ia]) * float64(b.data[ibx])
							ia += acs
							ibx += brs
						}
						scratch[srow+j-jb] = acc
					}
				}
			}
			for i := ib; i < ih; i++ {
				crow := c.off + i*crs
				srow := (i - ib) * w
				for j := jb; j < jh; j++ {
					res := float64(alpha) * scratch[srow+j-jb]
					ic := crow + j*ccs
					if beta != 0 {
						res += float64(beta) * float64(c.data[ic])
					}
					c.data[ic] = T(res)
				}
			}
		}
	}
}

// Symm computes C = alpha*A*B + beta*C where A is symmetric and only
// its uplo half is stored; the other half is never read, so it may
// hold unrelated data. A must be square with A.cols == B.rows.
func Symm[T Float](alpha T, a Matrix[T], uplo Triangle, b Matrix[T], beta T, c Matrix[T]) error {
	if !uplo.valid() {
		panic("blas: Symm: invalid Triangle flag")
	}
	if _, err := squareMatrix("Symm", a); err != nil {
		return err
	}
	m, n, _, err := mulShapes("Symm", a, b, c)
	if err != nil {
		return err
	}
	if alpha == 0 {
		scaleMatrix(beta, c)
		return nil
	}
	brs, bcs := b.layout()
	crs, ccs := c.layout()
	for i := range m {
		for j := range n {
			var sum float64
			ibx := b.off + j*bcs
			for p := range m {
				sum += symAt(a, uplo, i, p) * float64(b.data[ibx])
				ibx += brs
			}
			res := float64(alpha) * sum
			ic := c.off + i*crs + j*ccs
			if beta != 0 {
				res += float64(beta) * float64(c.data[ic])
			}
			c.data[ic] = T(res)
		}
	}
	return nil
}

// symAt reads the (i, j) element of a symmetric matrix stored in the
// uplo half, reflecting across the diagonal for the unstored half.
func symAt[T Float](a Matrix[T], uplo Triangle, i, j int) float64 {
	if (uplo == Upper) == (i <= j) {
		return float64(a.At(i, j))
	}
	return float64(a.At(j, i))
}

// Syrk computes C = alpha*A*At + beta*C, updating only the uplo half
// of C; cells of the other half are never read or written. C must be
// square with C.rows == A.rows.
func Syrk[T Float](alpha T, a Matrix[T], beta T, c Matrix[T], uplo Triangle) error {
	if !uplo.valid() {
		panic("blas: Syrk: invalid Triangle flag")
	}
	n, err := squareMatrix("Syrk", c)
	if err != nil {
		return err
	}
	am, k := a.Dims()
	if am != n {
		return fmt.Errorf("blas: Syrk: A has %d rows but C is %dx%d: %w", am, n, n, ErrDimensionMismatch)
	}
	if alpha == 0 {
		scaleTriangle(beta, c, uplo)
		return nil
	}
	ars, acs := a.layout()
	crs, ccs := c.layout()
	for i := range n {
		jb, jh := i, n
		if uplo == Lower {
			jb, jh = 0, i+1
		}
		for j := jb; j < jh; j++ {
			var sum float64
			ia := a.off + i*ars
			ja := a.off + j*ars
			for range k {
				sum += float64(a.data[ia]) * float64(a.data[ja])
				ia += acs
				ja += acs
			}
			res := float64(alpha) * sum
			ic := c.off + i*crs + j*ccs
			if beta != 0 {
				res += float64(beta) * float64(c.data[ic])
			}
			c.data[ic] = T(res)
		}
	}
	return nil
}

// Trmm computes B = alpha*A*B in place, where A is triangular in the
// uplo half with an implicit unit diagonal when diag == Unit. Only the
// named half of A is read. Rows of B are rewritten in the order that
// still reads untouched rows: top-down for Upper, bottom-up for Lower.
func Trmm[T Float](alpha T, a Matrix[T], uplo Triangle, diag Diag, b Matrix[T]) error {
	if !uplo.valid() || !diag.valid() {
		panic("blas: Trmm: invalid Triangle or Diag flag")
	}
	n, err := squareMatrix("Trmm", a)
	if err != nil {
		return err
	}
	brows, bcols := b.Dims()
	if brows != n {
		return fmt.Errorf("blas: Trmm: A is %dx%d but B has %d rows: %w", n, n, brows, ErrDimensionMismatch)
	}
	if alpha == 0 {
		scaleMatrix(0, b)
		return nil
	}
	ars, acs := a.layout()
	brs, bcs := b.layout()
	row := func(i int) {
		for j := range bcols {
			var sum float64
			if diag == Unit {
				sum = float64(b.data[b.off+i*brs+j*bcs])
			} else {
				sum = float64(a.data[a.off+i*ars+i*acs]) * float64(b.data[b.off+i*brs+j*bcs])
			}
			pb, ph := i+1, n
			if uplo == Lower {
				pb, ph = 0, i
			}
			ia := a.off + i*ars + pb*acs
			ibx := b.off + pb*brs + j*bcs
			for p := pb; p < ph; p++ {
				sum += float64(a.data[ia]) * float64(b.data[ibx])
				ia += acs
				ibx += brs
			}
			b.data[b.off+i*brs+j*bcs] = T(float64(alpha) * sum)
		}
	}
	if uplo == Upper {
		for i := range n {
			row(i)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			row(i)
		}
	}
	return nil
}

// scaleMatrix applies C = beta*C, writing zeros without reading when
// beta == 0 so C may start uninitialized.
func scaleMatrix[T Float](beta T, c Matrix[T]) {
	rows, cols := c.Dims()
	crs, ccs := c.layout()
	if beta == 1 {
		return
	}
	for i := range rows {
		ic := c.off + i*crs
		for range cols {
			if beta == 0 {
				c.data[ic] = 0
			} else {
				c.data[ic] *= beta
			}
			ic += ccs
		}
	}
}

// scaleTriangle is scaleMatrix restricted to the uplo half of a
// square C.
func scaleTriangle[T Float](beta T, c Matrix[T], uplo Triangle) {
	n, _ := c.Dims()
	crs, ccs := c.layout()
	if beta == 1 {
		return
	}
	for i := range n {
		jb, jh := i, n
		if uplo == Lower {
			jb, jh = 0, i+1
		}
		ic := c.off + i*crs + jb*ccs
		for j := jb; j < jh; j++ {
			if beta == 0 {
				c.data[ic] = 0
			} else {
				c.data[ic] *= beta
			}
			ic += ccs
		}
	}
}

// elemSize returns the in-memory size of the element type.
func elemSize[T Float]() int {
	var z T
	return int(unsafe.Sizeof(z))
}
