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

// Matrix is a non-owning strided view over a caller-owned buffer.
// Cell (r, c) lives at buffer index off + r*rs + c*cs, before the
// transpose flag is applied. The trans flag swaps the logical row and
// column roles without moving data; every accessor and every kernel in
// this package reads shape through the logical orientation.
type Matrix[T Float] struct {
	data   []T
	off    int
	rows   int // physical
	cols   int // physical
	rs, cs int // physical strides
	trans  bool
}

// NewMatrix builds a rows x cols view over buf with explicit strides.
//
// Strides may be negative. A stride of zero along a dimension larger
// than one would alias distinct logical cells and is rejected, as is
// rowStride == colStride when both dimensions exceed one. Every cell
// address must fall inside buf; since the address is affine in (r, c),
// checking the four corner cells covers the whole extent. Violations
// return ErrShape.
func NewMatrix[T Float](buf []T, off, rows, cols, rowStride, colStride int, transposed bool) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("blas: NewMatrix: negative dims %dx%d: %w", rows, cols, ErrShape)
	}
	// Stride rules only bite when the view holds at least two distinct
	// cells along the offending dimension; a 2x0 row-major view with a
	// derived row stride of 0 addresses nothing and stays legal.
	if rows > 1 && cols > 0 && rowStride == 0 {
		return Matrix[T]{}, fmt.Errorf("blas: NewMatrix: zero row stride with %d rows: %w", rows, ErrShape)
	}
	if cols > 1 && rows > 0 && colStride == 0 {
		return Matrix[T]{}, fmt.Errorf("blas: NewMatrix: zero column stride with %d columns: %w", cols, ErrShape)
	}
	if rows > 1 && cols > 1 && rowStride == colStride {
		return Matrix[T]{}, fmt.Errorf("blas: NewMatrix: equal row and column strides %d alias distinct cells: %w",
			rowStride, ErrShape)
	}
	if rows > 0 && cols > 0 {
		dr := (rows - 1) * rowStride
		dc := (cols - 1) * colStride
		lo, hi := off, off
		for _, corner := range [4]int{off, off + dr, off + dc, off + dr + dc} {
			lo = min(lo, corner)
			hi = max(hi, corner)
		}
		if lo < 0 || hi >= len(buf) {
			return Matrix[T]{}, fmt.Errorf("blas: NewMatrix: indices [%d,%d] outside buffer of %d: %w",
				lo, hi, len(buf), ErrShape)
		}
	}
	return Matrix[T]{data: buf, off: off, rows: rows, cols: cols, rs: rowStride, cs: colStride, trans: transposed}, nil
}

// NewRowMajor views buf as a dense rows x cols row-major matrix,
// deriving strides (cols, 1) from the dimensions.
func NewRowMajor[T Float](buf []T, rows, cols int) (Matrix[T], error) {
	return NewMatrix(buf, 0, rows, cols, cols, 1, false)
}

// NewColMajor views buf as a dense rows x cols column-major matrix,
// deriving strides (1, rows) from the dimensions.
func NewColMajor[T Float](buf []T, rows, cols int) (Matrix[T], error) {
	return NewMatrix(buf, 0, rows, cols, 1, rows, false)
}

// Dims returns the logical (rows, cols), honoring the transpose flag.
func (m Matrix[T]) Dims() (rows, cols int) {
	if m.trans {
		return m.cols, m.rows
	}
	return m.rows, m.cols
}

// T returns the transposed view of m. No data moves; the returned view
// shares m's buffer with the row and column roles swapped.
func (m Matrix[T]) T() Matrix[T] {
	m.trans = !m.trans
	return m
}

// Transposed reports whether the view is logically transposed.
func (m Matrix[T]) Transposed() bool { return m.trans }

// layout returns the logical strides matching Dims.
func (m Matrix[T]) layout() (rowStride, colStride int) {
	if m.trans {
		return m.cs, m.rs
	}
	return m.rs, m.cs
}

// At returns the logical cell (i, j). Indices must be in range of Dims.
func (m Matrix[T]) At(i, j int) T {
	rs, cs := m.layout()
	return m.data[m.off+i*rs+j*cs]
}

// Set stores x into the logical cell (i, j).
func (m Matrix[T]) Set(i, j int, x T) {
	rs, cs := m.layout()
	m.data[m.off+i*rs+j*cs] = x
}

// Row returns logical row i as a vector view sharing m's buffer.
func (m Matrix[T]) Row(i int) Vector[T] {
	rs, cs := m.layout()
	_, cols := m.Dims()
	if cs == 0 {
		cs = 1 // only possible when cols <= 1; any nonzero stride is equivalent
	}
	return Vector[T]{data: m.data, off: m.off + i*rs, n: cols, inc: cs}
}

// Col returns logical column j as a vector view sharing m's buffer.
func (m Matrix[T]) Col(j int) Vector[T] {
	rs, cs := m.layout()
	rows, _ := m.Dims()
	if rs == 0 {
		rs = 1
	}
	return Vector[T]{data: m.data, off: m.off + j*cs, n: rows, inc: rs}
}
