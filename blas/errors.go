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

import "errors"

// Package-level sentinel errors. Public functions wrap these with call
// context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
// Validation runs to completion before any destination element is
// written, so a returned error implies an untouched destination.
var (
	// ErrShape is returned by view constructors when the declared
	// geometry is invalid: a zero stride, a negative length, or any
	// addressed element falling outside the backing buffer.
	ErrShape = errors.New("blas: invalid view shape")

	// ErrDimensionMismatch is returned when operand shapes are
	// incompatible for the requested operation, e.g. Dot over vectors
	// of different lengths or Gemm with A.cols != B.rows.
	ErrDimensionMismatch = errors.New("blas: dimension mismatch")

	// ErrAliasing is returned when two operands of an operation that
	// forbids overlap share elements of the same buffer without being
	// element-for-element identical views.
	ErrAliasing = errors.New("blas: overlapping operand views")

	// ErrSingular is returned by TriangularSolve when a non-unit
	// diagonal holds an exactly zero pivot.
	ErrSingular = errors.New("blas: singular triangular matrix")
)
