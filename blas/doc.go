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

// Package blas implements the three classical BLAS levels over strided
// views of caller-owned buffers.
//
// Callers build Vector and Matrix views over flat slices; views borrow
// the slice, never copy it, and are fully bounds-checked once at
// construction. Kernels then run against pre-validated views:
//
//	a, _ := blas.NewRowMajor(bufA, m, k)
//	b, _ := blas.NewRowMajor(bufB, k, n)
//	c, _ := blas.NewRowMajor(bufC, m, n)
//	err := blas.Gemm(1, a, b, 0, c)
//
// Every public entry point validates operand shapes before touching any
// destination element and reports failures through the package sentinel
// errors (ErrShape, ErrDimensionMismatch, ErrAliasing, ErrSingular),
// matched with errors.Is. Reductions accumulate in float64 regardless of
// the element type, in a fixed ascending-index order, so results are
// deterministic for identical inputs.
//
// The package holds no global mutable state: kernels write only through
// the views they are handed, which makes independent calls safe to run
// concurrently as long as their buffers do not alias.
package blas
