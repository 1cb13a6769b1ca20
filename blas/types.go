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

// Float is the constraint for supported element types.
//
// Kernels accumulate sums of products in float64 for either element
// type, so float32 inputs get a wider intermediate for free and float64
// inputs lose nothing. Summation order is ascending index (ascending k
// for the matrix kernels), fixed across tile sizes and worker counts.
type Float interface {
	~float32 | ~float64
}

// Triangle names the stored/referenced half of a triangular or
// symmetric matrix. Values follow the CBLAS enumeration.
type Triangle int

const (
	Upper Triangle = 121
	Lower Triangle = 122
)

// String returns the CBLAS-style name of the triangle flag.
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// Diag states whether a triangular matrix has an implicit unit
// diagonal. Unit kernels never read the diagonal storage.
type Diag int

const (
	NonUnit Diag = 131
	Unit    Diag = 132
)

// String returns the CBLAS-style name of the diagonal flag.
func (d Diag) String() string {
	switch d {
	case NonUnit:
		return "non-unit"
	case Unit:
		return "unit"
	default:
		return "unknown"
	}
}

func (t Triangle) valid() bool { return t == Upper || t == Lower }

func (d Diag) valid() bool { return d == NonUnit || d == Unit }
