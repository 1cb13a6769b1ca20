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

import "unsafe"

// Aliasing detection for the level-1 kernels that forbid overlap.
//
// Two views taken over different subslices of one array still alias,
// so the checks below work on absolute element addresses rather than
// slice identity. Detection is conservative: it reports overlap when
// the touched address intervals intersect and the stride congruence
// admits a shared residue, which can flag a pair whose only common
// residue falls outside both index ranges. Such pairs are rejected
// with ErrAliasing rather than risking a partial-overlap write.

// firstAddr returns the absolute address of element 0 of v.
// v must be non-empty.
func firstAddr[T Float](v Vector[T]) uintptr {
	return uintptr(unsafe.Pointer(&v.data[v.off]))
}

// identical reports whether x and y address element-for-element the
// same memory: same start, length and stride. Two empty views are
// trivially identical.
func identical[T Float](x, y Vector[T]) bool {
	if x.n != y.n {
		return false
	}
	if x.n == 0 {
		return true
	}
	return firstAddr(x) == firstAddr(y) && x.inc == y.inc
}

// mayShareElements reports whether x and y can address a common
// element. False means provably disjoint.
func mayShareElements[T Float](x, y Vector[T]) bool {
	if x.n == 0 || y.n == 0 {
		return false
	}
	size := int64(unsafe.Sizeof(*new(T)))
	ax := int64(firstAddr(x))
	ay := int64(firstAddr(y))
	sx := int64(x.inc) * size
	sy := int64(y.inc) * size

	// Touched byte intervals, inclusive of the first byte of the last
	// element. Disjoint intervals cannot share an element.
	loX, hiX := intervalOf(ax, sx, int64(x.n))
	loY, hiY := intervalOf(ay, sy, int64(y.n))
	if hiX < loY || hiY < loX {
		return false
	}

	// ax + i*sx == ay + j*sy has integer solutions only when the
	// address gap is a multiple of gcd(|sx|, |sy|).
	g := gcd64(abs64(sx), abs64(sy))
	return (ay-ax)%g == 0
}

func intervalOf(addr, stride, n int64) (lo, hi int64) {
	lo, hi = addr, addr+(n-1)*stride
	if stride < 0 {
		lo, hi = hi, lo
	}
	return lo, hi
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
