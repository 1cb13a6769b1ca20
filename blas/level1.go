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

import "math"

// Level-1 kernels: vector-vector operations.

// Dot returns x . y. Lengths must match. Products accumulate in
// float64, ascending index order.
func Dot[T Float](x, y Vector[T]) (T, error) {
	if err := sameLen("Dot", x, y); err != nil {
		return 0, err
	}
	var sum float64
	ix, iy := x.off, y.off
	for range x.n {
		sum += float64(x.data[ix]) * float64(y.data[iy])
		ix += x.inc
		iy += y.inc
	}
	return T(sum), nil
}

// Axpy computes y = alpha*x + y in place. Lengths must match. x and y
// may be the exact same view (then y becomes (1+alpha)*x); any other
// detectable overlap returns ErrAliasing.
func Axpy[T Float](alpha T, x, y Vector[T]) error {
	if err := sameLen("Axpy", x, y); err != nil {
		return err
	}
	if err := disjointOrIdentical("Axpy", x, y); err != nil {
		return err
	}
	if alpha == 0 || x.n == 0 {
		return nil
	}
	ix, iy := x.off, y.off
	for range x.n {
		y.data[iy] += alpha * x.data[ix]
		ix += x.inc
		iy += y.inc
	}
	return nil
}

// Norm returns the Euclidean norm of x using scaled accumulation, so
// extreme magnitudes neither overflow nor underflow the intermediate
// sum of squares.
func Norm[T Float](x Vector[T]) T {
	scale, ssq := 0.0, 1.0
	ix := x.off
	for range x.n {
		v := math.Abs(float64(x.data[ix]))
		ix += x.inc
		if v == 0 {
			continue
		}
		if scale < v {
			r := scale / v
			ssq = 1 + ssq*r*r
			scale = v
		} else {
			r := v / scale
			ssq += r * r
		}
	}
	return T(scale * math.Sqrt(ssq))
}

// Scale computes x = alpha*x in place.
func Scale[T Float](alpha T, x Vector[T]) {
	ix := x.off
	for range x.n {
		x.data[ix] *= alpha
		ix += x.inc
	}
}

// Swap exchanges the contents of x and y. Lengths must match; the
// views must not overlap unless identical (an identical pair is a
// no-op).
func Swap[T Float](x, y Vector[T]) error {
	if err := sameLen("Swap", x, y); err != nil {
		return err
	}
	if err := disjointOrIdentical("Swap", x, y); err != nil {
		return err
	}
	if identical(x, y) {
		return nil
	}
	ix, iy := x.off, y.off
	for range x.n {
		x.data[ix], y.data[iy] = y.data[iy], x.data[ix]
		ix += x.inc
		iy += y.inc
	}
	return nil
}

// Copy writes src into dst element by element. Lengths must match; the
// views must not overlap unless identical (then nothing needs doing).
func Copy[T Float](src, dst Vector[T]) error {
	if err := sameLen("Copy", src, dst); err != nil {
		return err
	}
	if err := disjointOrIdentical("Copy", src, dst); err != nil {
		return err
	}
	if identical(src, dst) {
		return nil
	}
	is, id := src.off, dst.off
	for range src.n {
		dst.data[id] = src.data[is]
		is += src.inc
		id += dst.inc
	}
	return nil
}
