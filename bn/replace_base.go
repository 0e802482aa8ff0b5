// Copyright 2026 go-bottleneck Authors
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

package bn

import (
	"math"
	"unsafe"
)

// This file provides the generic scan kernels behind the per-(rank, dtype)
// wrappers in replace_gen.go. Each kernel makes a single row-major pass,
// visiting every element exactly once, with O(1) auxiliary memory.

// BaseReplaceFloats replaces, in place, every occurrence of old in s with
// new. A NaN old (detected via IEEE self-inequality, old != old) selects
// every NaN element instead. No narrowing check is performed: old and new
// are converted to T with ordinary float conversion, so the comparison
// runs at the element representation.
func BaseReplaceFloats[T Floats](s []T, old, new float64) {
	if old != old {
		scanNaN(s, T(new))
		return
	}
	scanEqual(s, T(old), T(new))
}

// BaseReplaceInts replaces, in place, every occurrence of old in s with
// new. Both scalars are validated against the width of T before any
// element is touched: if either cannot round-trip exactly, the slice is
// left unchanged and an *UnsafeCastError is returned.
//
// A NaN old is a no-op for integer slices: integers cannot represent
// NaN, so nothing can match.
func BaseReplaceInts[T SignedInts](s []T, old, new float64) error {
	if old != old {
		return nil
	}
	oldT, ok := intFromFloat[T](old)
	if !ok {
		return &UnsafeCastError{Value: old, DType: dtypeOf[T]()}
	}
	newT, ok := intFromFloat[T](new)
	if !ok {
		return &UnsafeCastError{Value: new, DType: dtypeOf[T]()}
	}
	scanEqual(s, oldT, newT)
	return nil
}

// scanEqual substitutes new for every element exactly equal to old.
// The main loop is blocked by MaxLanes so each block spans one register
// at the current dispatch width, with a scalar tail.
func scanEqual[T Elements](s []T, old, new T) {
	n := len(s)
	lanes := MaxLanes[T]()
	i := 0

	// Process full blocks
	for ; i+lanes <= n; i += lanes {
		blk := s[i : i+lanes]
		for j := range blk {
			if blk[j] == old {
				blk[j] = new
			}
		}
	}

	// Handle tail elements
	for ; i < n; i++ {
		if s[i] == old {
			s[i] = new
		}
	}
}

// scanNaN substitutes new for every element that fails its own
// self-equality test.
func scanNaN[T Floats](s []T, new T) {
	for i := range s {
		if s[i] != s[i] {
			s[i] = new
		}
	}
}

// intFromFloat narrows v to the integer type T, reporting whether the
// value round-trips exactly. Non-integral values, infinities, and values
// outside [-2^(w-1), 2^(w-1)) for a w-bit T all fail.
func intFromFloat[T SignedInts](v float64) (T, bool) {
	if v != math.Trunc(v) {
		return 0, false
	}
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	// 2^(w-1) is a power of two and therefore exact in float64, so the
	// bound comparison admits every representable value of T, including
	// the minimum.
	bound := math.Ldexp(1, bits-1)
	if v < -bound || v >= bound {
		return 0, false
	}
	return T(v), true
}
