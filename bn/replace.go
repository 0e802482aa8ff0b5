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

import "strconv"

//go:generate go run ../cmd/bngen -output replace_gen.go -pkg bn

// Axis selects the dimension a replace operation is restricted to.
// AxisNone means no restriction: the whole array is scanned.
type Axis int

// AxisNone is the sentinel for "all dimensions".
const AxisNone Axis = -1

// String returns "none" for AxisNone and the decimal index otherwise.
func (a Axis) String() string {
	if a == AxisNone {
		return "none"
	}
	return strconv.Itoa(int(a))
}

// ScanFunc is the signature shared by every replace routine, fast and
// slow. It mutates a in place and returns an error only for unsafe
// integer casts or unsupported combinations.
type ScanFunc func(a *Array, old, new float64) error

// fastKey is the dispatch key of the specialized routines. Axis is not
// part of the key: the fast path only handles whole-array replacement,
// so every fast entry is implicitly AxisNone.
type fastKey struct {
	ndim  int
	dtype DType
}

// fastTable maps (rank, dtype) to a specialized scan routine. It is
// populated once by the generated init in replace_gen.go and never
// mutated afterwards, so concurrent readers need no synchronization.
var fastTable = make(map[fastKey]ScanFunc)

// slowTable maps an axis value (including AxisNone) to a slow-path
// routine. Like fastTable it is written only during init.
var slowTable = make(map[Axis]ScanFunc)

// SelectRoutine resolves the scan routine for a without invoking it.
// Callers that replace many times on arrays of one fixed shape and
// dtype can amortize the lookup across a loop:
//
//	scan, err := bn.SelectRoutine(a)
//	if err != nil { ... }
//	for _, v := range updates {
//		scan(a, v.Old, v.New)
//	}
//
// Resolution order: the fast table keyed by (rank, dtype), then the
// slow table keyed by AxisNone. If neither matches, the returned error
// is an *UnsupportedError naming the rank, dtype, and axis.
func SelectRoutine(a *Array) (ScanFunc, error) {
	if !a.valid() {
		return nil, ErrNotArray
	}
	if fn, ok := fastTable[fastKey{ndim: a.NDim(), dtype: a.dtype}]; ok {
		return fn, nil
	}
	if fn, ok := slowTable[AxisNone]; ok {
		return fn, nil
	}
	return nil, &UnsupportedError{NDim: a.NDim(), DType: a.dtype, Axis: AxisNone}
}

// Replace substitutes, in place, every occurrence of old in a with new.
// A NaN old replaces every NaN element of a floating-point array and is
// a no-op for integer arrays. For integer arrays, old and new must be
// exactly representable in the element type; otherwise an
// *UnsafeCastError is returned and a is left unchanged.
func Replace(a *Array, old, new float64) error {
	fn, err := SelectRoutine(a)
	if err != nil {
		return err
	}
	return fn(a, old, new)
}

// ReplaceAxis is the axis-restricted entry point. It never takes the
// fast path: the routine is looked up in the slow table keyed by axis
// alone, and the general routine validates the axis against the
// array's rank. axis == AxisNone behaves like whole-array replacement
// (still unaccelerated).
func ReplaceAxis(a *Array, old, new float64, axis Axis) error {
	if !a.valid() {
		return ErrNotArray
	}
	fn, ok := slowTable[axis]
	if !ok {
		return &UnsupportedError{NDim: a.NDim(), DType: a.dtype, Axis: axis}
	}
	return fn(a, old, new)
}
