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

// replaceSlow is the general, unaccelerated replace routine behind the
// slow-path aliases in replace_gen.go. It handles any rank, any
// supported dtype, and any axis. axis == AxisNone scans the whole
// array; otherwise every slice along the given axis is scanned via a
// strided walk. The scalar semantics (NaN self-inequality, integer
// narrowing before mutation) match the fast kernels.
func replaceSlow(a *Array, old, new float64, axis Axis) error {
	if axis != AxisNone && (axis < 0 || int(axis) >= a.NDim()) {
		return &UnsupportedError{NDim: a.NDim(), DType: a.dtype, Axis: axis}
	}
	switch s := a.data.(type) {
	case []int8:
		return slowInts(s, a.shape, axis, old, new)
	case []int32:
		return slowInts(s, a.shape, axis, old, new)
	case []int64:
		return slowInts(s, a.shape, axis, old, new)
	case []float32:
		slowFloats(s, a.shape, axis, old, new)
		return nil
	case []float64:
		slowFloats(s, a.shape, axis, old, new)
		return nil
	default:
		// Arrays can only be constructed with supported backing
		// slices, so this is unreachable through the public API.
		return &UnsupportedError{NDim: a.NDim(), DType: a.dtype, Axis: axis}
	}
}

func slowFloats[T Floats](s []T, shape []int, axis Axis, old, new float64) {
	newT := T(new)
	if old != old {
		scanSlices(s, shape, axis, func(x T) bool { return x != x }, newT)
		return
	}
	oldT := T(old)
	scanSlices(s, shape, axis, func(x T) bool { return x == oldT }, newT)
}

func slowInts[T SignedInts](s []T, shape []int, axis Axis, old, new float64) error {
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
	scanSlices(s, shape, axis, func(x T) bool { return x == oldT }, newT)
	return nil
}

// scanSlices applies match/repl over s. With axis == AxisNone it walks
// the flat slice. Otherwise it visits every line along axis: an
// odometer over the remaining dimensions picks the line's base offset,
// and the line itself is walked with the axis stride. Row-major strides
// are derived from shape, so every element is visited exactly once.
func scanSlices[T Elements](s []T, shape []int, axis Axis, match func(T) bool, repl T) {
	if axis == AxisNone {
		for i := range s {
			if match(s[i]) {
				s[i] = repl
			}
		}
		return
	}

	if len(s) == 0 {
		return
	}

	ndim := len(shape)
	strides := make([]int, ndim)
	st := 1
	for k := ndim - 1; k >= 0; k-- {
		strides[k] = st
		st *= shape[k]
	}

	ax := int(axis)
	step := strides[ax]
	length := shape[ax]

	idx := make([]int, ndim) // idx[ax] stays 0
	for {
		base := 0
		for k := 0; k < ndim; k++ {
			base += idx[k] * strides[k]
		}
		for j := 0; j < length; j++ {
			off := base + j*step
			if match(s[off]) {
				s[off] = repl
			}
		}

		// Advance the odometer over the non-axis dimensions.
		k := ndim - 1
		for k >= 0 {
			if k == ax {
				k--
				continue
			}
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			return
		}
	}
}
