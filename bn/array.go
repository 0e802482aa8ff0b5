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

import "fmt"

// Array is a mutable, contiguous, row-major nd-array with a homogeneous
// numeric element type.
//
// The backing slice is owned by the caller: FromSlice borrows it without
// copying, and replace operations mutate it in place. The package never
// allocates or frees caller memory beyond what Zeros hands out.
//
// Concurrent mutation of the same Array during a call is a caller-enforced
// invariant; the package does no locking.
type Array struct {
	dtype DType
	shape []int
	// data holds the flat backing slice: []int8, []int32, []int64,
	// []float32, or []float64, with len equal to the shape product.
	data any
}

// FromSlice wraps an existing slice as an Array with the given shape.
// The slice is borrowed, not copied: mutations through the Array are
// visible in the original slice and vice versa.
//
// The shape product must equal len(data), every dimension must be
// non-negative, and at least one dimension is required. Zero-size
// dimensions are allowed and yield an empty array.
func FromSlice[T Elements](data []T, shape ...int) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("bn: shape %v requires %d elements, slice has %d", shape, n, len(data))
	}
	return &Array{dtype: dtypeOf[T](), shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros allocates a zero-filled Array with the given shape.
func Zeros[T Elements](shape ...int) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return &Array{dtype: dtypeOf[T](), shape: append([]int(nil), shape...), data: make([]T, n)}, nil
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("bn: array requires at least one dimension")
	}
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("bn: negative dimension %d in shape %v", dim, shape)
		}
		n *= dim
	}
	return n, nil
}

// Data returns the flat backing slice of a, or nil if a does not hold
// elements of type T. The returned slice aliases the array's memory.
func Data[T Elements](a *Array) []T {
	if a == nil {
		return nil
	}
	s, _ := a.data.([]T)
	return s
}

// DType returns the element type of the array.
func (a *Array) DType() DType { return a.dtype }

// NDim returns the rank (number of dimensions) of the array.
func (a *Array) NDim() int { return len(a.shape) }

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the total number of elements.
func (a *Array) Len() int {
	n := 1
	for _, dim := range a.shape {
		n *= dim
	}
	return n
}

// valid reports whether a is a genuine, attached array. A nil pointer,
// a zero value, or an Array with a detached backing slice is not.
func (a *Array) valid() bool {
	return a != nil && a.data != nil && len(a.shape) > 0
}
