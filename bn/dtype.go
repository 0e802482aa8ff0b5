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

// DType identifies the element type of an Array.
type DType int

const (
	// Int8 is an 8-bit signed integer element type.
	Int8 DType = iota

	// Int32 is a 32-bit signed integer element type.
	Int32

	// Int64 is a 64-bit signed integer element type.
	Int64

	// Float32 is a 32-bit IEEE floating-point element type.
	Float32

	// Float64 is a 64-bit IEEE floating-point element type.
	Float64
)

// String returns a human-readable name for the element type.
func (d DType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Size returns the width of one element in bytes.
func (d DType) Size() int {
	switch d {
	case Int8:
		return 1
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

// dtypeOf maps an element type parameter to its DType tag.
func dtypeOf[T Elements]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}
