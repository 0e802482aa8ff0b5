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
	"errors"
	"fmt"
)

// ErrNotArray is returned when the input is not a usable Array: a nil
// pointer, a zero value, or an array whose backing slice is detached.
// It is reported before any inspection of shape or dtype.
var ErrNotArray = errors.New("bn: input is not a valid array")

// UnsupportedError is returned when no routine, fast or slow, matches a
// (rank, dtype, axis) combination.
type UnsupportedError struct {
	NDim  int
	DType DType
	Axis  Axis
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("bn: unsupported ndim/dtype/axis (%d/%s/%s)", e.NDim, e.DType, e.Axis)
}

// UnsafeCastError is returned by integer scan routines when old or new
// cannot be represented exactly in the target integer width. It is
// reported before any element of the array is mutated.
type UnsafeCastError struct {
	Value float64
	DType DType
}

func (e *UnsafeCastError) Error() string {
	return fmt.Sprintf("bn: cannot safely cast %v to %s", e.Value, e.DType)
}
