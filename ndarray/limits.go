// SPDX-License-Identifier: MIT

package ndarray

import (
	"math"
	"unsafe"
)

// Limits returns the lowest and highest values representable by T.
// Floating-point kinds report -Inf and +Inf.
func Limits[T Number]() (lo, hi T) {
	var zero T
	half := 0.5
	if T(half) != zero {
		return T(math.Inf(-1)), T(math.Inf(1))
	}

	bits := 8 * uint(unsafe.Sizeof(zero))
	if zero-T(1) < zero {
		top := int64(math.MaxInt64) >> (64 - bits)
		return T(-top - 1), T(top)
	}
	top := uint64(math.MaxUint64) >> (64 - bits)

	return zero, T(top)
}
