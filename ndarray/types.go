// SPDX-License-Identifier: MIT

package ndarray

// Integer is the set of built-in integer element kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point element kinds.
type Float interface {
	~float32 | ~float64
}

// Number is any element kind that supports arithmetic and ordering.
type Number interface {
	Integer | Float
}

// Elem is any element kind an Array may hold. Every Elem is comparable with
// its zero value, which is how "nonzero" (foreground) is defined.
type Elem interface {
	Number | ~bool
}
