// SPDX-License-Identifier: MIT
// Package ndarray: Array is a concrete, row-major N-dimensional array storing
// elements in a flat slice for cache friendliness.

package ndarray

import (
	"fmt"
	"strings"
)

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, coords []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, coords, err)
}

// Array is a dense N-dimensional array in row-major order.
// shape holds the extent of each axis, strides the flat step per axis,
// and data holds product(shape) elements.
type Array[T Elem] struct {
	shape   []int
	strides []int
	data    []T
}

// New creates a zero-filled array with the given shape.
// Stage 1 (Validate): at least one axis, every extent ≥ 1.
// Stage 2 (Prepare): compute strides and allocate the flat slice.
// Complexity: O(N) time and memory.
func New[T Elem](shape ...int) (*Array[T], error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		data:    make([]T, n),
	}, nil
}

// FromSlice wraps data as an array of the given shape without copying.
// Returns ErrShapeMismatch when len(data) differs from the product of extents.
// Complexity: O(ndim).
func FromSlice[T Elem](data []T, shape ...int) (*Array[T], error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("FromSlice: len(data)=%d, shape %v holds %d: %w", len(data), shape, n, ErrShapeMismatch)
	}

	return &Array[T]{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		data:    data,
	}, nil
}

// MustFromSlice is FromSlice for literals in tests and examples; it panics on error.
func MustFromSlice[T Elem](data []T, shape ...int) *Array[T] {
	a, err := FromSlice(data, shape...)
	if err != nil {
		panic(err)
	}

	return a
}

// ZerosLike allocates a zero-filled array of element type U with the shape of a.
func ZerosLike[U Elem, T Elem](a *Array[T]) *Array[U] {
	return &Array[U]{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    make([]U, len(a.data)),
	}
}

// shapeSize validates shape and returns the element count.
func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("shape %v: no axes: %w", shape, ErrBadShape)
	}
	n := 1
	for ax, s := range shape {
		if s <= 0 {
			return 0, fmt.Errorf("shape %v: axis %d has extent %d: %w", shape, ax, s, ErrBadShape)
		}
		n *= s
	}

	return n, nil
}

// stridesOf returns row-major strides for shape; the last axis has stride 1.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = step
		step *= shape[ax]
	}

	return strides
}

// Shape returns a copy of the extents.
func (a *Array[T]) Shape() []int { return append([]int(nil), a.shape...) }

// Ndim returns the number of axes.
func (a *Array[T]) Ndim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Strides returns a copy of the row-major strides (in elements, not bytes).
func (a *Array[T]) Strides() []int { return append([]int(nil), a.strides...) }

// Data exposes the flat backing slice. Writes through it are visible in a.
func (a *Array[T]) Data() []T { return a.data }

// Index maps coords to a flat offset.
// Returns ErrOutOfRange for a wrong-length vector or any coordinate outside its axis.
// Complexity: O(ndim).
func (a *Array[T]) Index(coords ...int) (int, error) {
	if len(coords) != len(a.shape) {
		return 0, arrayErrorf("Index", coords, ErrOutOfRange)
	}
	idx := 0
	for ax, c := range coords {
		if c < 0 || c >= a.shape[ax] {
			return 0, arrayErrorf("Index", coords, ErrOutOfRange)
		}
		idx += c * a.strides[ax]
	}

	return idx, nil
}

// Coords converts a flat offset back into coordinates, writing into dst when it
// has the right length and allocating otherwise.
// The offset is assumed valid (0 ≤ idx < Len()).
func (a *Array[T]) Coords(idx int, dst []int) []int {
	if len(dst) != len(a.shape) {
		dst = make([]int, len(a.shape))
	}
	for ax, st := range a.strides {
		dst[ax] = idx / st
		idx -= dst[ax] * st
	}

	return dst
}

// At returns the element at coords.
func (a *Array[T]) At(coords ...int) (T, error) {
	idx, err := a.Index(coords...)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[idx], nil
}

// Set stores v at coords.
func (a *Array[T]) Set(v T, coords ...int) error {
	idx, err := a.Index(coords...)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(N).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    append([]T(nil), a.data...),
	}
}

// CopyFrom overwrites a with the contents of src.
// Returns ErrShapeMismatch when shapes differ; a is untouched in that case.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if err := ValidateSameShape(a, src); err != nil {
		return fmt.Errorf("CopyFrom: %w", err)
	}
	copy(a.data, src.data)

	return nil
}

// String renders the array for debugging: 1-D and 2-D arrays as bracketed
// rows, higher dimensions as their shape followed by the flat data.
func (a *Array[T]) String() string {
	var sb strings.Builder
	switch len(a.shape) {
	case 1:
		fmt.Fprintf(&sb, "%v", a.data)
	case 2:
		cols := a.shape[1]
		for r := 0; r < a.shape[0]; r++ {
			fmt.Fprintf(&sb, "%v\n", a.data[r*cols:(r+1)*cols])
		}
	default:
		fmt.Fprintf(&sb, "shape=%v data=%v", a.shape, a.data)
	}

	return sb.String()
}

// Convert copies a into a new array of element type U using Go's numeric
// conversion rules (truncation toward zero for float → integer).
func Convert[U Number, T Number](a *Array[T]) *Array[U] {
	out := ZerosLike[U](a)
	for i, v := range a.data {
		out.data[i] = U(v)
	}

	return out
}

// Mask returns the boolean foreground mask of a (true where nonzero).
func Mask[T Elem](a *Array[T]) *Array[bool] {
	out := ZerosLike[bool](a)
	var zero T
	for i, v := range a.data {
		out.data[i] = v != zero
	}

	return out
}

// FromMask converts a boolean mask into a 0/1 numeric array.
func FromMask[U Number](m *Array[bool]) *Array[U] {
	out := ZerosLike[U](m)
	for i, v := range m.data {
		if v {
			out.data[i] = 1
		}
	}

	return out
}

// Nonzero returns the 0/1 int32 mask of a (1 where the element is nonzero).
func Nonzero[T Elem](a *Array[T]) *Array[int32] {
	out := ZerosLike[int32](a)
	var zero T
	for i, v := range a.data {
		if v != zero {
			out.data[i] = 1
		}
	}

	return out
}
