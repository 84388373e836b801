// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Single source of truth for shape checks shared by every kernel.
//   - Return plain sentinels wrapped with the validator tag so call sites can
//     add their own operation prefix.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Shaped is anything with a shape; every *Array[T] satisfies it.
type Shaped interface {
	Shape() []int
	Ndim() int
	Len() int
}

// SameShape reports whether a and b have identical extents on every axis.
func SameShape(a, b Shaped) bool {
	if a.Ndim() != b.Ndim() || a.Len() != b.Len() {
		return false
	}
	sa, sb := a.Shape(), b.Shape()
	for ax := range sa {
		if sa[ax] != sb[ax] {
			return false
		}
	}

	return true
}

// ValidateSameShape returns ErrShapeMismatch unless a and b share a shape.
// It assumes neither argument is nil; see ValidateNotNil.
func ValidateSameShape(a, b Shaped) error {
	if !SameShape(a, b) {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %v vs %v", a.Shape(), b.Shape()), ErrShapeMismatch)
	}

	return nil
}

// ValidateNotNil returns ErrNilArray for a nil *Array.
func ValidateNotNil[T Elem](a *Array[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateNdim returns ErrShapeMismatch when a does not have exactly ndim axes.
func ValidateNdim(a Shaped, ndim int) error {
	if a.Ndim() != ndim {
		return validatorErrorf(fmt.Sprintf("ValidateNdim: have %d axes, want %d", a.Ndim(), ndim), ErrShapeMismatch)
	}

	return nil
}
