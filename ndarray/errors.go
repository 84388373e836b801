// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every message is prefixed with "ndarray: ". Callers match with errors.Is;
// call sites attach operation context with fmt.Errorf("%s: %w", op, ErrX).

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a shape has no axes or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates two arrays (or a buffer and its shape) that must
	// agree on shape do not.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrOutOfRange indicates a coordinate outside the array bounds, or a
	// coordinate vector of the wrong length.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates a nil *Array was passed where one is required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrUnknownMode indicates an unrecognized edge-mode selector.
	ErrUnknownMode = errors.New("ndarray: unknown edge mode")
)
