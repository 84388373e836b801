// SPDX-License-Identifier: MIT

package strel

import "errors"

var (
	// ErrBadShape indicates a structuring element without axes, with a
	// non-positive extent, or whose mask length disagrees with its shape.
	ErrBadShape = errors.New("strel: invalid structuring element shape")

	// ErrEvenExtent indicates an axis whose extent is even, leaving no centre.
	ErrEvenExtent = errors.New("strel: structuring element extents must be odd")

	// ErrDimensionMismatch indicates the element's dimensionality differs from
	// the array it is applied to.
	ErrDimensionMismatch = errors.New("strel: structuring element dimensionality mismatch")

	// ErrBadConnectivity indicates a neighbour count with no matching element.
	ErrBadConnectivity = errors.New("strel: unsupported connectivity")
)
