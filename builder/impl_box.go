// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// impl_box.go - Box and Points constructors.
//
// Contract:
//   - Box(lo, hi): fills every position p with lo[ax] ≤ p[ax] < hi[ax].
//     len(lo) == len(hi) == ndim and lo < hi per axis (else ErrBadSize);
//     lo ≥ 0 and hi ≤ shape (else ErrOutOfBounds).
//   - Points(ps...): sets each listed position; any outside → ErrOutOfBounds.
//
// Complexity: Box O(volume); Points O(len(ps)·ndim).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
)

const (
	methodBox    = "Box"
	methodPoints = "Points"
)

// Box returns a Constructor painting the hyper-rectangle [lo, hi).
func Box(lo, hi []int) Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		shape := a.Shape()
		if len(lo) != len(shape) || len(hi) != len(shape) {
			return fmt.Errorf("%s: corners %v,%v for %d axes: %w", methodBox, lo, hi, len(shape), ErrBadSize)
		}
		ext := make([]int, len(shape))
		for ax := range shape {
			if lo[ax] >= hi[ax] {
				return fmt.Errorf("%s: axis %d lo=%d ≥ hi=%d: %w", methodBox, ax, lo[ax], hi[ax], ErrBadSize)
			}
			if lo[ax] < 0 || hi[ax] > shape[ax] {
				return fmt.Errorf("%s: axis %d [%d,%d) outside [0,%d): %w", methodBox, ax, lo[ax], hi[ax], shape[ax], ErrOutOfBounds)
			}
			ext[ax] = hi[ax] - lo[ax]
		}

		data, strides := a.Data(), a.Strides()
		w := ndarray.NewWalker(ext)
		for {
			idx := 0
			for ax, c := range w.Coords() {
				idx += (lo[ax] + c) * strides[ax]
			}
			data[idx] = cfg.value
			if !w.Next() {
				return nil
			}
		}
	}
}

// Points returns a Constructor setting each listed position.
func Points(ps ...[]int) Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		idx := make([]int, len(ps))
		for k, p := range ps {
			i, err := a.Index(p...)
			if err != nil {
				return fmt.Errorf("%s: point %d: %w: %w", methodPoints, k, ErrOutOfBounds, err)
			}
			idx[k] = i
		}
		data := a.Data()
		for _, i := range idx {
			data[i] = cfg.value
		}

		return nil
	}
}
