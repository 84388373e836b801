// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// impl_pattern.go - Checkerboard and Ball constructors.
//
// Contract:
//   - Checkerboard(): paints every position whose coordinate sum is even,
//     so (0,…,0) is always set. Under the default cross every painted
//     position is its own component.
//   - Ball(centre, r): paints every position within Euclidean distance r
//     of centre, clipped to the array. centre must be inside the array
//     (ErrOutOfBounds) and r ≥ 0 (ErrBadSize).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
)

const (
	methodCheckerboard = "Checkerboard"
	methodBall         = "Ball"
)

// Checkerboard returns a Constructor painting the even-parity positions.
func Checkerboard() Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		data := a.Data()
		w := ndarray.NewWalker(a.Shape())
		for i := range data {
			sum := 0
			for _, c := range w.Coords() {
				sum += c
			}
			if sum%2 == 0 {
				data[i] = cfg.value
			}
			w.Next()
		}

		return nil
	}
}

// Ball returns a Constructor painting the discrete ball of radius r.
func Ball(centre []int, r int) Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		if r < 0 {
			return fmt.Errorf("%s: radius %d: %w", methodBall, r, ErrBadSize)
		}
		if _, err := a.Index(centre...); err != nil {
			return fmt.Errorf("%s: centre %v: %w: %w", methodBall, centre, ErrOutOfBounds, err)
		}
		data := a.Data()
		w := ndarray.NewWalker(a.Shape())
		for i := range data {
			d2 := 0
			for ax, c := range w.Coords() {
				d := c - centre[ax]
				d2 += d * d
			}
			if d2 <= r*r {
				data[i] = cfg.value
			}
			w.Next()
		}

		return nil
	}
}
