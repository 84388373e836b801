// SPDX-License-Identifier: MIT
// Package labeled: perimeter estimation.
//
// Perimeter pixels are weighted by the 3×3 pattern they form with their
// perimeter neighbours (Benkrid & Crookes). The pattern code is the response
// of the perimeter mask to perimeterKernel; perimeterWeights maps each code
// to a length contribution: 1 for straight runs, √2 for diagonal-only
// contact, (1+√2)/2 for corners, 0 otherwise.

package labeled

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

// PerimeterCodes is the number of pattern codes with a weight.
const PerimeterCodes = 34

var perimeterKernel = [3][3]int{
	{10, 2, 10},
	{2, 1, 2},
	{10, 2, 10},
}

// perimeterWeights is filled once at package initialization and only read
// afterwards.
var perimeterWeights = newPerimeterWeights()

func newPerimeterWeights() [PerimeterCodes]float64 {
	var w [PerimeterCodes]float64
	for _, c := range []int{5, 7, 15, 17, 25, 27} {
		w[c] = 1
	}
	for _, c := range []int{21, 33} {
		w[c] = math.Sqrt2
	}
	for _, c := range []int{13, 23} {
		w[c] = (1 + math.Sqrt2) / 2
	}

	return w
}

// PerimeterWeights returns a copy of the code → length table.
func PerimeterWeights() [PerimeterCodes]float64 { return perimeterWeights }

// Bwperim marks the foreground pixels of bw that have a background neighbour
// under n-connectivity (4 or 8 in 2-D; 2·ndim or 3^ndim−1 in general).
// Out-of-array neighbours follow mode, as in Borders.
func Bwperim[T ndarray.Elem](bw *ndarray.Array[T], n int, mode ndarray.Mode) (*ndarray.Array[bool], error) {
	const op = "Bwperim"
	if err := ndarray.ValidateNotNil(bw); err != nil {
		return nil, configError(op, err)
	}
	elem, err := strel.Connectivity(bw.Ndim(), n)
	if err != nil {
		return nil, configError(op, err)
	}
	fg := ndarray.Mask(bw)
	perim, err := Borders(fg, WithStructuringElement(elem), WithMode(mode))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, keep := perim.Data(), fg.Data()
	for i := range out {
		out[i] = out[i] && keep[i]
	}

	return perim, nil
}

// Perimeter estimates the total boundary length of the objects in the 2-D
// binary image bw. The length is traced through the centres of the boundary
// pixels, so a filled k×k square measures 4(k−1) rather than 4k.
//
// Implementation:
//   - Stage 1: perimeter mask via Bwperim(bw, n, mode).
//   - Stage 2: correlate the 0/1 mask with perimeterKernel (edges reflected)
//     and histogram the responses.
//   - Stage 3: dot the first PerimeterCodes bins with PerimeterWeights.
//
// Behavior highlights:
//   - An isolated pixel measures 0.
//
// Errors (wrapping ErrConfiguration): ErrNotTwoDimensional, plus those of Bwperim.
func Perimeter[T ndarray.Elem](bw *ndarray.Array[T], n int, mode ndarray.Mode) (float64, error) {
	const op = "Perimeter"
	if err := ndarray.ValidateNotNil(bw); err != nil {
		return 0, configError(op, err)
	}
	if bw.Ndim() != 2 {
		return 0, configError(op, fmt.Errorf("shape %v: %w", bw.Shape(), ErrNotTwoDimensional))
	}
	perim, err := Bwperim(bw, n, mode)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	hist := perimeterHistogram(perim)

	return floats.Dot(hist, perimeterWeights[:]), nil
}

// perimeterHistogram counts the kernel responses of a 2-D mask. Responses of
// PerimeterCodes and above carry no weight and are not counted.
func perimeterHistogram(perim *ndarray.Array[bool]) []float64 {
	shape := perim.Shape()
	offsets := make([][]int, 0, 9)
	weights := make([]int, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			offsets = append(offsets, []int{dy, dx})
			weights = append(weights, perimeterKernel[dy+1][dx+1])
		}
	}
	// The offsets always match a 2-D shape.
	nb, _ := ndarray.NewNeighborhood(shape, offsets)

	hist := make([]float64, PerimeterCodes)
	data := perim.Data()
	w := ndarray.NewWalker(shape)
	for idx := range data {
		code, k := 0, 0
		nb.Visit(idx, w.Coords(), ndarray.Reflect, func(n int, _ bool) bool {
			if data[n] {
				code += weights[k]
			}
			k++
			return true
		})
		if code < PerimeterCodes {
			hist[code]++
		}
		w.Next()
	}

	return hist
}
