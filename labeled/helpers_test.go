// SPDX-License-Identifier: MIT

package labeled_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

// labelMap wraps literal label values.
func labelMap(t *testing.T, data []int32, shape ...int) *labeled.LabelMap {
	t.Helper()
	L, err := ndarray.FromSlice(append([]int32(nil), data...), shape...)
	require.NoError(t, err)
	return L
}

// floodLabel is a breadth-first flood-fill labeling used as an oracle.
// Floods start in row-major order, so components are numbered by their
// first position, and adjacency is symmetric in the element's offsets.
func floodLabel[T ndarray.Elem](a *ndarray.Array[T], e *strel.Element) ([]int32, int) {
	shape := a.Shape()
	strides := a.Strides()
	src := a.Data()
	var zero T

	var offs [][]int
	for _, d := range e.Offsets() {
		neg := make([]int, len(d))
		for ax := range d {
			neg[ax] = -d[ax]
		}
		offs = append(offs, d, neg)
	}

	out := make([]int32, len(src))
	var k int32
	coords := make([]int, len(shape))
	for start := range src {
		if src[start] == zero || out[start] != 0 {
			continue
		}
		k++
		out[start] = k
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			a.Coords(cur, coords)
		next:
			for _, d := range offs {
				n := 0
				for ax := range shape {
					c := coords[ax] + d[ax]
					if c < 0 || c >= shape[ax] {
						continue next
					}
					n += c * strides[ax]
				}
				if src[n] != zero && out[n] == 0 {
					out[n] = k
					queue = append(queue, n)
				}
			}
		}
	}

	return out, int(k)
}
