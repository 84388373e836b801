// SPDX-License-Identifier: MIT

package labeled

import (
	"math"

	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
	"github.com/katalvlaran/ndlabel/unionfind"
)

// LabelMap is a label array: 0 is background, 1..K name the regions.
type LabelMap = ndarray.Array[int32]

// Label finds the connected components of a, read as a binary array
// (nonzero is foreground), under the structuring element's adjacency.
//
// Implementation:
//   - Stage 1: resolve the structuring element (default cross) and the output
//     buffer; validate shapes. Nothing is written before this succeeds.
//   - Stage 2: raster scan. Each foreground position looks at the causal half
//     of the neighbourhood (positions already scanned). With no labeled
//     neighbour it opens a new provisional label; otherwise it takes the
//     smallest neighbouring label and unites all of them.
//   - Stage 3: replace every provisional label by its representative, then
//     number representatives 1..K in order of first appearance.
//
// Behavior highlights:
//   - Background positions are always 0 in the result and foreground positions
//     never are.
//   - Neighbours outside the array are skipped; there is no wrap-around.
//   - A buffer passed via WithLabelBuffer is overwritten completely.
//
// Inputs:
//   - a: any-rank array; only the zero/nonzero distinction matters.
//   - opts: WithStructuringElement, WithLabelBuffer.
//
// Returns:
//   - the label map and the object count K.
//
// Errors (all wrap ErrConfiguration):
//   - ndarray.ErrNilArray, ndarray.ErrShapeMismatch (buffer shape),
//     strel.ErrDimensionMismatch, ErrTooLarge.
//
// Complexity:
//   - Time O(N·|N(Bc)|·α(N)), Space O(N) for the forest.
func Label[T ndarray.Elem](a *ndarray.Array[T], opts ...Option) (*LabelMap, int, error) {
	const op = "Label"
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, 0, configError(op, err)
	}
	if a.Len() > math.MaxInt32 {
		return nil, 0, configError(op, ErrTooLarge)
	}
	o := gatherOptions(opts)
	elem, err := strel.Get(a.Ndim(), o.elem)
	if err != nil {
		return nil, 0, configError(op, err)
	}
	out := o.labels
	if out == nil {
		out = ndarray.ZerosLike[int32](a)
	} else if err = ndarray.ValidateSameShape(a, out); err != nil {
		return nil, 0, configError(op, err)
	}
	shape := a.Shape()
	nb, err := ndarray.NewNeighborhood(shape, elem.Causal())
	if err != nil {
		return nil, 0, configError(op, err)
	}

	src, dst := a.Data(), out.Data()
	forest := unionfind.New(0)
	var zero T
	w := ndarray.NewWalker(shape)
	for i := range src {
		if src[i] == zero {
			dst[i] = 0
			w.Next()
			continue
		}
		var best int32
		nb.Visit(i, w.Coords(), ndarray.Ignore, func(n int, _ bool) bool {
			l := dst[n]
			if l == 0 {
				return true
			}
			if best == 0 {
				best = l
				return true
			}
			if l != best {
				forest.Union(int(best)-1, int(l)-1)
				best = min(best, l)
			}
			return true
		})
		if best == 0 {
			best = int32(forest.MakeSet()) + 1
		}
		dst[i] = best
		w.Next()
	}

	// Representatives are renumbered on first sight during the second scan.
	dense := make([]int32, forest.Len())
	var k int32
	for i, l := range dst {
		if l == 0 {
			continue
		}
		r := forest.Find(int(l) - 1)
		if dense[r] == 0 {
			k++
			dense[r] = k
		}
		dst[i] = dense[r]
	}

	return out, int(k), nil
}
