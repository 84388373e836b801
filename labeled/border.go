// SPDX-License-Identifier: MIT

package labeled

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

// ensureMask returns a cleared boolean buffer shaped like a: the caller's
// buffer when one was given, a new one otherwise.
func ensureMask(op string, a ndarray.Shaped, buf *ndarray.Array[bool]) (*ndarray.Array[bool], error) {
	if buf == nil {
		shape := a.Shape()
		m, err := ndarray.New[bool](shape...)
		if err != nil {
			return nil, configError(op, err)
		}
		return m, nil
	}
	if err := ndarray.ValidateSameShape(a, buf); err != nil {
		return nil, configError(op, err)
	}
	buf.Fill(false)

	return buf, nil
}

// neighborhoodFor resolves the structuring element for a and builds its
// full neighbour visitor.
func neighborhoodFor(op string, a ndarray.Shaped, e *strel.Element) (*ndarray.Neighborhood, error) {
	elem, err := strel.Get(a.Ndim(), e)
	if err != nil {
		return nil, configError(op, err)
	}
	nb, err := ndarray.NewNeighborhood(a.Shape(), elem.Offsets())
	if err != nil {
		return nil, configError(op, err)
	}

	return nb, nil
}

// scanBorder calls mark for every position of L lying on the border between
// labels i and j. Neighbours outside the array read as 0. Returning false
// from mark ends the scan.
func scanBorder(L *LabelMap, nb *ndarray.Neighborhood, i, j int32, mark func(idx int) bool) {
	if i == j {
		return
	}
	data := L.Data()
	w := ndarray.NewWalker(L.Shape())
	for idx, l := range data {
		if l != i && l != j {
			w.Next()
			continue
		}
		other := i
		if l == i {
			other = j
		}
		hit := false
		nb.Visit(idx, w.Coords(), ndarray.Constant, func(n int, ok bool) bool {
			var v int32
			if ok {
				v = data[n]
			}
			hit = v == other
			return !hit
		})
		if hit && !mark(idx) {
			return
		}
		w.Next()
	}
}

// Border marks the positions carrying label i or j that have a neighbour,
// under the structuring element, carrying the other one of the pair.
// Positions outside the array count as background, so Border(L, 0, j)
// includes j pixels on the array edge. When i == j there is no border.
//
// The mask is always returned; found reports whether any position was marked.
// Options: WithStructuringElement, WithMaskBuffer.
func Border(L *LabelMap, i, j int32, opts ...Option) (mask *ndarray.Array[bool], found bool, err error) {
	const op = "Border"
	if err = ndarray.ValidateNotNil(L); err != nil {
		return nil, false, configError(op, err)
	}
	o := gatherOptions(opts)
	nb, err := neighborhoodFor(op, L, o.elem)
	if err != nil {
		return nil, false, err
	}
	mask, err = ensureMask(op, L, o.mask)
	if err != nil {
		return nil, false, err
	}
	out := mask.Data()
	scanBorder(L, nb, i, j, func(idx int) bool {
		out[idx] = true
		found = true
		return true
	})

	return mask, found, nil
}

// HasBorder reports whether labels i and j touch anywhere, without building
// a mask. It stops at the first border position.
// Options: WithStructuringElement.
func HasBorder(L *LabelMap, i, j int32, opts ...Option) (bool, error) {
	const op = "HasBorder"
	if err := ndarray.ValidateNotNil(L); err != nil {
		return false, configError(op, err)
	}
	o := gatherOptions(opts)
	nb, err := neighborhoodFor(op, L, o.elem)
	if err != nil {
		return false, err
	}
	found := false
	scanBorder(L, nb, i, j, func(int) bool {
		found = true
		return false
	})

	return found, nil
}

// Borders marks every position with at least one neighbour carrying a
// different value. Neighbours outside the array follow the edge mode:
// Constant reads them as 0, Ignore leaves them out, the other modes fold them
// back into the array.
//
// Options: WithStructuringElement, WithMaskBuffer, WithMode (default Constant).
func Borders[T ndarray.Elem](L *ndarray.Array[T], opts ...Option) (*ndarray.Array[bool], error) {
	const op = "Borders"
	if err := ndarray.ValidateNotNil(L); err != nil {
		return nil, configError(op, err)
	}
	o := gatherOptions(opts)
	if !o.mode.Valid() {
		return nil, configError(op, fmt.Errorf("%v: %w", o.mode, ndarray.ErrUnknownMode))
	}
	nb, err := neighborhoodFor(op, L, o.elem)
	if err != nil {
		return nil, err
	}
	mask, err := ensureMask(op, L, o.mask)
	if err != nil {
		return nil, err
	}

	data, out := L.Data(), mask.Data()
	var zero T
	w := ndarray.NewWalker(L.Shape())
	for idx, l := range data {
		nb.Visit(idx, w.Coords(), o.mode, func(n int, ok bool) bool {
			v := zero
			if ok {
				v = data[n]
			}
			if v != l {
				out[idx] = true
				return false
			}
			return true
		})
		w.Next()
	}

	return mask, nil
}
