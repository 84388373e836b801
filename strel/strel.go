// SPDX-License-Identifier: MIT

package strel

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/ndlabel/ndarray"
)

// Element is an immutable structuring element.
type Element struct {
	shape   []int
	mask    []bool
	offsets [][]int
}

// New builds an element from a row-major boolean mask.
// Every extent must be positive and odd, and len(mask) must equal their product.
// The centre element's value is irrelevant: a position is never its own neighbour.
func New(mask []bool, shape ...int) (*Element, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("New: no axes: %w", ErrBadShape)
	}
	n := 1
	for ax, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("New: axis %d has extent %d: %w", ax, s, ErrBadShape)
		}
		if s%2 == 0 {
			return nil, fmt.Errorf("New: axis %d has extent %d: %w", ax, s, ErrEvenExtent)
		}
		n *= s
	}
	if len(mask) != n {
		return nil, fmt.Errorf("New: mask has %d entries, shape %v needs %d: %w", len(mask), shape, n, ErrBadShape)
	}

	e := &Element{
		shape: append([]int(nil), shape...),
		mask:  append([]bool(nil), mask...),
	}
	e.offsets = e.collectOffsets()

	return e, nil
}

// FromArray builds an element from any array, treating nonzero as true.
func FromArray[T ndarray.Elem](a *ndarray.Array[T]) (*Element, error) {
	if a == nil {
		return nil, fmt.Errorf("FromArray: %w", ndarray.ErrNilArray)
	}

	return New(ndarray.Mask(a).Data(), a.Shape()...)
}

// MustNew is New for literals; it panics on error.
func MustNew(mask []bool, shape ...int) *Element {
	e, err := New(mask, shape...)
	if err != nil {
		panic(err)
	}

	return e
}

// Cross returns the 3×…×3 star: the centre plus its ±1 neighbours along each axis.
// For ndim < 1 it returns nil.
func Cross(ndim int) *Element {
	if ndim < 1 {
		return nil
	}
	shape, mask := cube(ndim)
	stride := 1
	centre := len(mask) / 2
	mask[centre] = true
	for ax := ndim - 1; ax >= 0; ax-- {
		mask[centre-stride] = true
		mask[centre+stride] = true
		stride *= 3
	}

	return MustNew(mask, shape...)
}

// Full returns the solid 3×…×3 block (every immediate neighbour, diagonals included).
// For ndim < 1 it returns nil.
func Full(ndim int) *Element {
	if ndim < 1 {
		return nil
	}
	shape, mask := cube(ndim)
	for i := range mask {
		mask[i] = true
	}

	return MustNew(mask, shape...)
}

// cube allocates a 3^ndim shape and an all-false mask.
func cube(ndim int) ([]int, []bool) {
	shape := make([]int, ndim)
	n := 1
	for ax := range shape {
		shape[ax] = 3
		n *= 3
	}

	return shape, make([]bool, n)
}

// Connectivity returns the element whose neighbour count is n in ndim
// dimensions: 2·ndim selects Cross and 3^ndim−1 selects Full, so 2-D accepts
// 4 and 8 and 3-D accepts 6 and 26. In 1-D both rules give 2.
func Connectivity(ndim, n int) (*Element, error) {
	if ndim < 1 {
		return nil, fmt.Errorf("Connectivity(%d, %d): %w", ndim, n, ErrBadShape)
	}
	full := 1
	for i := 0; i < ndim; i++ {
		full *= 3
	}
	switch n {
	case 2 * ndim:
		return Cross(ndim), nil
	case full - 1:
		return Full(ndim), nil
	}

	return nil, fmt.Errorf("Connectivity(%d, %d): want %d or %d: %w", ndim, n, 2*ndim, full-1, ErrBadConnectivity)
}

// Get returns e when it matches ndim, or the default Cross(ndim) when e is nil.
func Get(ndim int, e *Element) (*Element, error) {
	if ndim < 1 {
		return nil, fmt.Errorf("Get: ndim=%d: %w", ndim, ErrBadShape)
	}
	if e == nil {
		return Cross(ndim), nil
	}
	if e.Ndim() != ndim {
		return nil, fmt.Errorf("Get: element has %d axes, array has %d: %w", e.Ndim(), ndim, ErrDimensionMismatch)
	}

	return e, nil
}

// Ndim returns the number of axes.
func (e *Element) Ndim() int { return len(e.shape) }

// Shape returns a copy of the extents.
func (e *Element) Shape() []int { return append([]int(nil), e.shape...) }

// Mask returns a copy of the row-major mask.
func (e *Element) Mask() []bool { return append([]bool(nil), e.mask...) }

// Offsets returns N(Bc) in row-major order of the mask. The centre is excluded.
// The returned slices must not be modified.
func (e *Element) Offsets() [][]int { return e.offsets }

// collectOffsets walks the mask and records every true non-centre position
// relative to the centre.
func (e *Element) collectOffsets() [][]int {
	var out [][]int
	w := ndarray.NewWalker(e.shape)
	for i := 0; i < len(e.mask); i++ {
		if e.mask[i] {
			off := make([]int, len(e.shape))
			centre := true
			for ax, c := range w.Coords() {
				off[ax] = c - e.shape[ax]/2
				if off[ax] != 0 {
					centre = false
				}
			}
			if !centre {
				out = append(out, off)
			}
		}
		w.Next()
	}

	return out
}

// Causal returns the offsets that point to positions visited before the
// centre in a row-major scan. Adjacency is treated as symmetric: an offset d
// later in scan order contributes -d, so asymmetric elements still connect
// both ends of every pair. The result is deduplicated and in scan order.
func (e *Element) Causal() [][]int {
	seen := make(map[string]struct{}, len(e.offsets))
	var out [][]int
	add := func(d []int) {
		key := fmt.Sprint(d)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	for _, d := range e.offsets {
		if earlier(d) {
			add(d)
		}
	}
	for i := len(e.offsets) - 1; i >= 0; i-- {
		d := e.offsets[i]
		if earlier(d) {
			continue
		}
		neg := make([]int, len(d))
		for ax, v := range d {
			neg[ax] = -v
		}
		add(neg)
	}
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

// earlier reports whether d is lexicographically negative, i.e. the position
// d away precedes the origin in row-major order.
func earlier(d []int) bool {
	for _, v := range d {
		if v != 0 {
			return v < 0
		}
	}

	return false
}

// String renders the mask; 2-D elements print one row per line.
func (e *Element) String() string {
	var sb strings.Builder
	cols := e.shape[len(e.shape)-1]
	for i, v := range e.mask {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
