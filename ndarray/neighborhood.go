// SPDX-License-Identifier: MIT
// Package: ndarray
//
// neighborhood.go: precomputed neighbour offsets over a fixed shape.
//
// Determinism & Performance:
//   - Offsets are visited in the order they were supplied.
//   - Positions whose whole neighbourhood lies inside the array use flat
//     deltas only; positions near an edge resolve each axis through Mode.

package ndarray

import "fmt"

// Neighborhood visits the neighbours of array positions for a fixed offset set.
// A Neighborhood is read-only after construction and safe for concurrent use.
type Neighborhood struct {
	shape   []int
	strides []int
	offsets [][]int
	deltas  []int // flat delta per offset
	lo, hi  []int // per-axis minimum and maximum offset component
}

// NewNeighborhood prepares offsets for arrays of the given shape.
// Every offset must have len(shape) components (ErrShapeMismatch otherwise).
func NewNeighborhood(shape []int, offsets [][]int) (*Neighborhood, error) {
	if _, err := shapeSize(shape); err != nil {
		return nil, fmt.Errorf("NewNeighborhood: %w", err)
	}
	nd := len(shape)
	nb := &Neighborhood{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		offsets: make([][]int, len(offsets)),
		deltas:  make([]int, len(offsets)),
		lo:      make([]int, nd),
		hi:      make([]int, nd),
	}
	for k, off := range offsets {
		if len(off) != nd {
			return nil, fmt.Errorf("NewNeighborhood: offset %v for %d axes: %w", off, nd, ErrShapeMismatch)
		}
		nb.offsets[k] = append([]int(nil), off...)
		for ax, d := range off {
			nb.deltas[k] += d * nb.strides[ax]
			nb.lo[ax] = min(nb.lo[ax], d)
			nb.hi[ax] = max(nb.hi[ax], d)
		}
	}

	return nb, nil
}

// Len returns the number of offsets.
func (nb *Neighborhood) Len() int { return len(nb.offsets) }

// Interior reports whether every offset from coords lands inside the array.
func (nb *Neighborhood) Interior(coords []int) bool {
	for ax, c := range coords {
		if c+nb.lo[ax] < 0 || c+nb.hi[ax] >= nb.shape[ax] {
			return false
		}
	}

	return true
}

// Visit calls fn once per offset for the position at flat index idx with
// coordinates coords. nidx is the flat index of the neighbour after applying
// mode; ok is false when the neighbour is outside the array under Constant
// (the caller reads it as zero). Under Ignore such neighbours are not passed
// to fn at all. Returning false from fn stops the visit early.
func (nb *Neighborhood) Visit(idx int, coords []int, mode Mode, fn func(nidx int, ok bool) bool) {
	if nb.Interior(coords) {
		for _, d := range nb.deltas {
			if !fn(idx+d, true) {
				return
			}
		}
		return
	}

	for _, off := range nb.offsets {
		nidx, ok := nb.resolve(coords, off, mode)
		if !ok && mode == Ignore {
			continue
		}
		if !fn(nidx, ok) {
			return
		}
	}
}

// resolve computes the flat index of coords+off under mode.
func (nb *Neighborhood) resolve(coords, off []int, mode Mode) (int, bool) {
	nidx := 0
	for ax, c := range coords {
		r, ok := mode.Resolve(c+off[ax], nb.shape[ax])
		if !ok {
			return 0, false
		}
		nidx += r * nb.strides[ax]
	}

	return nidx, true
}

// Walker iterates coordinates in row-major order alongside a flat index.
//
//	w := ndarray.NewWalker(a.Shape())
//	for i := 0; i < a.Len(); i, _ = i+1, w.Next() {
//	    use(i, w.Coords())
//	}
type Walker struct {
	shape  []int
	coords []int
}

// NewWalker starts at the origin of shape.
func NewWalker(shape []int) *Walker {
	return &Walker{shape: append([]int(nil), shape...), coords: make([]int, len(shape))}
}

// Coords returns the current coordinates. The slice is reused by Next.
func (w *Walker) Coords() []int { return w.coords }

// Next advances to the following position. It reports false once the walk
// has wrapped past the last element.
func (w *Walker) Next() bool {
	for ax := len(w.coords) - 1; ax >= 0; ax-- {
		w.coords[ax]++
		if w.coords[ax] < w.shape[ax] {
			return true
		}
		w.coords[ax] = 0
	}

	return false
}
