// SPDX-License-Identifier: MIT

package labeled

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
)

// RemoveRegions zeroes every position whose label is listed in regions.
// Duplicates in regions are harmless and order does not matter. Remaining
// labels keep their values; follow with Relabel for a dense range.
func RemoveRegions(L *LabelMap, regions []int32, p Placement) (*LabelMap, error) {
	out, err := target("RemoveRegions", L, p)
	if err != nil {
		return nil, err
	}
	drop := make(map[int32]struct{}, len(regions))
	for _, r := range regions {
		drop[r] = struct{}{}
	}
	if len(drop) == 0 {
		return out, nil
	}
	data := out.Data()
	for i, l := range data {
		if _, ok := drop[l]; ok {
			data[i] = 0
		}
	}

	return out, nil
}

// RemoveBordering removes every region that touches the array border: for each
// axis, any nonzero label found within rsize positions of either end marks its
// whole region for removal. rsize == 0 removes nothing; an rsize at least as
// large as an axis covers that axis entirely.
//
// Errors (wrapping ErrConfiguration): ndarray.ErrNilArray, ErrBadPlacement,
// ErrBadRegionSize.
func RemoveBordering(L *LabelMap, rsize int, p Placement) (*LabelMap, error) {
	const op = "RemoveBordering"
	if rsize < 0 {
		return nil, configError(op, fmt.Errorf("rsize=%d: %w", rsize, ErrBadRegionSize))
	}
	out, err := target(op, L, p)
	if err != nil {
		return nil, err
	}
	if rsize == 0 {
		return out, nil
	}

	shape := out.Shape()
	data := out.Data()
	touching := make(map[int32]struct{})
	w := ndarray.NewWalker(shape)
	for _, l := range data {
		if l != 0 && nearBorder(w.Coords(), shape, rsize) {
			touching[l] = struct{}{}
		}
		w.Next()
	}
	if len(touching) == 0 {
		return out, nil
	}
	for i, l := range data {
		if _, ok := touching[l]; ok {
			data[i] = 0
		}
	}

	return out, nil
}

// nearBorder reports whether coords lies in a slab of thickness rsize at
// either end of some axis.
func nearBorder(coords, shape []int, rsize int) bool {
	for ax, c := range coords {
		if c < rsize || c >= shape[ax]-rsize {
			return true
		}
	}

	return false
}
