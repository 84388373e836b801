// SPDX-License-Identifier: MIT

package labeled

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
)

// Placement selects whether a mutating operation edits its input or a copy.
type Placement int

const (
	// Copy leaves the input untouched and returns a fresh map.
	Copy Placement = iota
	// InPlace overwrites the input and returns it.
	InPlace
)

// String returns "copy" or "in-place".
func (p Placement) String() string {
	switch p {
	case Copy:
		return "copy"
	case InPlace:
		return "in-place"
	}

	return fmt.Sprintf("Placement(%d)", int(p))
}

// target validates L and p and returns the map the operation should write.
func target(op string, L *LabelMap, p Placement) (*LabelMap, error) {
	if err := ndarray.ValidateNotNil(L); err != nil {
		return nil, configError(op, err)
	}
	switch p {
	case Copy:
		return L.Clone(), nil
	case InPlace:
		return L, nil
	}

	return nil, configError(op, fmt.Errorf("%v: %w", p, ErrBadPlacement))
}

// maxLabel returns the largest label of L, rejecting negative entries.
func maxLabel(op string, L *LabelMap) (int32, error) {
	var hi int32
	for i, l := range L.Data() {
		if l < 0 {
			return 0, configError(op, fmt.Errorf("value %d at %v: %w", l, L.Coords(i, nil), ErrNegativeLabel))
		}
		hi = max(hi, l)
	}

	return hi, nil
}

// Relabel renumbers the labels of L to 1..K' in order of first appearance,
// closing any gaps (1,3,3,7 becomes 1,2,2,3). Background stays 0.
//
// Errors (wrapping ErrConfiguration): ndarray.ErrNilArray, ErrBadPlacement,
// ErrNegativeLabel. L is not modified when an error is returned.
func Relabel(L *LabelMap, p Placement) (*LabelMap, int, error) {
	const op = "Relabel"
	if err := ndarray.ValidateNotNil(L); err != nil {
		return nil, 0, configError(op, err)
	}
	hi, err := maxLabel(op, L)
	if err != nil {
		return nil, 0, err
	}
	out, err := target(op, L, p)
	if err != nil {
		return nil, 0, err
	}

	dense := make([]int32, int(hi)+1)
	var k int32
	data := out.Data()
	for i, l := range data {
		if l == 0 {
			continue
		}
		if dense[l] == 0 {
			k++
			dense[l] = k
		}
		data[i] = dense[l]
	}

	return out, int(k), nil
}
