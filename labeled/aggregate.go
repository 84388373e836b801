// SPDX-License-Identifier: MIT
// Package labeled: single-pass region aggregators.
//
// Every aggregator returns a slice of length max(L)+1 indexed by label. Slot 0
// aggregates the background like any other label. Labels that never occur
// keep the accumulator's identity: 0 for Sum and Size, the type maximum for
// Min (+Inf for floats) and the type minimum for Max (-Inf for floats).

package labeled

import "github.com/katalvlaran/ndlabel/ndarray"

// checkPair validates a value array against its label map and returns max(L).
func checkPair[T ndarray.Number](op string, v *ndarray.Array[T], L *LabelMap) (int32, error) {
	if err := ndarray.ValidateNotNil(v); err != nil {
		return 0, configError(op, err)
	}
	if err := ndarray.ValidateNotNil(L); err != nil {
		return 0, configError(op, err)
	}
	if err := ndarray.ValidateSameShape(v, L); err != nil {
		return 0, configError(op, err)
	}

	return maxLabel(op, L)
}

// Sum returns, per label i, the sum of v over the positions where L == i.
// Integer sums wrap on overflow like Go arithmetic on T.
func Sum[T ndarray.Number](v *ndarray.Array[T], L *LabelMap) ([]T, error) {
	hi, err := checkPair("Sum", v, L)
	if err != nil {
		return nil, err
	}
	out := make([]T, int(hi)+1)
	vals := v.Data()
	for i, l := range L.Data() {
		out[l] += vals[i]
	}

	return out, nil
}

// Min returns, per label i, the minimum of v over the positions where L == i.
func Min[T ndarray.Number](v *ndarray.Array[T], L *LabelMap) ([]T, error) {
	hi, err := checkPair("Min", v, L)
	if err != nil {
		return nil, err
	}
	_, top := ndarray.Limits[T]()
	out := make([]T, int(hi)+1)
	for i := range out {
		out[i] = top
	}
	vals := v.Data()
	for i, l := range L.Data() {
		out[l] = min(out[l], vals[i])
	}

	return out, nil
}

// Max returns, per label i, the maximum of v over the positions where L == i.
func Max[T ndarray.Number](v *ndarray.Array[T], L *LabelMap) ([]T, error) {
	hi, err := checkPair("Max", v, L)
	if err != nil {
		return nil, err
	}
	bottom, _ := ndarray.Limits[T]()
	out := make([]T, int(hi)+1)
	for i := range out {
		out[i] = bottom
	}
	vals := v.Data()
	for i, l := range L.Data() {
		out[l] = max(out[l], vals[i])
	}

	return out, nil
}

// Size returns the number of positions carrying each label.
func Size(L *LabelMap) ([]int, error) {
	const op = "Size"
	if err := ndarray.ValidateNotNil(L); err != nil {
		return nil, configError(op, err)
	}
	hi, err := maxLabel(op, L)
	if err != nil {
		return nil, err
	}
	out := make([]int, int(hi)+1)
	for _, l := range L.Data() {
		out[l]++
	}

	return out, nil
}
