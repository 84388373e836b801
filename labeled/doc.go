// Package labeled implements connected-component labeling of N-dimensional
// binary arrays and the operations that consume label maps.
//
// What:
//
//   - Label: two-pass labeling under any odd-extent structuring element, in
//     any dimensionality, with a union-find equivalence forest.
//   - Relabel: stable renumbering to 1..K in order of first appearance.
//   - IsSameLabeling: partition equality up to a bijection of label values.
//   - Sum, Min, Max, Size: one-pass per-label aggregates.
//   - RemoveRegions, RemoveBordering: region editing, in place or on a copy.
//   - Border, HasBorder, Borders, Bwperim, Perimeter: boundary geometry.
//
// Label maps are ndarray.Array[int32] (alias LabelMap). Label 0 is the
// background and coincides exactly with the zero positions of the source.
//
// Mutating operations take an explicit Placement (Copy or InPlace). Output
// buffers given through WithLabelBuffer or WithMaskBuffer are overwritten
// completely, and only after every precondition has passed.
//
// Errors:
//
// Every precondition failure matches ErrConfiguration and its concrete cause:
//
//	_, _, err := labeled.Label(img, labeled.WithStructuringElement(bc))
//	if errors.Is(err, labeled.ErrConfiguration) && errors.Is(err, strel.ErrDimensionMismatch) {
//	    ...
//	}
//
// Concurrency:
//
// Calls share no mutable state. The perimeter weight table is built during
// package initialization and never written again, so concurrent calls on
// distinct outputs are safe.
package labeled
