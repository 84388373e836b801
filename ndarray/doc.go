// Package ndarray provides the dense N-dimensional array used throughout ndlabel.
//
// What & Why:
//
//	Array[T] stores its elements in a single flat slice in row-major (C) order,
//	the layout every labeling, aggregation and border kernel in this module
//	assumes. Shapes are fixed at construction; element values are mutable.
//
// Also provided:
//
//   - Stride and coordinate arithmetic (Index, Coords, Walker).
//   - Edge-handling modes (Reflect, Nearest, Wrap, Mirror, Constant, Ignore)
//     that map out-of-range coordinates back into the array or reject them.
//   - Neighborhood, a precomputed offset set that visits the neighbours of a
//     position under a given Mode with an interior fast path.
//   - Validators returning sentinel errors (ErrBadShape, ErrShapeMismatch, ...).
//
// Complexity:
//
//	Construction and Clone are O(N) in the element count; At/Set/Index are
//	O(ndim). Neighborhood.Visit is O(|offsets|) for interior positions and
//	O(|offsets|·ndim) near the boundary.
package ndarray
