// Package strel defines structuring elements: boolean N-D kernels with odd
// extents, centred on their middle element, that say which relative offsets
// count as neighbours.
//
// What:
//
//   - Element wraps the boolean mask and exposes its neighbour offset set
//     N(Bc) = { o - centre : Bc[o] is true, o != centre }.
//   - Cross(ndim) is the default 1-offset star (4-connectivity in 2-D),
//     Full(ndim) the full 3^ndim block (8-connectivity in 2-D).
//   - Connectivity(ndim, n) maps neighbour counts such as 4, 8, 6 or 26 to
//     the matching element.
//   - Get normalizes an optional caller-supplied element against an array's
//     dimensionality.
//
// Errors:
//
//   - ErrBadShape:          no axes, or mask length disagrees with the shape.
//   - ErrEvenExtent:        some axis has an even extent.
//   - ErrDimensionMismatch: element and array dimensionality differ.
//   - ErrBadConnectivity:   neighbour count with no matching element.
package strel
