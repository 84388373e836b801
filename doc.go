// Package ndlabel is a toolkit for connected-component labeling of dense
// N-dimensional arrays: find the regions, measure them, edit them, and trace
// their borders.
//
// 🚀 What is in ndlabel?
//
//	• ndarray: a row-major N-D Array[T], coordinate walking, edge modes
//	• strel: structuring elements (cross, full, custom masks of odd extent)
//	• unionfind: the flat equivalence forest behind labeling
//	• labeled: Label, Relabel, IsSameLabeling, Sum/Min/Max/Size,
//	  RemoveRegions, RemoveBordering, Border/Borders, Bwperim, Perimeter
//	• gridgraph: a [][]int game-map view with islands and bridges
//	• builder: deterministic synthetic fixtures for tests and benchmarks
//	• imageio: images in, binary arrays and colourized label maps out
//
// ✨ Why choose ndlabel?
//
//   - Any dimensionality, any element type (integers, floats, bool)
//   - Arbitrary structuring elements, asymmetric ones included
//   - Sentinel errors you can match with errors.Is, no panics on bad input
//   - Reusable output buffers for hot loops
//
// Quick ASCII example (4-connectivity):
//
//	1 1 0 0        1 1 0 0
//	0 1 0 1   →    0 1 0 2
//	0 0 0 1        0 0 0 2
//
// The cmd/ndlabel tool runs the same pipeline on image files.
//
//	go get github.com/katalvlaran/ndlabel
package ndlabel
