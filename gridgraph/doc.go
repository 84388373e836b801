// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold,
//     using the labeled package for the actual labeling.
//   - Reports component sizes, shore cells and the total coastline length.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Complexity:
//
//   - NewGridGraph:          O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents:   O(W×H),   Memory: O(W×H).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
