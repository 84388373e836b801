// Package unionfind implements the equivalence forest used while labeling.
//
// What:
//
//   - Forest is a flat parent array over the dense id space [0, Len()).
//   - MakeSet appends a singleton; Union merges two sets; Find returns the
//     canonical representative.
//
// Determinism:
//
//	Union always makes the root with the smaller id the representative, so the
//	representative of a set is its minimum id and results never depend on the
//	order in which equivalences were discovered.
//
// Complexity:
//
//	Find uses path halving. Union by minimum id does not bound tree height the
//	way union by rank does, but halving keeps the amortised cost near-linear on
//	raster-scan workloads.
package unionfind
