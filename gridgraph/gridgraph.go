// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of “land” cells
//   - Component sizes, perimeters and shared borders
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability and labels the land cells.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H×d) time, O(W×H) memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; fill the land mask on the way.
	cells := make([][]int, h)
	land := make([]bool, 0, w*h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			land = append(land, v >= opts.LandThreshold)
		}
	}
	// Precompute neighbor offsets (dx, dy) based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		land:            ndarray.MustFromSlice(land, h, w),
	}

	labels, n, err := labeled.Label(gg.land, labeled.WithStructuringElement(gg.element()))
	if err != nil {
		return nil, fmt.Errorf("NewGridGraph: %w", err)
	}
	gg.labels, gg.count = labels, n

	return gg, nil
}

// From2D builds a GridGraph with the default land threshold and the given
// connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// element maps the connectivity to its structuring element.
func (gg *GridGraph) element() *strel.Element {
	if gg.Conn == Conn8 {
		return strel.Full(2)
	}
	return strel.Cross(2)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Mask returns a copy of the land mask as a Height×Width array.
func (gg *GridGraph) Mask() *ndarray.Array[bool] {
	return gg.land.Clone()
}

// Labels returns a copy of the Height×Width label map: 0 for water,
// i+1 for cells of component i.
func (gg *GridGraph) Labels() *labeled.LabelMap {
	return gg.labels.Clone()
}

// IsLand reports whether the cell at (x,y) is land. Out-of-bounds cells are not.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.land.Data()[gg.index(x, y)]
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
