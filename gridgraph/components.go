package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
)

// ComponentCount returns the number of islands.
func (gg *GridGraph) ComponentCount() int { return gg.count }

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; each is a
// slice of ascending cell indices.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for the output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps := make([][]int, gg.count)
	for i, l := range gg.labels.Data() {
		if l > 0 {
			comps[l-1] = append(comps[l-1], i)
		}
	}
	return comps
}

// Component returns the cell indices of component i.
func (gg *GridGraph) Component(i int) ([]int, error) {
	if i < 0 || i >= gg.count {
		return nil, fmt.Errorf("Component(%d) of %d: %w", i, gg.count, ErrComponentIndex)
	}
	want := int32(i + 1)
	var cells []int
	for idx, l := range gg.labels.Data() {
		if l == want {
			cells = append(cells, idx)
		}
	}
	return cells, nil
}

// ComponentSizes returns the cell count of every component, indexed like
// ConnectedComponents.
func (gg *GridGraph) ComponentSizes() []int {
	sizes, err := labeled.Size(gg.labels)
	if err != nil {
		// Labels come from Label and are never negative.
		panic(err)
	}
	return sizes[1:]
}

// Perimeter estimates the total coastline length of all islands, measured
// through cell centres, with gg.Conn deciding which cells are coastal.
func (gg *GridGraph) Perimeter() (float64, error) {
	p, err := labeled.Perimeter(gg.land, gg.Conn.Neighbors(), ndarray.Constant)
	if err != nil {
		return 0, fmt.Errorf("Perimeter: %w", err)
	}
	return p, nil
}

// Shore returns the ascending cell indices of component i that touch water
// or the grid edge under gg.Conn.
func (gg *GridGraph) Shore(i int) ([]int, error) {
	if i < 0 || i >= gg.count {
		return nil, fmt.Errorf("Shore(%d) of %d: %w", i, gg.count, ErrComponentIndex)
	}
	mask, _, err := labeled.Border(gg.labels, int32(i+1), 0, labeled.WithStructuringElement(gg.element()))
	if err != nil {
		return nil, fmt.Errorf("Shore: %w", err)
	}
	var cells []int
	for idx, on := range mask.Data() {
		if on && gg.labels.Data()[idx] != 0 {
			cells = append(cells, idx)
		}
	}
	return cells, nil
}
