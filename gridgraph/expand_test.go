package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/gridgraph"
)

// TestExpandIsland_BasicLine tests a simple 1×3 line with a single water cell between two land cells.
// Grid: [1,0,1], Conn4
// Expected: must convert the middle cell at cost 1, path indices [0,1,2].
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// TestExpandIsland_MediumRow tests a 1×5 line where two land cells at ends require converting 3 water cells.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
}

// TestExpandIsland_ThroughLand verifies that crossing a third island is free.
//
//	1 0 1 1 0 1
func TestExpandIsland_ThroughLand(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1, 1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, 3, gg.ComponentCount())
	path, cost, err := gg.ExpandIsland(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, path)
}

// TestExpandIsland_Same verifies that expanding a component to itself is free.
func TestExpandIsland_Same(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	require.Equal(t, 1, gg.ComponentCount())
	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []int{0}, path)
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(-1, 1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
