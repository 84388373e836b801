package gridgraph

import (
	"container/list"
	"fmt"
)

// ExpandIsland finds a minimum‐conversion path of water cells to connect any
// cell of component srcComp to any cell of component dstComp, as numbered
// by ConnectedComponents. Each water‐cell conversion costs 1.
// Returns the row‐major cell indices of the path (including the start and
// end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source 0–1 BFS from all srcComp cells:
//     • stepping onto land costs 0
//     • stepping onto water costs 1
//  3. Stop when any dstComp cell is dequeued.
//  4. Rebuild the path from predecessor links.
//
// srcComp == dstComp yields the component's first cell at cost 0.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	if srcComp < 0 || srcComp >= gg.count || dstComp < 0 || dstComp >= gg.count {
		return nil, 0, fmt.Errorf("ExpandIsland(%d, %d) of %d: %w", srcComp, dstComp, gg.count, ErrComponentIndex)
	}
	labels := gg.labels.Data()
	land := gg.land.Data()
	srcLabel, dstLabel := int32(srcComp+1), int32(dstComp+1)

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: cost-0 moves go to the front, cost-1 moves to the back.
	dq := list.New()
	for i, l := range labels {
		if l == srcLabel {
			dist[i] = 0
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if labels[u] == dstLabel {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !land[v] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, dist[target], nil
}
