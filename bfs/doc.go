// Package bfs provides breadth-first search over the cells of a densegrid.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell, moving
//     between 4-neighbours (point.OrdinalNeighbors order).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: grid of metric.Metric step counts (Unreachable when not reached)
//   - Parent: grid of predecessors in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Cancellation through WithContext.
//
// Why
//
//   - Flood fills and step counts when every move costs the same; cheaper
//     than dijkstra.Dijkstra with UnitCost since no heap is needed.
//
// Determinism
//
//	Neighbours are enqueued in +x, +y, -x, -y order, so the visit sequence
//	and parent links are fully reproducible.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N)   (each cell enqueued at most once, four steps each)
//   - Memory: O(N)   (queue, Depth and Parent grids)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithFilterNeighbor(func(_, next densegrid.Point) bool { return g.At(next) != '#' }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, context or hook errors
//	}
//	path, err := res.PathTo(end)
package bfs
