// Package dijkstra provides single-source shortest paths over a densegrid.Grid
// with non-negative step costs.
//
// Overview:
//
//   - The graph is implicit: vertices are grid cells and edges join each cell
//     to its four axis neighbours (point.OrdinalNeighbors order +x, +y, -x, -y).
//   - A caller-supplied TraversableFunc filters which neighbours may be entered,
//     and a CostFunc prices each step. Both see the whole grid, so costs may
//     depend on cell contents at either end.
//   - Results come back as two grids with the input's bounds: distances as
//     metric.Metric values and predecessors for path reconstruction (PathTo).
//
// Key features:
//
//   - Generic over the cell type V and the cost type C (any integer or float).
//   - Functional options: WithMaxDistance caps exploration, WithOnSettle
//     observes cells in settle order.
//   - Deterministic tie-breaking: equal distances settle in point.Compare order.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W·H cells; each cell is settled at most once
//     and each of its four edges pushes at most one heap entry.
//   - Space: O(N) for the distance, predecessor and settled grids plus the
//     heap, which uses the “lazy decrease-key” strategy: improved cells are
//     pushed again and stale entries are skipped when popped.
//
// Error handling:
//
//   - ErrStartOutOfBounds is the expected, data-driven failure: the caller
//     asked to start from a point outside the grid.
//   - ErrNilGrid and ErrNilCost report missing inputs.
//   - ErrNegativeCost aborts the search when the cost function returns a
//     negative step; results would otherwise be meaningless.
//
// Thread safety:
//
//   - Dijkstra only reads the input grid. Mutating it concurrently from
//     another goroutine is a data race; synchronise externally.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, start,
//	    func(g *densegrid.Grid[rune], p densegrid.Point) bool { return g.At(p) != '#' },
//	    dijkstra.UnitCost[rune, int],
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(prev, start, end)
//	fmt.Println(dist.At(end), len(path))
package dijkstra
