// Package aoc is a toolbox for grid-shaped puzzles: dense bounded grids,
// generic points, distance metrics and shortest-path searches over grid cells.
//
// What is in the box?
//
//	point/         Point[N] with rotation, neighbours, axis-aligned lines; Vec3[N]
//	metric/        Metric[V]: a finite distance or Unreachable, totally ordered
//	densegrid/     Grid[V] over any integer rectangle: text parsing, iterators,
//	               strict and checked access, PNG export, content hashing
//	dijkstra/      single-source shortest paths over 4-neighbours with
//	               caller-defined traversability and step cost
//	bfs/           unweighted flood fill with hooks and a depth limit
//	gridgraph/     connected regions and minimal “bridge” expansions
//	cmd/gridpath   end-to-end demo on a text maze
//
// Conventions
//
//   - Coordinates are (X, Y) with Y growing downwards, as in puzzle text.
//   - Expected failures (bad input text, start outside the grid) are errors
//     wrapping a package sentinel; match them with errors.Is.
//   - Broken preconditions (strict access out of bounds, Unwrap on
//     Unreachable, rotating a diagonal point) panic with a sentinel error.
//   - Library packages never log. Hooks such as dijkstra.WithOnSettle and
//     bfs.WithOnVisit expose progress instead.
//
// Quick start
//
//	g, _ := densegrid.FromText(input, func(r rune) rune { return r })
//	start, _ := densegrid.Find(g, 'S')
//	dist, prev, err := dijkstra.Dijkstra(g, start,
//	    func(g *densegrid.Grid[rune], p densegrid.Point) bool { return g.At(p) != '#' },
//	    dijkstra.UnitCost[rune, int],
//	)
package aoc
