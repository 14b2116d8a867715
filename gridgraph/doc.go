// Package gridgraph treats the cells of a densegrid.Grid as a graph, enabling
// region analysis and minimal-cost “island” expansions.
//
// What:
//
//   - A member predicate splits cells into “land” (member) and “water”.
//   - ConnectedComponents identifies contiguous islands of land cells.
//   - ExpandIsland computes the fewest water conversions (0-1 BFS) needed to
//     join two islands.
//
// Why:
//
//   - Puzzle maps: count enclosed regions, flood-fill plots of equal crops.
//   - Maze tooling: how many walls must be removed to connect two areas.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Connectivity: Conn4 (point.OrdinalNeighbors) or Conn8 (point.AllNeighbors).
//
// Errors:
//
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
