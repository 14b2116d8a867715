package gridgraph

import (
	"github.com/Roguelazer/advent-of-code-2025/densegrid"
)

// ConnectedComponents finds all contiguous regions (“islands”) of cells whose
// value satisfies member, according to conn.
// Components are returned in row-major order of their first cell; the points
// of each component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents[V any](g *densegrid.Grid[V], member MemberFunc[V], conn Connectivity) [][]densegrid.Point {
	seen := densegrid.NewWithBoundsOf(g, false)
	var comps [][]densegrid.Point

	for p, v := range g.All() {
		if !member(v) || seen.At(p) {
			continue
		}
		// BFS to collect component
		queue := []densegrid.Point{p}
		seen.Put(p, true)

		for qi := 0; qi < len(queue); qi++ {
			for _, q := range Neighbors(g, queue[qi], conn) {
				if seen.At(q) || !member(g.At(q)) {
					continue
				}
				seen.Put(q, true)
				queue = append(queue, q)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf returns the index of the component containing p, or -1.
func ComponentOf(comps [][]densegrid.Point, p densegrid.Point) int {
	for i, comp := range comps {
		for _, q := range comp {
			if q == p {
				return i
			}
		}
	}

	return -1
}
