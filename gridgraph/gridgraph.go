package gridgraph

import (
	"github.com/Roguelazer/advent-of-code-2025/densegrid"
)

// Neighbors returns the in-bounds neighbours of p in g under conn.
// Anything other than Conn8 is treated as Conn4.
// Complexity: O(d).
func Neighbors[V any](g *densegrid.Grid[V], p densegrid.Point, conn Connectivity) []densegrid.Point {
	var cand []densegrid.Point
	if conn == Conn8 {
		all := p.AllNeighbors()
		cand = all[:]
	} else {
		ord := p.OrdinalNeighbors()
		cand = ord[:]
	}

	out := cand[:0]
	for _, q := range cand {
		if g.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}
