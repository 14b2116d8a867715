package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
)

// link is a cell of the predecessor grid; ok is false for source cells.
type link struct {
	from densegrid.Point
	ok   bool
}

// ExpandIsland finds a minimum-conversion path of non-member cells connecting
// any cell of component srcComp to any cell of component dstComp, as
// identified by ConnectedComponents(g, member, conn). Each conversion costs 1.
// Returns the path (including the start and end member cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a member cell     → cost 0
//     • Moving into a non-member cell → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via the predecessor grid.
//
// WithBlocked marks cells that may never be converted; when they cut every
// route, ErrNoPath is returned.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev grids.
func ExpandIsland[V any](
	g *densegrid.Grid[V],
	member MemberFunc[V],
	conn Connectivity,
	srcComp, dstComp int,
	opts ...Option[V],
) (path []densegrid.Point, cost int, err error) {
	cfg := Options[V]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	comps := ConnectedComponents(g, member, conn)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	isDst := densegrid.NewWithBoundsOf(g, false)
	for _, p := range comps[dstComp] {
		isDst.Put(p, true)
	}

	const inf = int(^uint(0) >> 1)
	dist := densegrid.NewWithBoundsOf(g, inf)
	prev := densegrid.NewWithBoundsOf(g, link{})

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist.Put(p, 0)
		dq.PushBack(p)
	}

	found := false
	var target densegrid.Point
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(densegrid.Point)
		if isDst.At(u) {
			target, found = u, true
			break
		}
		for _, v := range Neighbors(g, u, conn) {
			val := g.At(v)
			if cfg.Blocked != nil && cfg.Blocked(val) {
				continue
			}
			step := 0
			if !member(val) {
				step = 1
			}
			nd := dist.At(u) + step
			if nd >= dist.At(v) {
				continue
			}
			dist.Put(v, nd)
			prev.Put(v, link{from: u, ok: true})
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at, ok := target, true; ok; {
		path = append([]densegrid.Point{at}, path...)
		pr := prev.At(at)
		at, ok = pr.from, pr.ok
	}

	return path, dist.At(target), nil
}
