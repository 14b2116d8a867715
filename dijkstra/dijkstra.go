package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/metric"
	"github.com/Roguelazer/advent-of-code-2025/point"
)

// Dijkstra computes shortest distances from start to every cell of g that
// can be reached through traversable cells, moving between 4-neighbours.
//
// Returns:
//
//   - dist: same bounds as g; metric.Finite(d) for reached cells (the start
//     holds zero), metric.Unreachable otherwise.
//   - prev: same bounds as g; the previous point on a shortest path, or an
//     empty Predecessor for the start and for unreached cells.
//   - err:  ErrNilGrid, ErrNilCost, ErrStartOutOfBounds or ErrNegativeCost.
//
// The start cell is never tested with traversable. A nil traversable admits
// every cell.
//
// Ties between equally distant cells are settled in point.Compare order, so
// the returned predecessors are deterministic.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H))
//   - Space: O(W·H)
func Dijkstra[V any, C Cost](
	g *densegrid.Grid[V],
	start densegrid.Point,
	traversable TraversableFunc[V],
	cost CostFunc[V, C],
	opts ...Option[C],
) (*densegrid.Grid[metric.Metric[C]], *densegrid.Grid[Predecessor], error) {
	// 1) Build options.
	cfg := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if cost == nil {
		return nil, nil, ErrNilCost
	}
	if !g.Contains(start) {
		return nil, nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if traversable == nil {
		traversable = func(*densegrid.Grid[V], densegrid.Point) bool { return true }
	}

	// 3) Output grids share g's bounds; the zero Metric is Unreachable and
	//    the zero Predecessor is absent.
	r := &runner[V, C]{
		g:           g,
		traversable: traversable,
		cost:        cost,
		options:     cfg,
		dist:        densegrid.NewWithBoundsOf(g, metric.Unreachable[C]()),
		prev:        densegrid.NewWithBoundsOf(g, Predecessor{}),
		visited:     densegrid.NewWithBoundsOf(g, false),
	}

	// 4) Run the search.
	r.init(start)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V any, C Cost] struct {
	g           *densegrid.Grid[V]                // Input grid; read-only.
	traversable TraversableFunc[V]                // Entry predicate for neighbours.
	cost        CostFunc[V, C]                    // Step price.
	options     Options[C]                        // MaxDistance and hooks.
	dist        *densegrid.Grid[metric.Metric[C]] // Best known distance per cell.
	prev        *densegrid.Grid[Predecessor]      // Predecessor on the best path.
	visited     *densegrid.Grid[bool]             // Settled cells.
	pq          nodePQ[C]                         // Lazy min-heap of candidates.
}

// init sets the start distance to zero and seeds the heap with it.
func (r *runner[V, C]) init(start densegrid.Point) {
	// 1) The start is at distance zero and has no predecessor.
	var zero C
	r.dist.Put(start, metric.Finite(zero))
	// 2) Seed the heap with the start alone.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[C]{p: start, dist: zero})
}

// process pops the closest unsettled cell until the heap is empty or the
// next candidate lies beyond MaxDistance.
func (r *runner[V, C]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the cell with the smallest tentative distance.
		item := heap.Pop(&r.pq).(*nodeItem[C])

		// 2) Stale entry: a shorter one for this cell was already settled.
		if r.visited.At(item.p) {
			continue
		}
		// 3) Heap order means every remaining entry is at least as far; stop.
		if r.options.Limited && item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle the cell and report it.
		r.visited.Put(item.p, true)
		r.options.OnSettle(item.p, item.dist)

		// 5) Offer the settled distance to its neighbours.
		if err := r.relax(item.p, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers u's settled distance d to each of its 4-neighbours.
// A neighbour is skipped when it is outside the grid, settled, or rejected by
// the traversable predicate. Only a strictly shorter distance replaces the
// current one; every improvement pushes a fresh heap entry.
func (r *runner[V, C]) relax(u densegrid.Point, d C) error {
	for _, v := range u.OrdinalNeighbors() {
		// 1) Skip cells outside the grid, already settled, or not enterable.
		if !r.g.Contains(v) || r.visited.At(v) || !r.traversable(r.g, v) {
			continue
		}

		// 2) Price the step; a negative cost aborts the whole search.
		w := r.cost(r.g, u, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, u, v, w)
		}

		// 3) Candidates beyond MaxDistance stay unreachable.
		newDist := d + w
		if r.options.Limited && newDist > r.options.MaxDistance {
			continue
		}
		// 4) Only a strictly shorter distance replaces the current one.
		if cur, ok := r.dist.At(v).Value(); ok && newDist >= cur {
			continue
		}

		// 5) Record the improvement and push a fresh heap entry.
		r.dist.Put(v, metric.Finite(newDist))
		r.prev.Put(v, Predecessor{From: u, OK: true})
		heap.Push(&r.pq, &nodeItem[C]{p: v, dist: newDist})
	}

	return nil
}

// PathTo walks prev back from target to start and returns the points from
// start to target inclusive. It returns false when target is outside prev or
// its predecessor chain does not lead to start.
func PathTo(prev *densegrid.Grid[Predecessor], start, target densegrid.Point) ([]densegrid.Point, bool) {
	if !prev.Contains(target) {
		return nil, false
	}
	// 1) Walk predecessors back to start; a missing link or a chain longer
	//    than the grid means target is not connected to start.
	path := []densegrid.Point{target}
	for cur := target; cur != start; {
		p, ok := prev.At(cur).Get()
		if !ok || len(path) > prev.Size() {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	// 2) Reverse to get start → target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// UnitCost prices every step at 1, turning Dijkstra into a hop count.
func UnitCost[V any, C Cost](*densegrid.Grid[V], densegrid.Point, densegrid.Point) C {
	return 1
}

// nodeItem is a heap entry: a cell and the distance it was pushed with.
type nodeItem[C Cost] struct {
	p    densegrid.Point
	dist C
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by point.Compare.
// Outdated entries stay in the heap and are dropped when popped.
type nodePQ[C Cost] []*nodeItem[C]

func (pq nodePQ[C]) Len() int { return len(pq) }

func (pq nodePQ[C]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return point.Compare(pq[i].p, pq[j].p) < 0
}

func (pq nodePQ[C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem[C]. Called by heap.Push.
func (pq *nodePQ[C]) Push(x any) { *pq = append(*pq, x.(*nodeItem[C])) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ[C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
