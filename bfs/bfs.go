package bfs

import (
	"context"
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/metric"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     densegrid.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V any] struct {
	grid  *densegrid.Grid[V]
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On error the partial Result is still
// returned alongside it.
func BFS[V any](g *densegrid.Grid[V], start densegrid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	w := &walker[V]{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, g.Width()+g.Height()),
		res: &Result{
			Start:  start,
			Order:  make([]densegrid.Point, 0, g.Size()),
			Depth:  densegrid.NewWithBoundsOf(g, metric.Unreachable[int]()),
			Parent: densegrid.NewWithBoundsOf(g, densegrid.Point{}),
		},
	}

	// Seed queue with start cell (its own parent)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// enqueue records p at depth d with its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[V]) enqueue(p densegrid.Point, d int, parent densegrid.Point) {
	w.res.Depth.Put(p, metric.Finite(d))
	w.res.Parent.Put(p, parent)
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors applies bounds, filtering and MaxDepth, and enqueues each
// unseen neighbour.
func (w *walker[V]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.p.OrdinalNeighbors() {
		if !w.grid.Contains(nbr) || w.res.Depth.At(nbr).IsFinite() {
			continue
		}
		if !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.p)
	}
}
