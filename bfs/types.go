// Package bfs provides tunable options and error definitions
// for breadth‐first search over a densegrid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/metric"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start point is not in the grid.
	ErrStartOutOfBounds = errors.New("bfs: start point not contained in grid")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for cells the search never reached.
	ErrNotReached = errors.New("bfs: no path to cell")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(p densegrid.Point, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p densegrid.Point, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p densegrid.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	// Called for each in-bounds step curr→next.
	FilterNeighbor func(curr, next densegrid.Point) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbours allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(densegrid.Point, int) {},
		OnDequeue:      func(densegrid.Point, int) {},
		OnVisit:        func(densegrid.Point, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ densegrid.Point) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p densegrid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p densegrid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p densegrid.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips steps when fn returns false.
func WithFilterNeighbor(fn func(curr, next densegrid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the start cell.
//   - Order: cells visited, in visit sequence.
//   - Depth: per-cell step count from Start; Unreachable when not reached.
//   - Parent: per-cell predecessor in the BFS tree; meaningful only for
//     reached cells other than Start.
type Result struct {
	Start  densegrid.Point
	Order  []densegrid.Point
	Depth  *densegrid.Grid[metric.Metric[int]]
	Parent *densegrid.Grid[densegrid.Point]
}

// Reached reports whether p was reached by the search.
func (r *Result) Reached(p densegrid.Point) bool {
	d, ok := r.Depth.Get(p)
	return ok && d.IsFinite()
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result) PathTo(dest densegrid.Point) ([]densegrid.Point, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []densegrid.Point{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent.At(cur)
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
