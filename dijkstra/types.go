// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over a densegrid.Grid.
//
// The search runs on the grid's 4-neighbourhood. Two caller-supplied
// functions shape the graph:
//
//	– TraversableFunc decides whether a neighbour cell may be entered.
//	– CostFunc prices each step from one cell to an adjacent one.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; cells beyond stay unreachable.
//	– OnSettle:    hook called once per cell when its distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrNilCost          if no cost function is supplied.
//	– ErrStartOutOfBounds if the start point is not contained in the grid.
//	– ErrNegativeCost     if the cost function prices a step below zero.
//	– ErrBadMaxDistance   panic value of WithMaxDistance for a negative cap.
package dijkstra

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *densegrid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilCost indicates that Dijkstra was called without a cost function.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrStartOutOfBounds indicates that the start point lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start point not contained in grid")

	// ErrNegativeCost indicates that the cost function returned a negative
	// step cost, which Dijkstra cannot handle.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Cost is the set of distance types: any integer or float. Costs must be
// non-negative; zero-cost steps are allowed.
type Cost interface {
	constraints.Integer | constraints.Float
}

// TraversableFunc reports whether cell p of g may be entered.
type TraversableFunc[V any] func(g *densegrid.Grid[V], p densegrid.Point) bool

// CostFunc returns the price of stepping from one cell of g to an adjacent one.
type CostFunc[V any, C Cost] func(g *densegrid.Grid[V], from, to densegrid.Point) C

// Predecessor is a cell of the predecessor grid: the previous point on a
// shortest path, or OK == false for the start cell and unreached cells.
type Predecessor struct {
	From densegrid.Point
	OK   bool
}

// Get returns the predecessor point and whether there is one.
func (p Predecessor) Get() (densegrid.Point, bool) {
	return p.From, p.OK
}

// Options configures the behavior of the Dijkstra search.
//
// MaxDistance – cap on distances to explore, honoured only when Limited is set.
// Limited     – whether MaxDistance applies.
// OnSettle    – called once per cell, in settle order, with its final distance.
type Options[C Cost] struct {
	MaxDistance C
	Limited     bool
	OnSettle    func(p densegrid.Point, dist C)
}

// Option represents a functional option for configuring Dijkstra.
type Option[C Cost] func(*Options[C])

// WithMaxDistance stops the search from settling cells farther than max.
// Those cells are reported as unreachable. A negative max panics with
// ErrBadMaxDistance.
func WithMaxDistance[C Cost](max C) Option[C] {
	if max < 0 {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance)
	}
	return func(o *Options[C]) {
		o.MaxDistance = max
		o.Limited = true
	}
}

// WithOnSettle registers a hook called when a cell's distance becomes final.
func WithOnSettle[C Cost](fn func(p densegrid.Point, dist C)) Option[C] {
	return func(o *Options[C]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with no distance cap and a no-op OnSettle.
func DefaultOptions[C Cost]() Options[C] {
	return Options[C]{
		Limited:  false,
		OnSettle: func(densegrid.Point, C) {},
	}
}
