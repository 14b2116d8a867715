package densegrid

import (
	"fmt"
	"slices"
)

// Grid is a dense rectangle of cells with inclusive bounds
// [MinX, MaxX] × [MinY, MaxY].
type Grid[V any] struct {
	minX, minY int
	maxX, maxY int
	width      int
	height     int
	cells      []V
}

// New returns the grid spanning corners a and b (in any order) with every
// cell set to fill.
// Complexity: O(W×H) time and memory.
func New[V any](a, b Point, fill V) *Grid[V] {
	g := &Grid[V]{
		minX: min(a.X, b.X),
		maxX: max(a.X, b.X),
		minY: min(a.Y, b.Y),
		maxY: max(a.Y, b.Y),
	}
	g.width = g.maxX - g.minX + 1
	g.height = g.maxY - g.minY + 1
	g.cells = make([]V, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = fill
	}

	return g
}

// NewWithBoundsOf returns a grid with the same bounds as other, every cell
// set to fill. The cell types may differ, which keeps parallel grids
// (distances, predecessors, counters) in the same shape.
func NewWithBoundsOf[V, T any](other *Grid[T], fill V) *Grid[V] {
	return New(other.Origin(), Point{X: other.maxX, Y: other.maxY}, fill)
}

// Clone returns a deep copy of g.
func (g *Grid[V]) Clone() *Grid[V] {
	c := *g
	c.cells = slices.Clone(g.cells)
	return &c
}

// MinX returns the smallest valid X.
func (g *Grid[V]) MinX() int { return g.minX }

// MinY returns the smallest valid Y.
func (g *Grid[V]) MinY() int { return g.minY }

// MaxX returns the largest valid X.
func (g *Grid[V]) MaxX() int { return g.maxX }

// MaxY returns the largest valid Y.
func (g *Grid[V]) MaxY() int { return g.maxY }

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid[V]) Size() int { return g.width * g.height }

// Origin returns the top-left corner (MinX, MinY).
func (g *Grid[V]) Origin() Point {
	return Point{X: g.minX, Y: g.minY}
}

// Bounds returns the top-left and bottom-right corners, both inclusive.
func (g *Grid[V]) Bounds() (lo, hi Point) {
	return g.Origin(), Point{X: g.maxX, Y: g.maxY}
}

// Contains reports whether p lies inside the grid.
func (g *Grid[V]) Contains(p Point) bool {
	return p.X >= g.minX && p.X <= g.maxX && p.Y >= g.minY && p.Y <= g.maxY
}

// index maps p to its row-major slot, or -1 when p is outside.
func (g *Grid[V]) index(p Point) int {
	if !g.Contains(p) {
		return -1
	}
	return (p.Y-g.minY)*g.width + (p.X - g.minX)
}

// Get returns the cell at p, or the zero V and false when p is outside.
func (g *Grid[V]) Get(p Point) (V, bool) {
	i := g.index(p)
	if i < 0 {
		var zero V
		return zero, false
	}
	return g.cells[i], true
}

// Set writes v at p and reports whether p was inside. An outside point
// leaves the grid untouched.
func (g *Grid[V]) Set(p Point, v V) bool {
	i := g.index(p)
	if i < 0 {
		return false
	}
	g.cells[i] = v
	return true
}

// Update replaces the cell at p with f(cell) and reports whether p was
// inside. f is not called for outside points.
func (g *Grid[V]) Update(p Point, f func(V) V) bool {
	i := g.index(p)
	if i < 0 {
		return false
	}
	g.cells[i] = f(g.cells[i])
	return true
}

// At returns the cell at p. It panics with ErrOutOfBounds when p is outside.
func (g *Grid[V]) At(p Point) V {
	return g.cells[g.mustIndex(p)]
}

// Put writes v at p. It panics with ErrOutOfBounds when p is outside.
func (g *Grid[V]) Put(p Point, v V) {
	g.cells[g.mustIndex(p)] = v
}

func (g *Grid[V]) mustIndex(p Point) int {
	i := g.index(p)
	if i < 0 {
		panic(fmt.Errorf("%w: %v not in [%d, %d]×[%d, %d]", ErrOutOfBounds, p, g.minX, g.maxX, g.minY, g.maxY))
	}
	return i
}

// Equal reports whether a and b have the same bounds and cells.
func Equal[V comparable](a, b *Grid[V]) bool {
	return a.minX == b.minX && a.minY == b.minY &&
		a.maxX == b.maxX && a.maxY == b.maxY &&
		slices.Equal(a.cells, b.cells)
}
