package densegrid

import "iter"

// Rows yields one freshly allocated slice per row, top to bottom. Each range
// over the sequence reads the grid's state at that time.
func (g *Grid[V]) Rows() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for r := 0; r < g.height; r++ {
			row := make([]V, g.width)
			copy(row, g.cells[r*g.width:(r+1)*g.width])
			if !yield(row) {
				return
			}
		}
	}
}

// Columns yields one freshly allocated slice per column, left to right.
func (g *Grid[V]) Columns() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for c := 0; c < g.width; c++ {
			col := make([]V, g.height)
			for r := range col {
				col[r] = g.cells[r*g.width+c]
			}
			if !yield(col) {
				return
			}
		}
	}
}

// All yields every (point, value) pair in row-major order: all X for MinY,
// then all X for MinY+1, and so on.
func (g *Grid[V]) All() iter.Seq2[Point, V] {
	return func(yield func(Point, V) bool) {
		i := 0
		for y := g.minY; y <= g.maxY; y++ {
			for x := g.minX; x <= g.maxX; x++ {
				if !yield(Point{X: x, Y: y}, g.cells[i]) {
					return
				}
				i++
			}
		}
	}
}

// FindFunc returns the first point in row-major order whose cell satisfies
// pred.
// Complexity: O(W×H).
func (g *Grid[V]) FindFunc(pred func(V) bool) (Point, bool) {
	for p, v := range g.All() {
		if pred(v) {
			return p, true
		}
	}
	return Point{}, false
}

// Find returns the first point in row-major order whose cell equals v.
func Find[V comparable](g *Grid[V], v V) (Point, bool) {
	return g.FindFunc(func(c V) bool { return c == v })
}
