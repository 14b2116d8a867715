package point

import (
	"fmt"
	"iter"
)

// LineTo returns every unit step on the segment from p to q, both endpoints
// included. The sequence is lazy and restartable: each range over it starts
// again at p. When p == q it yields p once.
//
// LineTo panics with ErrNotAxisAligned unless p and q share X or Y.
// Floating-point endpoints are expected to lie a whole number of steps apart.
func (p Point[N]) LineTo(q Point[N]) iter.Seq[Point[N]] {
	if p.X != q.X && p.Y != q.Y {
		panic(fmt.Errorf("%w: no line from %v to %v", ErrNotAxisAligned, p, q))
	}
	dir := direction(p, q)
	steps := p.ManhattanDistanceTo(q)

	return func(yield func(Point[N]) bool) {
		cur := p
		for i := uint64(0); ; i++ {
			if !yield(cur) || i == steps {
				return
			}
			cur = cur.Add(dir)
		}
	}
}

// direction returns the unit vector from p towards q along the axis they do
// not share, or the zero vector when p == q.
func direction[N Scalar](p, q Point[N]) Point[N] {
	switch {
	case p.X < q.X:
		return Point[N]{X: 1}
	case p.X > q.X:
		return Point[N]{X: -1}
	case p.Y < q.Y:
		return Point[N]{Y: 1}
	case p.Y > q.Y:
		return Point[N]{Y: -1}
	default:
		return Point[N]{}
	}
}
