package point

import (
	"cmp"
	"fmt"
	"math"
	"unsafe"
)

// Point is a 2-D coordinate or vector.
type Point[N Scalar] struct {
	X, Y N
}

// New returns the point (x, y).
func New[N Scalar](x, y N) Point[N] {
	return Point[N]{X: x, Y: y}
}

// Add returns p + q.
func (p Point[N]) Add(q Point[N]) Point[N] {
	return Point[N]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point[N]) Sub(q Point[N]) Point[N] {
	return Point[N]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both components by k.
func (p Point[N]) Mul(k N) Point[N] {
	return Point[N]{X: p.X * k, Y: p.Y * k}
}

// Neg returns -p.
func (p Point[N]) Neg() Point[N] {
	return Point[N]{X: -p.X, Y: -p.Y}
}

// Mirror is Neg under its rotation name. Unlike RotateBy(Mirror) it accepts
// diagonal vectors.
func (p Point[N]) Mirror() Point[N] {
	return p.Neg()
}

// Transpose swaps X and Y.
func (p Point[N]) Transpose() Point[N] {
	return Point[N]{X: p.Y, Y: p.X}
}

// ManhattanDistanceTo returns |Δx| + |Δy|.
// It panics with ErrDistanceOverflow if the result does not fit N or uint64.
func (p Point[N]) ManhattanDistanceTo(q Point[N]) uint64 {
	if isFloat[N]() {
		limit := math.MaxFloat64
		if unsafe.Sizeof(p.X) == 4 {
			limit = math.MaxFloat32
		}
		d := float64(absDiff(p.X, q.X)) + float64(absDiff(p.Y, q.Y))
		if math.IsNaN(d) || d > limit || d >= 1<<64 {
			panic(fmt.Errorf("%w: %v to %v", ErrDistanceOverflow, p, q))
		}
		return uint64(d)
	}

	dx := absDiffUint(p.X, q.X)
	dy := absDiffUint(p.Y, q.Y)
	sum := dx + dy
	// Carry out of uint64, or a sum that does not survive the round trip
	// through N.
	if sum < dx || N(sum) < 0 || uint64(N(sum)) != sum {
		panic(fmt.Errorf("%w: %v to %v", ErrDistanceOverflow, p, q))
	}
	return sum
}

// isFloat reports whether N is a floating-point type.
func isFloat[N Scalar]() bool {
	one := N(1)
	return one/2 != 0
}

// absDiff returns |a - b| for floating-point N.
func absDiff[N Scalar](a, b N) N {
	if a >= b {
		return a - b
	}
	return b - a
}

// absDiffUint returns |a - b| for integer N. Both operands are sign-extended
// to uint64, so the wrapped subtraction is exact for every pair of N values.
func absDiffUint[N Scalar](a, b N) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// RotateBy applies r to an axis-aligned vector.
// It panics with ErrNotAxisAligned when both components are non-zero.
func (p Point[N]) RotateBy(r Rotation) Point[N] {
	if p.X != 0 && p.Y != 0 {
		panic(fmt.Errorf("%w: cannot rotate %v", ErrNotAxisAligned, p))
	}
	switch r {
	case CW:
		return Point[N]{X: -p.Y, Y: p.X}
	case CCW:
		return Point[N]{X: p.Y, Y: -p.X}
	case Mirror:
		return p.Neg()
	default:
		panic(fmt.Sprintf("point: unknown rotation %d", int(r)))
	}
}

// OrdinalNeighbors returns the four axis-adjacent points in the fixed order
// +x, +y, -x, -y.
func (p Point[N]) OrdinalNeighbors() [4]Point[N] {
	return [4]Point[N]{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

// AllNeighbors returns the eight surrounding points row by row, from
// (x-1, y-1) to (x+1, y+1).
func (p Point[N]) AllNeighbors() [8]Point[N] {
	var out [8]Point[N]
	i := 0
	for dy := N(-1); dy <= 1; dy++ {
		for dx := N(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Point[N]{X: p.X + dx, Y: p.Y + dy}
			i++
		}
	}
	return out
}

// Compare orders points lexicographically on (X, Y).
func Compare[N Scalar](a, b Point[N]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Less reports whether p sorts before q.
func (p Point[N]) Less(q Point[N]) bool {
	return Compare(p, q) < 0
}

// String renders p as "(x, y)".
func (p Point[N]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
