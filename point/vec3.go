package point

import (
	"cmp"
	"fmt"
)

// Vec3 is a 3-D coordinate or vector.
type Vec3[N Scalar] struct {
	X, Y, Z N
}

// NewVec3 returns the vector (x, y, z).
func NewVec3[N Scalar](x, y, z N) Vec3[N] {
	return Vec3[N]{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3[N]) Add(w Vec3[N]) Vec3[N] {
	return Vec3[N]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3[N]) Sub(w Vec3[N]) Vec3[N] {
	return Vec3[N]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale multiplies every component by k.
func (v Vec3[N]) Scale(k N) Vec3[N] {
	return Vec3[N]{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// CompareVec3 orders vectors lexicographically on (X, Y, Z).
func CompareVec3[N Scalar](a, b Vec3[N]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}

func (v Vec3[N]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
