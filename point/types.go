package point

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Panic values for precondition violations.
var (
	// ErrNotAxisAligned indicates an operation that needs a horizontal or
	// vertical vector (or segment) received a diagonal one.
	ErrNotAxisAligned = errors.New("point: not axis-aligned")

	// ErrDistanceOverflow indicates a Manhattan distance that cannot be
	// represented.
	ErrDistanceOverflow = errors.New("point: manhattan distance overflows")
)

// Scalar is the set of coordinate types: signed integers and floats.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Rotation is a quarter or half turn applied by RotateBy.
type Rotation int

const (
	// CW turns (x, y) into (-y, x).
	CW Rotation = iota
	// CCW turns (x, y) into (y, -x).
	CCW
	// Mirror turns (x, y) into (-x, -y).
	Mirror
)

// String returns the rotation's short name.
func (r Rotation) String() string {
	switch r {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	case Mirror:
		return "Mirror"
	default:
		return "Rotation(?)"
	}
}
