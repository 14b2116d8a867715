package densegrid

import (
	"errors"

	"github.com/Roguelazer/advent-of-code-2025/point"
)

// Sentinel errors for densegrid operations.
var (
	// ErrEmptyGrid indicates text input with no rows or an empty first row.
	ErrEmptyGrid = errors.New("densegrid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates a text row whose length differs from the first row.
	ErrNonRectangular = errors.New("densegrid: all rows must have the same length")

	// ErrOutOfBounds is the panic value of the strict accessors At and Put.
	ErrOutOfBounds = errors.New("densegrid: point out of bounds")

	// ErrBadScale reports a non-positive image scale.
	ErrBadScale = errors.New("densegrid: image scale must be at least 1")
)

// Point is the coordinate type of every Grid.
type Point = point.Point[int]
