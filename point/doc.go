// Package point provides Point, an immutable 2-D coordinate or vector over any
// signed integer or floating-point type, and Vec3, its 3-D counterpart.
//
// What:
//
//   - Arithmetic: Add, Sub, Mul, Neg, Transpose.
//   - Manhattan distance (ManhattanDistanceTo) as a non-negative uint64.
//   - Quarter-turn rotations (RotateBy with CW, CCW, Mirror) of axis-aligned vectors.
//   - Neighbour enumeration: OrdinalNeighbors (4, fixed order +x, +y, -x, -y)
//     and AllNeighbors (8, row by row).
//   - Rasterisation of axis-aligned segments (LineTo) as a lazy, restartable
//     iter.Seq.
//
// Coordinates follow screen convention when used with densegrid: X grows to the
// right and Y grows downwards, so CW turns +x into +y.
//
// Fatal preconditions (panics carrying a sentinel error):
//
//   - ErrNotAxisAligned: RotateBy on a vector with two non-zero components,
//     or LineTo between points that share neither X nor Y.
//   - ErrDistanceOverflow: the Manhattan distance does not fit N or uint64.
package point
