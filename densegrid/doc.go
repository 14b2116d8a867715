// Package densegrid provides Grid, a fixed rectangle of cells addressed by
// arbitrary (possibly negative) integer coordinates and stored in one
// row-major slice.
//
// What:
//
//   - Construction from two corners and a fill value (New), from another
//     grid's bounds (NewWithBoundsOf), or from a rectangular block of text
//     (FromText, TryFromText).
//   - Lenient access (Get, Set, Update) that reports out-of-bounds points
//     with a boolean, and strict access (At, Put) that panics with
//     ErrOutOfBounds for callers that already know the point is inside.
//   - Lazy, restartable iteration: Rows, Columns (one fresh slice per line)
//     and All ((point, value) pairs in row-major order).
//   - Search (Find, FindFunc), text dumps (DumpWith), PNG export (Image,
//     SavePNG) and content hashing (Hash).
//
// Layout:
//
//	index(x, y) = (y - MinY)·Width + (x - MinX)
//
// Every point with MinX ≤ x ≤ MaxX and MinY ≤ y ≤ MaxY maps to exactly one
// slot; no other point has one.
//
// Text input:
//
//   - Rows are separated by '\n'; a trailing '\r' on each row and a single
//     trailing newline are ignored.
//   - Width is the rune count of the first row. A row of any other length
//     fails with ErrNonRectangular, empty input with ErrEmptyGrid.
//
// Thread safety:
//
//   - A Grid is owned by its caller. Concurrent readers are fine; any writer
//     needs external synchronisation.
package densegrid
