package densegrid

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// FromText parses a rectangular block of text, mapping each rune to a cell
// with f. The result spans [0, w-1]×[0, h-1].
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromText[V any](text string, f func(rune) V) (*Grid[V], error) {
	return TryFromText(text, func(r rune) (V, error) {
		return f(r), nil
	})
}

// TryFromText is FromText with a fallible mapping. The first error returned
// by f aborts parsing; it is wrapped with the cell's coordinate and stays
// reachable through errors.Is and errors.As.
func TryFromText[V any](text string, f func(rune) (V, error)) (*Grid[V], error) {
	lines := splitLines(text)
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	width := utf8.RuneCountInString(lines[0])

	var zero V
	g := New(Point{}, Point{X: width - 1, Y: len(lines) - 1}, zero)
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, width)
		}
		x := 0
		for _, r := range line {
			v, err := f(r)
			if err != nil {
				return nil, fmt.Errorf("densegrid: cell (%d, %d) %q: %w", x, y, r, err)
			}
			g.cells[y*width+x] = v
			x++
		}
	}

	return g, nil
}

// splitLines splits on '\n', dropping one trailing empty line and any
// trailing '\r'.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// DumpWith writes one line per row to w, rendering each cell with f.
// It is the inverse of FromText when f inverts the parse mapping.
func (g *Grid[V]) DumpWith(w io.Writer, f func(V) rune) error {
	var sb strings.Builder
	for row := range g.Rows() {
		sb.Reset()
		for _, v := range row {
			sb.WriteRune(f(v))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
