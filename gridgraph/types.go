package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: +x, +y, -x, -y.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, row by row around the cell.
	Conn8
)

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// MemberFunc reports whether a cell value belongs to the region of interest.
type MemberFunc[V any] func(v V) bool

// Options configures ExpandIsland.
//
// Blocked – cells that cannot be converted or crossed.
type Options[V any] struct {
	Blocked MemberFunc[V]
}

// Option represents a functional option for configuring ExpandIsland.
type Option[V any] func(*Options[V])

// WithBlocked excludes cells whose value satisfies blocked from every path.
func WithBlocked[V any](blocked MemberFunc[V]) Option[V] {
	return func(o *Options[V]) {
		o.Blocked = blocked
	}
}
