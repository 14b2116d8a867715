package metric

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnreachable is the panic value of Unwrap on an Unreachable metric.
var ErrUnreachable = errors.New("metric: expected finite value, got unreachable")

// Metric is a finite distance of type V or Unreachable.
type Metric[V cmp.Ordered] struct {
	value  V
	finite bool
}

// Finite returns a reachable metric carrying v.
func Finite[V cmp.Ordered](v V) Metric[V] {
	return Metric[V]{value: v, finite: true}
}

// Unreachable returns the unreachable metric. It equals the zero Metric.
func Unreachable[V cmp.Ordered]() Metric[V] {
	return Metric[V]{}
}

// IsFinite reports whether m carries a distance.
func (m Metric[V]) IsFinite() bool {
	return m.finite
}

// Value returns the distance and true, or the zero V and false for Unreachable.
func (m Metric[V]) Value() (V, bool) {
	return m.value, m.finite
}

// Unwrap returns the distance. It panics with ErrUnreachable when m is
// Unreachable: the caller asserted a reachable result.
func (m Metric[V]) Unwrap() V {
	if !m.finite {
		panic(ErrUnreachable)
	}
	return m.value
}

// Compare returns -1, 0 or +1 depending on whether m sorts before, equal to
// or after other. Unreachable sorts after every finite value.
func (m Metric[V]) Compare(other Metric[V]) int {
	switch {
	case m.finite && other.finite:
		return cmp.Compare(m.value, other.value)
	case m.finite:
		return -1
	case other.finite:
		return 1
	default:
		return 0
	}
}

// Less reports whether m sorts strictly before other.
func (m Metric[V]) Less(other Metric[V]) bool {
	return m.Compare(other) < 0
}

// String renders a finite metric as its value and Unreachable as "∞".
func (m Metric[V]) String() string {
	if !m.finite {
		return "∞"
	}
	return fmt.Sprint(m.value)
}
