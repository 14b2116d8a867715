// Package metric_test covers ordering, equality and unwrapping of Metric.
package metric_test

import (
	"slices"
	"testing"

	"github.com/Roguelazer/advent-of-code-2025/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_Ordering checks that Unreachable sorts after every finite value.
func TestCompare_Ordering(t *testing.T) {
	inf := metric.Unreachable[int]()
	cases := []struct {
		name string
		a, b metric.Metric[int]
		want int
	}{
		{"FiniteLess", metric.Finite(1), metric.Finite(2), -1},
		{"FiniteEqual", metric.Finite(7), metric.Finite(7), 0},
		{"FiniteGreater", metric.Finite(9), metric.Finite(-3), 1},
		{"FiniteBeforeUnreachable", metric.Finite(1 << 40), inf, -1},
		{"UnreachableAfterFinite", inf, metric.Finite(0), 1},
		{"UnreachableEqual", inf, inf, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

// TestZeroValueIsUnreachable guards the invariant densegrid relies on when
// allocating a distance grid.
func TestZeroValueIsUnreachable(t *testing.T) {
	var m metric.Metric[float64]
	require.False(t, m.IsFinite())
	require.Equal(t, metric.Unreachable[float64](), m)

	v, ok := m.Value()
	require.False(t, ok)
	require.Zero(t, v)
}

// TestEquality verifies that == follows the tagged-value semantics.
func TestEquality(t *testing.T) {
	assert.True(t, metric.Finite(3) == metric.Finite(3))
	assert.False(t, metric.Finite(3) == metric.Finite(4))
	assert.False(t, metric.Finite(0) == metric.Unreachable[int]())
	assert.True(t, metric.Unreachable[int]() == metric.Unreachable[int]())
}

// TestUnwrap returns the payload for finite metrics and panics otherwise.
func TestUnwrap(t *testing.T) {
	require.Equal(t, uint(12), metric.Finite[uint](12).Unwrap())
	require.PanicsWithValue(t, metric.ErrUnreachable, func() {
		_ = metric.Unreachable[uint]().Unwrap()
	})
}

// TestSortFunc sorts a mixed slice with Compare.
func TestSortFunc(t *testing.T) {
	in := []metric.Metric[int]{
		metric.Unreachable[int](),
		metric.Finite(5),
		metric.Finite(-1),
		metric.Unreachable[int](),
		metric.Finite(2),
	}
	slices.SortFunc(in, metric.Metric[int].Compare)
	want := []metric.Metric[int]{
		metric.Finite(-1),
		metric.Finite(2),
		metric.Finite(5),
		metric.Unreachable[int](),
		metric.Unreachable[int](),
	}
	require.Equal(t, want, in)
}

func TestString(t *testing.T) {
	assert.Equal(t, "42", metric.Finite(42).String())
	assert.Equal(t, "∞", metric.Unreachable[int]().String())
}
