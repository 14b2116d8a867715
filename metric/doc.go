// Package metric defines Metric, the weight domain of shortest-path results:
// a value is either a finite distance or Unreachable.
//
// Ordering:
//
//   - Finite values compare by their payload.
//   - Unreachable compares greater than every finite value.
//   - Two Unreachable values are equal (Unreachable never carries a payload).
//
// The zero value of Metric is Unreachable, so a freshly allocated
// densegrid.Grid[Metric[V]] starts out with every cell unreachable.
//
// Errors:
//
//   - ErrUnreachable: the panic value of Unwrap on an Unreachable metric.
package metric
