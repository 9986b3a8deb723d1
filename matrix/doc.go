// Package matrix provides the dense distance storage used by the all-pairs
// shortest-path code.
//
// Dense is a row-major float64 matrix with bounds-checked At/Set.
// NewDistance builds the canonical starting point for path algorithms:
// zeros on the diagonal and +Inf everywhere else, where +Inf means
// "no known path". WriteTable renders a square matrix with ∞ for +Inf.
//
// Complexity:
//
//   - At, Set: O(1)
//   - NewDistance, Clone, WriteTable: O(n²)
//   - RowSum, Row: O(n)
package matrix
