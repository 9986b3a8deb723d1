// Package floydwarshall computes all-pairs shortest paths on a small,
// undirected, non-negatively weighted graph and picks its central vertex.
//
// What:
//
//   - ReadGraph parses the "<n> <m>" + "<u> <v> <w>" text format.
//   - Compute runs Floyd–Warshall and fills a next-hop routing matrix R
//     alongside the distance matrix D.
//   - Result.Path rebuilds any shortest path in O(path length) by following
//     next hops; Central and Farthest answer the "where to place the depot"
//     question (minimum row sum of D, then its farthest vertex).
//
// Vertices are numbered 1..n in every public API.
//
// Routing invariant:
//
//	D[i][j] < ∞  ⇒  R[i][j] is defined, and following R from i reaches j in ≤ n steps.
//
// Relaxation stores R[i][j] = R[i][k] (the first hop toward k), never k itself,
// so the table always names the very next vertex to move to.
//
// Complexity:
//
//   - Compute: O(n³) time, O(n²) memory.
//   - Path:    O(n) time.
//   - Central: O(n²) time.
//
// Errors:
//
//   - ErrEmptyInput, ErrBadHeader, ErrBadEdge: malformed input text.
//   - ErrVertexOutOfRange: an endpoint or query outside 1..n.
//   - ErrNegativeWeight: an undirected negative edge (a negative cycle by itself).
//   - ErrInconsistentRouting: next-hop walk exceeded n² steps (corrupted R).
package floydwarshall
