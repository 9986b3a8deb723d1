// Package pathlab collects three classic shortest-path tools and the small
// pieces they share.
//
// What is inside?
//
//   - floydwarshall: all-pairs distances with a next-hop routing table,
//     path reconstruction and the graph's central vertex.
//   - bellmanford: single-source distances on directed graphs that may carry
//     negative edge weights.
//   - gridgraph: Dijkstra over a weighted character map, 4-connected, with
//     early exit at the goal and a route overlay.
//   - matrix: a dense float64 matrix and its aligned text rendering.
//   - cli: the cobra commands behind cmd/floydcentral, cmd/bellmanford and
//     cmd/gridroute.
//
// Every package reads its own plain-text input format, reports problems as
// wrapped sentinel errors and treats unreachable vertices as a result rather
// than an error.
//
// Quick start:
//
//	go install github.com/katalvlaran/pathlab/cmd/...@latest
//	floydcentral graph1.txt --from=1 --to=7
//	bellmanford graph2.txt --dest=4
//	gridroute warehouse.txt
//
// Runnable scenarios live under examples/.
package pathlab
