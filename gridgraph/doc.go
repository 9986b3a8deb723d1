// Package gridgraph treats a 2D character map as a weighted graph and finds
// the cheapest 4-connected route from the start cell 'S' to the goal cell 'G'.
//
// What:
//
//   - Every non-obstacle cell is an implicit vertex (row, col).
//   - Edges go to the up/down/left/right neighbors; the weight of an edge is
//     the cost of ENTERING its destination cell: '.', '=', 'S', 'G' cost 1,
//     '~' costs 3, any other passable character costs 1. '#' is impassable.
//   - ShortestPath runs Dijkstra with a binary heap, a lazy decrease-key
//     (stale entries are skipped on pop) and early exit when 'G' is popped.
//   - Overlay draws the found route on a copy of the map.
//
// Input format:
//
//	<rows> <cols>
//	<row string>   (exactly rows lines, padded with spaces or cut to cols)
//
// Complexity:
//
//   - ShortestPath: O(E log E) time with E ≤ 4·W·H pushes, O(W·H) memory.
//   - Overlay:      O(W·H).
//
// Errors:
//
//   - ErrEmptyInput, ErrBadHeader, ErrTruncatedInput: malformed input text.
//   - ErrMissingStart, ErrMissingGoal, ErrDuplicateMarker: marker problems.
//   - An unreachable goal is not an error; the Route reports Found == false.
package gridgraph
