// Package bellmanford implements single-source shortest paths on a directed
// graph whose edge weights may be negative.
//
// The algorithm runs at most n−1 relaxation passes over the edge list and
// stops early once a full pass changes nothing. Negative cycles are neither
// detected nor reported: if one is reachable, the distances after n−1 passes
// are returned as they stand.
//
// Input format (tab separated, all integers):
//
//	<n>\t<m>
//	<u>\t<v>\t<w>     (exactly m lines, vertices 0..n-1)
//
// Complexity: O(n·m) time, O(n) memory.
package bellmanford
