package gridgraph

import (
	"container/heap"

	"k8s.io/klog/v2"
)

// ShortestPath runs Dijkstra from g.Start to g.Goal.
//
// dist holds the best known cost per cell; a cell absent from dist has
// infinite distance (never discovered). parent records the predecessor used
// to reach each cell. The heap starts with (0, start).
//
// Loop:
//  1. Pop the minimum (d, u) and count it as an expansion.
//  2. If d != dist[u] the entry is stale (a cheaper push superseded it): skip.
//  3. If u is the goal, stop: with non-negative costs d is final.
//  4. Otherwise relax every passable neighbor v with d + Cost(v), pushing a
//     new entry on strict improvement and leaving old entries in place.
//
// If the heap drains first, the goal is unreachable and Route.Found is false.
func ShortestPath(g *Grid) (*Route, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	r := &runner{
		g:      g,
		dist:   make(map[Cell]int),
		parent: make(map[Cell]Cell),
		pq:     make(cellPQ, 0, g.Rows+g.Cols),
	}
	r.init()
	route := r.process()
	klog.V(4).Infof("gridgraph: found=%t cost=%d expanded=%d", route.Found, route.Cost, route.Expanded)

	return route, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *Grid
	dist     map[Cell]int  // best known cost; absent = ∞
	parent   map[Cell]Cell // predecessor on the best known route
	pq       cellPQ
	expanded int
	nbuf     []Cell // reused neighbor buffer
}

// init seeds the heap with the start cell at distance 0.
func (r *runner) init() {
	r.dist[r.g.Start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: r.g.Start, dist: 0})
}

// process is the extract-min / relax loop.
func (r *runner) process() *Route {
	var (
		item *cellItem
		best int
		ok   bool
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*cellItem)
		r.expanded++

		best, ok = r.dist[item.cell]
		if !ok || item.dist != best {
			continue // stale entry
		}
		if item.cell == r.g.Goal {
			return &Route{
				Path:     r.reconstruct(),
				Cost:     item.dist,
				Expanded: r.expanded,
				Found:    true,
			}
		}
		r.relax(item.cell, item.dist)
	}

	return &Route{Expanded: r.expanded}
}

// relax tries to improve every passable neighbor of u reached at cost d.
func (r *runner) relax(u Cell, d int) {
	r.nbuf = r.g.Neighbors4(r.nbuf[:0], u)
	var (
		nd  int
		cur int
		ok  bool
	)
	for _, v := range r.nbuf {
		nd = d + r.g.Cost(v)
		cur, ok = r.dist[v]
		if ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.parent[v] = u
		heap.Push(&r.pq, &cellItem{cell: v, dist: nd})
	}
}

// reconstruct walks parent links back from the goal to the start.
func (r *runner) reconstruct() []Cell {
	start, cur := r.g.Start, r.g.Goal
	path := []Cell{cur}
	for cur != start {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cellItem is one (distance, cell) heap entry.
type cellItem struct {
	cell Cell
	dist int
}

// cellPQ is a min-heap of *cellItem ordered by dist, then row, then column,
// so equal-cost entries pop in a fixed order.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}

	return a.cell.Col < b.cell.Col
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
