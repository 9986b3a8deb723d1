package bellmanford

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// BellmanFord computes shortest distances from Options.Source to every vertex.
//
// dist[source] = 0, every other dist = Inf, every predecessor = NoPredecessor.
// Each pass relaxes all edges (u, v, w):
//
//	if reached[u] && (!reached[v] || dist[v] > dist[u] + w) { dist[v] = dist[u] + w; pred[v] = u }
//
// At most n−1 passes run; a pass with zero updates ends the loop early.
// A sum that leaves the int64 range aborts the run with ErrDistanceOverflow.
func BellmanFord(g *Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.N {
		return nil, fmt.Errorf("source %d with n=%d: %w", cfg.Source, g.N, ErrSourceOutOfRange)
	}
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= g.N || e.To < 0 || e.To >= g.N {
			return nil, fmt.Errorf("edge %d->%d with n=%d: %w", e.From, e.To, g.N, ErrVertexOutOfRange)
		}
	}

	dist := make([]int64, g.N)
	pred := make([]int, g.N)
	reached := make([]bool, g.N)
	for i := range dist {
		dist[i] = Inf
		pred[i] = NoPredecessor
	}
	dist[cfg.Source] = 0
	reached[cfg.Source] = true

	res := &Result{Source: cfg.Source, Dist: dist, Pred: pred, Reached: reached}
	var (
		e       Edge
		cand    int64
		updated bool
		err     error
	)
	for pass := 0; pass < g.N-1; pass++ {
		updated = false
		for _, e = range g.Edges {
			if !reached[e.From] {
				continue
			}
			if cand, err = addDistance(dist[e.From], e.Weight); err != nil {
				return nil, fmt.Errorf("pass %d, edge %d->%d: %w", pass+1, e.From, e.To, err)
			}
			if !reached[e.To] || dist[e.To] > cand {
				dist[e.To] = cand
				pred[e.To] = e.From
				reached[e.To] = true
				updated = true
			}
		}
		res.Passes++
		klog.V(5).Infof("bellmanford: pass %d updated=%t", res.Passes, updated)
		if !updated {
			res.Converged = true
			break
		}
	}
	if g.N == 1 {
		res.Converged = true
	}
	klog.V(4).Infof("bellmanford: source=%d passes=%d converged=%t", cfg.Source, res.Passes, res.Converged)

	return res, nil
}

// addDistance returns d + w or ErrDistanceOverflow when the sum leaves int64.
func addDistance(d, w int64) (int64, error) {
	if (w > 0 && d > math.MaxInt64-w) || (w < 0 && d < math.MinInt64-w) {
		return 0, fmt.Errorf("%d + %d: %w", d, w, ErrDistanceOverflow)
	}

	return d + w, nil
}

// Distance returns dist[v] and whether v was reached at all.
func (r *Result) Distance(v int) (int64, bool) {
	if v < 0 || v >= len(r.Reached) || !r.Reached[v] {
		return Inf, false
	}

	return r.Dist[v], true
}

// PathTo walks the predecessor chain back from dest and returns the path
// source → … → dest. It returns nil when the chain does not end at the source.
// The walk visits at most n vertices.
func (r *Result) PathTo(dest int) []int {
	n := len(r.Pred)
	if dest < 0 || dest >= n {
		return nil
	}

	var path []int
	v := dest
	for len(path) < n && v != NoPredecessor {
		path = append(path, v)
		if v == r.Source {
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		v = r.Pred[v]
	}

	return nil
}
