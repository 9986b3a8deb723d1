package floydwarshall

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathlab/matrix"
)

// Result holds the final distance matrix D and next-hop routing matrix R.
// Both are stored 0-based internally; all accessors take 1-based vertex ids.
// A Result is immutable once Compute returns.
type Result struct {
	n    int
	dist *matrix.Dense // D, n×n
	next []int         // R, row-major n×n, NoHop when undefined
}

// Compute runs Floyd–Warshall with next-hop routing on g.
//
// Initialization:
//   - D[i][i] = 0, D[i][j] = cheapest parallel edge, +Inf otherwise.
//   - R[i][j] = j wherever D[i][j] < +Inf (including i == j), NoHop otherwise.
//
// Core loop, fixed k → i → j order:
//
//	if D[i][k] + D[k][j] < D[i][j] { D[i][j] = D[i][k] + D[k][j]; R[i][j] = R[i][k] }
//
// The i row is skipped entirely when D[i][k] = +Inf.
// Complexity: O(n³) time, O(n²) memory.
func Compute(g *Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N
	dist, err := matrix.NewDistance(n)
	if err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}

	// 1) Direct edges, both directions; cheapest parallel edge wins.
	var (
		e   Edge
		cur float64
	)
	for _, e = range g.Edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("edge %d-%d with n=%d: %w", e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %d-%d weight %v: %w", e.U, e.V, e.Weight, ErrNegativeWeight)
		}
		if cur, err = dist.At(e.U-1, e.V-1); err != nil {
			return nil, fmt.Errorf("floydwarshall: %w", err)
		}
		if e.Weight >= cur {
			continue
		}
		if err = dist.Set(e.U-1, e.V-1, e.Weight); err != nil {
			return nil, fmt.Errorf("floydwarshall: %w", err)
		}
		if err = dist.Set(e.V-1, e.U-1, e.Weight); err != nil {
			return nil, fmt.Errorf("floydwarshall: %w", err)
		}
	}
	d := dist.Raw()

	// 2) Seed next hops: R[i][j] = j for every known pair.
	next := make([]int, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.IsInf(d[i*n+j], 1) {
				next[i*n+j] = NoHop
			} else {
				next[i*n+j] = j
			}
		}
	}

	// 3) Relax through every intermediate k in order; layer k reads layer k-1.
	var (
		baseI, baseK int
		ik, cand     float64
		updates      int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = d[baseI+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k, nothing routes through it
			}
			for j = 0; j < n; j++ {
				cand = ik + d[baseK+j]
				if cand < d[baseI+j] {
					d[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
					updates++
				}
			}
		}
	}
	klog.V(4).Infof("floydwarshall: n=%d edges=%d relaxations=%d", n, len(g.Edges), updates)

	return &Result{n: n, dist: dist, next: next}, nil
}

// N returns the number of vertices.
func (r *Result) N() int { return r.n }

// Distances returns a copy of D (0-based rows and columns).
func (r *Result) Distances() *matrix.Dense { return r.dist.Clone() }

func (r *Result) checkVertex(v int) error {
	if v < 1 || v > r.n {
		return fmt.Errorf("vertex %d with n=%d: %w", v, r.n, ErrVertexOutOfRange)
	}

	return nil
}

// Distance returns D[i][j]; +Inf means unreachable.
func (r *Result) Distance(i, j int) (float64, error) {
	if err := r.checkVertex(i); err != nil {
		return 0, err
	}
	if err := r.checkVertex(j); err != nil {
		return 0, err
	}

	return r.dist.At(i-1, j-1)
}

// NextHop returns R[i][j] as a 1-based vertex, or NoHop if j is unreachable from i.
func (r *Result) NextHop(i, j int) (int, error) {
	if err := r.checkVertex(i); err != nil {
		return NoHop, err
	}
	if err := r.checkVertex(j); err != nil {
		return NoHop, err
	}
	h := r.next[(i-1)*r.n+(j-1)]
	if h == NoHop {
		return NoHop, nil
	}

	return h + 1, nil
}

// Path reconstructs the shortest path from i to j by repeated next-hop lookup.
// It returns an empty path when j is unreachable from i, and [i] when i == j.
// The walk is bounded by n² steps; exceeding it yields ErrInconsistentRouting.
func (r *Result) Path(i, j int) ([]int, error) {
	if err := r.checkVertex(i); err != nil {
		return nil, err
	}
	if err := r.checkVertex(j); err != nil {
		return nil, err
	}

	n := r.n
	cur, dst := i-1, j-1
	if r.next[cur*n+dst] == NoHop {
		return nil, nil
	}

	path := []int{i}
	limit := n * n
	for steps := 0; cur != dst; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("path %d->%d: %w", i, j, ErrInconsistentRouting)
		}
		cur = r.next[cur*n+dst]
		if cur == NoHop {
			return nil, fmt.Errorf("path %d->%d: %w", i, j, ErrInconsistentRouting)
		}
		path = append(path, cur+1)
	}

	return path, nil
}
