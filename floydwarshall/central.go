package floydwarshall

// Central returns the vertex whose row of D has the smallest sum, together
// with that sum. Ties go to the lowest vertex id. A vertex that cannot reach
// everyone has an infinite sum.
func Central(r *Result) (vertex int, sum float64) {
	var s float64
	for i := 0; i < r.dist.Rows(); i++ {
		s, _ = r.dist.RowSum(i) // i is always in range
		if i == 0 || s < sum {
			vertex, sum = i+1, s
		}
	}

	return vertex, sum
}

// Farthest returns the vertex with the largest distance from v (v excluded)
// and that distance. ok is false when the graph has a single vertex.
// Ties go to the lowest vertex id; unreachable vertices count as +Inf.
func Farthest(r *Result, v int) (vertex int, dist float64, ok bool) {
	if v < 1 || v > r.n || r.dist.Cols() < 2 {
		return 0, 0, false
	}
	row, err := r.dist.Row(v - 1)
	if err != nil {
		return 0, 0, false
	}
	for j, dj := range row {
		if j == v-1 {
			continue
		}
		if !ok || dj > dist {
			vertex, dist, ok = j+1, dj, true
		}
	}

	return vertex, dist, ok
}
