package ecoview

// reconstructPath walks parent links back from target and returns the route in
// start→target order. It returns an empty PathResult when target was never
// reached, and a single-element path when start == target.
func reconstructPath(parent []int, cols int, start, target Coordinate) PathResult {
	startIdx := start.Row*cols + start.Col
	idx := target.Row*cols + target.Col
	if idx == startIdx {
		return PathResult{start}
	}
	if parent[idx] < 0 {
		return PathResult{}
	}

	var reversed PathResult
	for idx != startIdx {
		reversed = append(reversed, Coordinate{Row: idx / cols, Col: idx % cols})
		idx = parent[idx]
		if idx < 0 {
			// Broken chain; cannot happen for parents produced by Solve.
			return PathResult{}
		}
	}
	reversed = append(reversed, start)

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
