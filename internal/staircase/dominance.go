package staircase

// Dominates returns true if q dominates p: q is >= p on both coordinates and
// strictly greater on at least one. Coordinate-identical points never
// dominate each other.
func Dominates(q, p Point) bool {
	if q.X < p.X || q.Y < p.Y {
		return false
	}
	return q.X > p.X || q.Y > p.Y
}

// BruteForce returns the Pareto-optimal points of an arbitrary input,
// sorted by Compare. Every other point is checked against each candidate, so
// this is O(n^2).
//
// Each non-dominated input element yields one output element: copies of the
// same coordinates do not dominate each other and all survive together.
func BruteForce(points []Point) []Point {
	frontier := []Point{}
	if len(points) == 0 {
		return frontier
	}

	for i := range points {
		dominated := false
		for j := range points {
			if i == j {
				continue
			}
			if Dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, points[i])
		}
	}

	Sort(frontier)
	return frontier
}
