package staircase

import "math"

// SortScan returns the Pareto-optimal points of an arbitrary input in
// ascending X order. It sorts a copy of the input by Compare and then runs the
// right-to-left scan, so it is O(n log n).
//
// Coordinate-identical points sit next to each other after sorting and only
// the first one reached by the scan survives.
func SortScan(points []Point) []Point {
	if len(points) == 0 {
		return []Point{}
	}
	return scan(Sorted(points))
}

// LinearScan returns the Pareto-optimal points of input that is already
// ordered by Compare. Sorting is the caller's job; on unsorted input the
// result is undefined. O(n).
func LinearScan(sorted []Point) []Point {
	if len(sorted) == 0 {
		return []Point{}
	}
	return scan(sorted)
}

// scan walks sorted points from the highest X down, keeping every point whose
// Y is strictly above the running maximum. Kept points are found in
// descending X order and are pushed on a stack so popping yields ascending X.
//
// Within a column of equal X the walk meets the lowest Y first, so a higher Y
// in the same column replaces the point on top of the stack.
//
// maxY starts at -Inf, so a point with Y == -Inf is never kept, while
// BruteForce keeps it when nothing dominates it.
func scan(sorted []Point) []Point {
	var kept stack
	maxY := math.Inf(-1)

	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		if p.Y > maxY {
			if top, ok := kept.peek(); ok && top.X == p.X {
				kept.pop()
			}
			kept.push(p)
			maxY = p.Y
		}
	}

	return kept.drain()
}

// stack is the LIFO staging area for the scan.
type stack struct {
	items []Point
}

func (s *stack) push(p Point) {
	s.items = append(s.items, p)
}

func (s *stack) pop() (Point, bool) {
	if len(s.items) == 0 {
		return Point{}, false
	}
	p := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return p, true
}

func (s *stack) peek() (Point, bool) {
	if len(s.items) == 0 {
		return Point{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack) len() int { return len(s.items) }

// drain pops every item into a new slice.
func (s *stack) drain() []Point {
	out := make([]Point, 0, s.len())
	for {
		p, ok := s.pop()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
