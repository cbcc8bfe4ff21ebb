package staircase

import (
	"cmp"
	"slices"
	"strconv"
)

// Point is an immutable 2D coordinate. Two points are equal when both
// coordinates are equal, so Point can be compared with == and used as a map key.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Compare implements the ordering key used for sorting: X ascending, and on
// equal X, Y descending. It is a total order and is not the dominance relation.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(b.Y, a.Y)
}

// Less reports whether a sorts before b under Compare.
func Less(a, b Point) bool {
	return Compare(a, b) < 0
}

// Sort orders points in place by Compare.
func Sort(points []Point) {
	slices.SortStableFunc(points, Compare)
}

// Sorted returns a sorted copy of points. The input is left untouched.
func Sorted(points []Point) []Point {
	out := slices.Clone(points)
	if out == nil {
		out = []Point{}
	}
	Sort(out)
	return out
}

// IsSorted reports whether points are ordered by Compare. It is the
// precondition of LinearScan and is never checked by the algorithms.
func IsSorted(points []Point) bool {
	return slices.IsSortedFunc(points, Compare)
}
