package staircase

import "fmt"

// Algorithm computes a staircase from a sequence of points.
type Algorithm func(points []Point) []Point

// Named algorithm identifiers, used in logs, metrics labels and reports.
const (
	NameBruteForce = "brute-force"
	NameSortScan   = "sort-scan"
	NameLinearScan = "linear-scan"
)

// Variant describes one of the staircase algorithms.
type Variant struct {
	Name             string
	Compute          Algorithm
	NeedsSortedInput bool
}

// Algorithms returns the three staircase variants in order of decreasing cost.
func Algorithms() []Variant {
	return []Variant{
		{Name: NameBruteForce, Compute: BruteForce},
		{Name: NameSortScan, Compute: SortScan},
		{Name: NameLinearScan, Compute: LinearScan, NeedsSortedInput: true},
	}
}

// Lookup finds a variant by name.
func Lookup(name string) (Variant, error) {
	for _, v := range Algorithms() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown staircase algorithm %q", name)
}
