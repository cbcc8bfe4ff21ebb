package bench

import (
	"fmt"

	"github.com/MikeSquared-Agency/Staircase/internal/complexity"
	"github.com/MikeSquared-Agency/Staircase/internal/staircase"
)

// Experiment times one staircase algorithm over a list of input sizes.
type Experiment struct {
	Class   complexity.Class
	Variant staircase.Variant
	Sizes   []int
	// PreSort sorts each generated input before timing starts.
	PreSort bool
}

func (e Experiment) Name() string {
	return e.Variant.Name
}

// DefaultSizes returns the input sizes used for each class. Quadratic sizes
// stay small so brute force finishes; linear sizes are large so timing is
// stable.
func DefaultSizes(c complexity.Class) []int {
	switch c {
	case complexity.Quadratic:
		return []int{20, 40, 50, 80, 100, 200, 500, 1000, 2000, 5000, 8000, 10000, 15000, 20000}
	case complexity.Linearithmic:
		return []int{5000, 10000, 15000, 30000, 50000, 100000, 200000, 300000, 400000, 500000, 600000}
	case complexity.Linear:
		return []int{5000, 8000, 10000, 20000, 50000, 100000, 200000, 300000, 500000, 750000, 1000000}
	default:
		return nil
	}
}

// NewExperiment pairs a complexity class with the algorithm that has that
// cost. The linear scan gets pre-sorted input, so sorting is not timed.
func NewExperiment(c complexity.Class, sizes []int) (Experiment, error) {
	var name string
	switch c {
	case complexity.Quadratic:
		name = staircase.NameBruteForce
	case complexity.Linearithmic:
		name = staircase.NameSortScan
	case complexity.Linear:
		name = staircase.NameLinearScan
	default:
		return Experiment{}, fmt.Errorf("no staircase algorithm for %s", c)
	}

	v, err := staircase.Lookup(name)
	if err != nil {
		return Experiment{}, err
	}
	for _, n := range sizes {
		if n <= 0 {
			return Experiment{}, fmt.Errorf("%s: input size must be positive, got %d", c, n)
		}
	}
	return Experiment{
		Class:   c,
		Variant: v,
		Sizes:   sizes,
		PreSort: v.NeedsSortedInput,
	}, nil
}

// DefaultPlan returns one experiment per class with the default sizes.
func DefaultPlan() ([]Experiment, error) {
	var plan []Experiment
	for _, c := range complexity.Classes() {
		exp, err := NewExperiment(c, DefaultSizes(c))
		if err != nil {
			return nil, err
		}
		plan = append(plan, exp)
	}
	return plan, nil
}
