package complexity

import "fmt"

// Constants are the milliseconds-per-unit factors that scale each raw growth
// function onto measured time. They are fixed inputs, measured once as
// C = experimental_ms / raw at a reference n.
type Constants struct {
	Quadratic    float64 `yaml:"quadratic" json:"quadratic"`
	Linearithmic float64 `yaml:"linearithmic" json:"linearithmic"`
	Linear       float64 `yaml:"linear" json:"linear"`
}

// DefaultConstants returns the reference measurements:
//
//	n^2:     0.9213 ms  / 4.0e8     at n=20000
//	n log n: 75.6707 ms / 1.15168e7 at n=600000
//	n:       3.7607 ms  / 1.0e6     at n=1000000
func DefaultConstants() Constants {
	return Constants{
		Quadratic:    2.30325e-9,
		Linearithmic: 6.5705e-6,
		Linear:       3.76070e-6,
	}
}

// For returns the constant for c, or 0 for an unknown class.
func (k Constants) For(c Class) float64 {
	switch c {
	case Quadratic:
		return k.Quadratic
	case Linearithmic:
		return k.Linearithmic
	case Linear:
		return k.Linear
	default:
		return 0
	}
}

// Validate checks that every constant is positive.
func (k Constants) Validate() error {
	for _, c := range Classes() {
		if v := k.For(c); !(v > 0) {
			return fmt.Errorf("scaling constant for %s must be positive, got %g", c, v)
		}
	}
	return nil
}
