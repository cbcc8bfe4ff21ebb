package pointgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MikeSquared-Agency/Staircase/internal/staircase"
)

// ErrInvalidRange is returned when a Range has Max <= Min.
var ErrInvalidRange = errors.New("invalid coordinate range")

// Range bounds generated coordinates to [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultRange matches the benchmark's historical [0, 1000) square.
func DefaultRange() Range {
	return Range{Min: 0, Max: 1000}
}

func (r Range) Validate() error {
	if !(r.Max > r.Min) {
		return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Generator produces uniformly distributed points. Each Generator owns its
// random source; it is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	bounds Range
}

// New creates a Generator. A zero seed seeds from the clock, any other seed
// gives a reproducible sequence.
func New(seed uint64, r Range) (*Generator, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bounds: r,
	}, nil
}

// Generate returns n random points. n <= 0 yields an empty slice.
func (g *Generator) Generate(n int) []staircase.Point {
	if n <= 0 {
		return []staircase.Point{}
	}
	points := make([]staircase.Point, n)
	for i := range points {
		points[i] = staircase.Pt(g.coord(), g.coord())
	}
	return points
}

func (g *Generator) coord() float64 {
	return g.bounds.Min + g.rng.Float64()*(g.bounds.Max-g.bounds.Min)
}
