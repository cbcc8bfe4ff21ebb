package complexity

import (
	"fmt"
	"math"
	"strings"
)

// Class is an asymptotic cost class.
type Class int

const (
	Quadratic Class = iota
	Linearithmic
	Linear
)

// Classes lists every class in order of decreasing cost.
func Classes() []Class {
	return []Class{Quadratic, Linearithmic, Linear}
}

func (c Class) String() string {
	switch c {
	case Quadratic:
		return "O(n^2)"
	case Linearithmic:
		return "O(n log n)"
	case Linear:
		return "O(n)"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Key is the short identifier used in config files and flags.
func (c Class) Key() string {
	switch c {
	case Quadratic:
		return "quadratic"
	case Linearithmic:
		return "linearithmic"
	case Linear:
		return "linear"
	default:
		return ""
	}
}

// ParseClass accepts either the short key ("linear") or the big-O notation
// ("O(n)"), case-insensitively.
func ParseClass(s string) (Class, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Classes() {
		if norm == c.Key() || norm == strings.ToLower(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown complexity class %q", s)
}

// Raw evaluates the unitless growth function of c at n.
func Raw(c Class, n int) float64 {
	fn := float64(n)
	switch c {
	case Quadratic:
		return fn * fn
	case Linearithmic:
		if n <= 1 {
			return 0
		}
		return fn * math.Log2(fn)
	case Linear:
		return fn
	default:
		return math.NaN()
	}
}

// Scaled converts the raw growth value into milliseconds using the fixed
// constant for c.
func Scaled(c Class, n int, k Constants) float64 {
	return k.For(c) * Raw(c, n)
}
