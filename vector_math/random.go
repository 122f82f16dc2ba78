package vector_math

import "math/rand/v2"

// Source yields independent uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource is used by MakeRandom. It draws from the math/rand/v2
// top-level generator, which is safe for concurrent use.
var DefaultSource Source = globalSource{}

// MakeRandom returns a vector of dim components drawn uniformly from [0, 1).
func MakeRandom(dim int) *Vector {
	return MakeRandomFrom(DefaultSource, dim)
}

// MakeRandomFrom is MakeRandom drawing from src, one value per component.
func MakeRandomFrom(src Source, dim int) *Vector {
	c := make([]float64, dim)
	for i := range c {
		c[i] = src.Float64()
	}
	return wrap(c)
}
