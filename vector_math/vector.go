package vector_math

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
	"sync"
)

// reprMaxComponents bounds how many components String prints before eliding.
const reprMaxComponents = 6

// Vector is a fixed-dimension tuple of float64 components. A Vector is never
// modified after construction; every operation returns a new one. Use it
// through a pointer, the norm cache must not be copied.
type Vector struct {
	components []float64

	normOnce sync.Once
	norm     float64
}

// New wraps a copy of the given components as a Vector.
func New(components ...float64) *Vector {
	c := make([]float64, len(components))
	copy(c, components)
	return &Vector{components: c}
}

// wrap takes ownership of c without copying it.
func wrap(c []float64) *Vector {
	return &Vector{components: c}
}

// MakeZero returns the zero vector of the given dimension.
func MakeZero(dim int) *Vector {
	return wrap(make([]float64, dim))
}

// MakeUnitary builds a Vector from components and rescales it to unit norm.
func MakeUnitary(components ...float64) (*Vector, error) {
	return Normalize(New(components...))
}

// Dim returns the number of components.
func (v *Vector) Dim() int {
	return len(v.components)
}

// Norm returns the Euclidean length. It is computed on first use and cached
// for the lifetime of v. It is +Inf only when the length itself exceeds the
// float64 range.
func (v *Vector) Norm() float64 {
	v.normOnce.Do(func() {
		sq, overflow := dot(v.components, v.components)
		if overflow {
			v.norm = scaledNorm(v.components)
			return
		}
		v.norm = math.Sqrt(sq)
	})
	return v.norm
}

// At returns the component at position i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.components) {
		return 0, fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, i, len(v.components))
	}
	return v.components[i], nil
}

// All iterates the components in index order.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, c := range v.components {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Components returns a copy of the components.
func (v *Vector) Components() []float64 {
	c := make([]float64, len(v.components))
	copy(c, v.components)
	return c
}

// Neg returns v with every component negated.
func (v *Vector) Neg() *Vector {
	return Scale(v, -1)
}

// Add is the method form of Add.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	return Add(v, w)
}

// Sub is the method form of Subtract.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	return Subtract(v, w)
}

// Dot is the method form of Dot.
func (v *Vector) Dot(w *Vector) (float64, error) {
	return Dot(v, w)
}

// Scale is the method form of Scale for float64 factors.
func (v *Vector) Scale(k float64) *Vector {
	return Scale(v, k)
}

// Equal reports whether v and w are equal under the current Precision.
func (v *Vector) Equal(w *Vector) bool {
	return AlmostEqual(v, w)
}

// String renders at most the first six components rounded to three decimals.
// The output is meant for logs and is not parseable.
func (v *Vector) String() string {
	sb := strings.Builder{}
	sb.WriteString("Vector([")
	for i, c := range v.components {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == reprMaxComponents {
			sb.WriteString("...")
			break
		}
		r := round(c, 3)
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		sb.WriteString(strconv.FormatFloat(r, 'f', -1, 64))
	}
	sb.WriteString("])")
	return sb.String()
}
