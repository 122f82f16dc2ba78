package vector_math

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is any numeric type a Vector can be scaled by.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Scale multiplies every component of v by k.
func Scale[T Scalar](v *Vector, k T) *Vector {
	f := float64(k)
	c := make([]float64, len(v.components))
	for i := range v.components {
		c[i] = f * v.components[i]
	}
	return wrap(c)
}

// Add returns the component-wise sum of two vectors of the same dimension.
func Add(v1 *Vector, v2 *Vector) (*Vector, error) {
	if err := sameDim(v1, v2); err != nil {
		return nil, err
	}
	c := make([]float64, len(v1.components))
	for i := range c {
		c[i] = v1.components[i] + v2.components[i]
	}
	return wrap(c), nil
}

// Subtract returns v1 - v2.
func Subtract(v1 *Vector, v2 *Vector) (*Vector, error) {
	return Add(v1, Scale(v2, -1))
}

// Dot computes the dot product of two vectors of the same dimension. The
// products are summed exactly and rounded once, so the result does not depend
// on the order of the components.
func Dot(v1 *Vector, v2 *Vector) (float64, error) {
	if err := sameDim(v1, v2); err != nil {
		return 0, err
	}
	d, overflow := dot(v1.components, v2.components)
	if overflow {
		return d, fmt.Errorf("%w: dot product of %s and %s", ErrOverflow, v1, v2)
	}
	return d, nil
}

// dot also reports whether a product or partial sum of finite values overflowed.
func dot(a, b []float64) (float64, bool) {
	var acc accumulator
	overflow := false
	for i := range a {
		p := a[i] * b[i]
		if math.IsInf(p, 0) && !math.IsInf(a[i], 0) && !math.IsInf(b[i], 0) {
			overflow = true
		}
		acc.Add(p)
	}
	return acc.Sum(), overflow || acc.overflow
}

// scaledNorm computes the norm with every component divided by the largest
// magnitude, so squares stay within range.
func scaledNorm(c []float64) float64 {
	m := 0.0
	for _, x := range c {
		m = math.Max(m, math.Abs(x))
	}
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	var acc accumulator
	for _, x := range c {
		acc.Add((x / m) * (x / m))
	}
	return m * math.Sqrt(acc.Sum())
}

// AngleBetween returns the angle between v1 and v2 in radians. The cosine is
// clamped into [-1, 1] before acos so rounding drift on (anti)parallel vectors
// yields 0 or Pi instead of NaN.
func AngleBetween(v1 *Vector, v2 *Vector) (float64, error) {
	d, err := Dot(v1, v2)
	if err != nil {
		return 0, err
	}
	n1, n2 := v1.Norm(), v2.Norm()
	if n1 == 0 || n2 == 0 {
		return 0, fmt.Errorf("%w: cannot compute angle between %s and %s", ErrZeroNorm, v1, v2)
	}
	n := n1 * n2
	if !finite(n) {
		return 0, fmt.Errorf("%w: norm product of %s and %s", ErrOverflow, v1, v2)
	}
	cos := d / n
	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// Cross computes the cross product of two 3-dimensional vectors.
func Cross(v1 *Vector, v2 *Vector) (*Vector, error) {
	for _, v := range []*Vector{v1, v2} {
		if v.Dim() != 3 {
			return nil, fmt.Errorf("%w: expected 3-dimensional vector, got %d-dimensional", ErrDimensionMismatch, v.Dim())
		}
	}
	a, b := v1.components, v2.components
	return wrap([]float64{
		(a[1] * b[2]) - (a[2] * b[1]),
		(a[2] * b[0]) - (a[0] * b[2]),
		(a[0] * b[1]) - (a[1] * b[0]),
	}), nil
}

// Normalize returns the unit vector pointing in the direction of v.
func Normalize(v *Vector) (*Vector, error) {
	n := v.Norm()
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot normalize %s", ErrZeroNorm, v)
	}
	if !finite(n) {
		return nil, fmt.Errorf("%w: norm of %s is %v", ErrOverflow, v, n)
	}
	return Scale(v, 1/n), nil
}

// Project returns the scalar projection of v onto the direction of d.
func Project(v *Vector, d *Vector) (float64, error) {
	if err := sameDim(v, d); err != nil {
		return 0, err
	}
	u, err := Normalize(d)
	if err != nil {
		return 0, fmt.Errorf("project onto direction: %w", err)
	}
	return Dot(v, u)
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func sameDim(v1 *Vector, v2 *Vector) error {
	if v1.Dim() != v2.Dim() {
		return fmt.Errorf("%w: got %d and %d", ErrDimensionMismatch, v1.Dim(), v2.Dim())
	}
	return nil
}
