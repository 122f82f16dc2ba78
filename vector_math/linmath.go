package vector_math

import (
	"fmt"

	"github.com/xlab/linmath"
)

// FromVec3 converts a linmath vector into a 3-dimensional Vector.
func FromVec3(v linmath.Vec3) *Vector {
	return New(float64(v[0]), float64(v[1]), float64(v[2]))
}

// FromVec4 converts a linmath vector into a 4-dimensional Vector.
func FromVec4(v linmath.Vec4) *Vector {
	return New(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

// Vec3 narrows v to float32 for use with linmath. v must be 3-dimensional.
func (v *Vector) Vec3() (linmath.Vec3, error) {
	var r linmath.Vec3
	if err := v.fill(r[:]); err != nil {
		return r, err
	}
	return r, nil
}

// Vec4 narrows v to float32 for use with linmath. v must be 4-dimensional.
func (v *Vector) Vec4() (linmath.Vec4, error) {
	var r linmath.Vec4
	if err := v.fill(r[:]); err != nil {
		return r, err
	}
	return r, nil
}

// fill narrows the components into dst, which must have length v.Dim().
func (v *Vector) fill(dst []float32) error {
	if len(dst) != len(v.components) {
		return fmt.Errorf("%w: expected %d-dimensional vector, got %d-dimensional", ErrDimensionMismatch, len(dst), len(v.components))
	}
	for i, c := range v.components {
		dst[i] = float32(c)
	}
	return nil
}

// AppendFloat32 appends the components of v, narrowed to float32, to dst.
func (v *Vector) AppendFloat32(dst []float32) []float32 {
	for _, c := range v.components {
		dst = append(dst, float32(c))
	}
	return dst
}
