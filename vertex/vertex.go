// Package vertex describes interleaved float32 vertex buffers whose attributes
// are Vectors, and produces the matching Vulkan input descriptions.
package vertex

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"

	vm "lac/vector_math"
)

// ErrAttributeDim is returned for attributes a 32 bit float format cannot hold.
var ErrAttributeDim = errors.New("vertex attribute dimension must be between 1 and 4")

var formats = [...]vk.Format{
	1: vk.FormatR32Sfloat,
	2: vk.FormatR32g32Sfloat,
	3: vk.FormatR32g32b32Sfloat,
	4: vk.FormatR32g32b32a32Sfloat,
}

// Format returns the 32 bit float vertex attribute format for a vector of dim components.
func Format(dim int) (vk.Format, error) {
	if dim < 1 || dim >= len(formats) {
		return vk.FormatUndefined, fmt.Errorf("%w: got %d", ErrAttributeDim, dim)
	}
	return formats[dim], nil
}

// Layout is the shape of one interleaved vertex: an ordered list of
// attributes, each a Vector of fixed dimension.
type Layout struct {
	Binding uint32
	dims    []int
	formats []vk.Format
}

// NewLayout builds a layout for vertices made of attributes of the given dimensions.
// Attribute i is bound to shader location i.
func NewLayout(binding uint32, dims ...int) (*Layout, error) {
	l := &Layout{
		Binding: binding,
		dims:    make([]int, len(dims)),
		formats: make([]vk.Format, len(dims)),
	}
	for i, d := range dims {
		f, err := Format(d)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		l.dims[i] = d
		l.formats[i] = f
	}
	return l, nil
}

// Floats is the number of float32 values per vertex.
func (l *Layout) Floats() int {
	n := 0
	for _, d := range l.dims {
		n += d
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (l *Layout) Stride() uint32 {
	return uint32(l.Floats()) * uint32(unsafe.Sizeof(float32(0)))
}

// BindingDescription describes one vertex buffer binding of the layout's stride.
func (l *Layout) BindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   l.Binding,
		Stride:    l.Stride(),
		InputRate: vk.VertexInputRateVertex,
	}
}

// AttributeDescriptions returns one attribute per vector, at consecutive
// locations and tightly packed offsets.
func (l *Layout) AttributeDescriptions() []vk.VertexInputAttributeDescription {
	desc := make([]vk.VertexInputAttributeDescription, len(l.dims))
	offset := uint32(0)
	for i, d := range l.dims {
		desc[i] = vk.VertexInputAttributeDescription{
			Location: uint32(i),
			Binding:  l.Binding,
			Format:   l.formats[i],
			Offset:   offset,
		}
		offset += uint32(d) * uint32(unsafe.Sizeof(float32(0)))
	}
	return desc
}

// Pack interleaves the attributes of every vertex into one float32 buffer.
// Each vertex must hold one Vector per attribute with the layout's dimension.
func (l *Layout) Pack(vertices [][]*vm.Vector) ([]float32, error) {
	buf := make([]float32, 0, len(vertices)*l.Floats())
	for vi, attrs := range vertices {
		if len(attrs) != len(l.dims) {
			return nil, fmt.Errorf("vertex %d: expected %d attributes, got %d", vi, len(l.dims), len(attrs))
		}
		for ai, a := range attrs {
			if a.Dim() != l.dims[ai] {
				return nil, fmt.Errorf(
					"vertex %d attribute %d: %w: expected %d, got %d",
					vi, ai, vm.ErrDimensionMismatch, l.dims[ai], a.Dim(),
				)
			}
			buf = a.AppendFloat32(buf)
		}
	}
	return buf, nil
}
