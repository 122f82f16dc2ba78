package vertex

import (
	"errors"
	"testing"

	vk "github.com/goki/vulkan"

	vm "lac/vector_math"
)

func TestFormat(t *testing.T) {
	want := map[int]vk.Format{
		1: vk.FormatR32Sfloat,
		2: vk.FormatR32g32Sfloat,
		3: vk.FormatR32g32b32Sfloat,
		4: vk.FormatR32g32b32a32Sfloat,
	}
	for dim, f := range want {
		got, err := Format(dim)
		if err != nil {
			t.Errorf("Error getting format for dim %d: %s", dim, err)
		}
		if got != f {
			t.Errorf("dim %d should map to format %d but was %d", dim, f, got)
		}
	}
	for _, dim := range []int{-1, 0, 5} {
		if _, err := Format(dim); !errors.Is(err, ErrAttributeDim) {
			t.Errorf("dim %d should fail with ErrAttributeDim, got %v", dim, err)
		}
	}
}

// TestPositionColorLayout describes the common vertex of a position and a color
func TestPositionColorLayout(t *testing.T) {
	l, err := NewLayout(0, 3, 3)
	if err != nil {
		t.Fatalf("Error creating layout: %s", err)
	}
	b := l.BindingDescription()
	if b.Stride != 24 || b.Binding != 0 || b.InputRate != vk.VertexInputRateVertex {
		t.Errorf("unexpected binding description: %+v", b)
	}
	attrs := l.AttributeDescriptions()
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	for i, off := range []uint32{0, 12} {
		if attrs[i].Location != uint32(i) || attrs[i].Offset != off || attrs[i].Format != vk.FormatR32g32b32Sfloat {
			t.Errorf("unexpected attribute %d: %+v", i, attrs[i])
		}
	}

	if _, err := NewLayout(0, 3, 7); !errors.Is(err, ErrAttributeDim) {
		t.Errorf("layout with a 7D attribute should fail with ErrAttributeDim, got %v", err)
	}
}

func TestPack(t *testing.T) {
	l, err := NewLayout(1, 3, 2)
	if err != nil {
		t.Fatalf("Error creating layout: %s", err)
	}
	buf, err := l.Pack([][]*vm.Vector{
		{vm.New(1, 2, 3), vm.New(0.5, 0.25)},
		{vm.New(-1, -2, -3), vm.New(1, 0)},
	})
	if err != nil {
		t.Fatalf("Error packing vertices: %s", err)
	}
	want := []float32{1, 2, 3, 0.5, 0.25, -1, -2, -3, 1, 0}
	if len(buf) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(buf))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("float %d should be %v but was %v", i, want[i], buf[i])
		}
	}

	_, err = l.Pack([][]*vm.Vector{{vm.New(1, 2, 3), vm.New(1, 2, 3)}})
	if !errors.Is(err, vm.ErrDimensionMismatch) {
		t.Errorf("wrong attribute dimension should fail with ErrDimensionMismatch, got %v", err)
	}
	if _, err := l.Pack([][]*vm.Vector{{vm.New(1, 2, 3)}}); err == nil {
		t.Errorf("missing attribute should fail")
	}
}
