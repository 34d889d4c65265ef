package tensor

import (
	"errors"
	"testing"
)

func TestDimsNumElements(t *testing.T) {
	tests := []struct {
		dims     Dims
		expected int
	}{
		{Dims{0, 0, 0}, 0},
		{Dims{1, 1, 1}, 1},
		{Dims{2, 3, 4}, 24},
		{Dims{50, 50, 2}, 5000},
		{Dims{5, 0, 7}, 0}, // Any zero extent empties the tensor
	}

	for _, tt := range tests {
		if got := tt.dims.NumElements(); got != tt.expected {
			t.Errorf("%s.NumElements() = %d, want %d", tt.dims, got, tt.expected)
		}
	}
}

func TestDimsValidate(t *testing.T) {
	valid := []Dims{
		{0, 0, 0},
		{1, 1, 1},
		{2, 3, 4},
	}
	for _, d := range valid {
		if err := d.Validate(); err != nil {
			t.Errorf("Dims%v.Validate() failed: %v", d, err)
		}
	}

	invalid := []Dims{
		{-1, 1, 1},
		{1, -1, 1},
		{1, 1, -1},
	}
	for _, d := range invalid {
		err := d.Validate()
		if err == nil {
			t.Errorf("Dims%v.Validate() should fail", d)
		}
		if !errors.Is(err, ErrNegativeExtent) {
			t.Errorf("Dims%v.Validate() = %v, want ErrNegativeExtent", d, err)
		}
	}
}

func TestDimsStrides(t *testing.T) {
	tests := []struct {
		dims    Dims
		i, j, k int
	}{
		{Dims{2, 3, 4}, 12, 4, 1},
		{Dims{1, 1, 1}, 1, 1, 1},
		{Dims{50, 50, 2}, 100, 2, 1},
	}

	for _, tt := range tests {
		i, j, k := tt.dims.Strides()
		if i != tt.i || j != tt.j || k != tt.k {
			t.Errorf("%s.Strides() = (%d, %d, %d), want (%d, %d, %d)",
				tt.dims, i, j, k, tt.i, tt.j, tt.k)
		}
	}
}

func TestDimsContains(t *testing.T) {
	d := Dims{2, 3, 4}

	tests := []struct {
		i, j, k  int
		expected bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{2, 0, 0, false},
		{0, 3, 0, false},
		{0, 0, 4, false},
		{-1, 0, 0, false},
		{0, -1, 0, false},
		{0, 0, -1, false},
	}

	for _, tt := range tests {
		if got := d.Contains(tt.i, tt.j, tt.k); got != tt.expected {
			t.Errorf("%s.Contains(%d, %d, %d) = %v, want %v",
				d, tt.i, tt.j, tt.k, got, tt.expected)
		}
	}
}

func TestElementTypeSize(t *testing.T) {
	tests := []struct {
		et   ElementType
		size int
	}{
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
	}

	for _, tt := range tests {
		if got := tt.et.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.et, got, tt.size)
		}
	}
}

func TestElementTypeOf(t *testing.T) {
	if et := ElementTypeOf[int8](); et != Int8 {
		t.Errorf("ElementTypeOf[int8]() = %v, want Int8", et)
	}
	if et := ElementTypeOf[uint8](); et != Uint8 {
		t.Errorf("ElementTypeOf[uint8]() = %v, want Uint8", et)
	}
	if et := ElementTypeOf[int16](); et != Int16 {
		t.Errorf("ElementTypeOf[int16]() = %v, want Int16", et)
	}
}
