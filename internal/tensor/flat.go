package tensor

import "fmt"

// Flat is a third-order tensor backed by a single contiguous slice.
//
// Multi-dimensional indices linearize in row-major order with the depth axis
// varying fastest:
//
//	offset(i, j, k) = k + j*depth + i*depth*height
//
// The linearized layout keeps neighboring depth entries adjacent in memory,
// which makes a "first-i-then-j-then-k" nested loop the most cache coherent
// way to traverse the tensor. Random access is O(1).
//
// At and Set are the unchecked fast path: they perform no bounds checking on
// the indices. Callers that cannot guarantee valid coordinates must use
// Lookup and Store instead, which validate bounds and return ErrOutOfRange.
type Flat[T Element] struct {
	dims Dims
	data []T
}

// NewFlat allocates a flat tensor with the given extents.
// All elements start at the zero value of T.
func NewFlat[T Element](width, height, depth int) (*Flat[T], error) {
	dims := Dims{Width: width, Height: height, Depth: depth}
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extents: %w", err)
	}

	return &Flat[T]{
		dims: dims,
		data: make([]T, dims.NumElements()),
	}, nil
}

// Reset replaces the tensor's extents and storage. The previous storage is
// released to the garbage collector, so repeated resets do not accumulate
// memory.
func (f *Flat[T]) Reset(width, height, depth int) error {
	dims := Dims{Width: width, Height: height, Depth: depth}
	if err := dims.Validate(); err != nil {
		return fmt.Errorf("invalid extents: %w", err)
	}

	f.dims = dims
	f.data = make([]T, dims.NumElements())
	return nil
}

// Offset computes the linear offset of (i, j, k).
func (f *Flat[T]) Offset(i, j, k int) int {
	return k + j*f.dims.Depth + i*f.dims.Depth*f.dims.Height
}

// At returns the element at (i, j, k).
// WARNING: no bounds checking on the indices. See Lookup for the checked variant.
func (f *Flat[T]) At(i, j, k int) T {
	return f.data[f.Offset(i, j, k)]
}

// Set stores v at (i, j, k).
// WARNING: no bounds checking on the indices. See Store for the checked variant.
func (f *Flat[T]) Set(i, j, k int, v T) {
	f.data[f.Offset(i, j, k)] = v
}

// Lookup returns the element at (i, j, k), validating bounds first.
func (f *Flat[T]) Lookup(i, j, k int) (T, error) {
	if !f.dims.Contains(i, j, k) {
		var zero T
		return zero, fmt.Errorf("%w: (%d, %d, %d) not in %s", ErrOutOfRange, i, j, k, f.dims)
	}
	return f.At(i, j, k), nil
}

// Store writes v at (i, j, k), validating bounds first.
func (f *Flat[T]) Store(i, j, k int, v T) error {
	if !f.dims.Contains(i, j, k) {
		return fmt.Errorf("%w: (%d, %d, %d) not in %s", ErrOutOfRange, i, j, k, f.dims)
	}
	f.Set(i, j, k, v)
	return nil
}

// InBounds reports whether (i, j, k) addresses an element of the tensor.
func (f *Flat[T]) InBounds(i, j, k int) bool {
	return f.dims.Contains(i, j, k)
}

// Dims returns the tensor's extents.
func (f *Flat[T]) Dims() Dims {
	return f.dims
}

// Len returns the total number of addressable elements.
func (f *Flat[T]) Len() int {
	return len(f.data)
}

// ElementType returns runtime type information for the element type.
func (f *Flat[T]) ElementType() ElementType {
	return ElementTypeOf[T]()
}

// Data returns the underlying linearized storage.
// WARNING: direct access to the backing slice. Use with caution.
func (f *Flat[T]) Data() []T {
	return f.data
}

// Fill sets every element to v.
func (f *Flat[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns a deep copy of the tensor.
func (f *Flat[T]) Clone() *Flat[T] {
	data := make([]T, len(f.data))
	copy(data, f.data)

	return &Flat[T]{
		dims: f.dims,
		data: data,
	}
}
