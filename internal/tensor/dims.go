package tensor

import "fmt"

// Dims describes the extents of a third-order flat tensor.
type Dims struct {
	Width  int // first-axis extent
	Height int // second-axis extent
	Depth  int // third-axis extent, fastest-varying in memory
}

// Validate checks that all extents are non-negative.
func (d Dims) Validate() error {
	if d.Width < 0 || d.Height < 0 || d.Depth < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeExtent, d)
	}
	return nil
}

// NumElements returns the total number of addressable elements.
func (d Dims) NumElements() int {
	return d.Width * d.Height * d.Depth
}

// Strides returns the row-major strides of the three axes.
// The depth axis varies fastest: stride 1, then depth, then depth*height.
func (d Dims) Strides() (i, j, k int) {
	return d.Depth * d.Height, d.Depth, 1
}

// Contains reports whether (i, j, k) addresses an element within the extents.
func (d Dims) Contains(i, j, k int) bool {
	return i >= 0 && i < d.Width &&
		j >= 0 && j < d.Height &&
		k >= 0 && k < d.Depth
}

// String returns the extents in WxHxD form.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Depth)
}
