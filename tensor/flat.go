// Copyright 2026 The TensorGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for supported flat tensor element types.
// Supported types: int8, uint8, int16.
type Element = tensor.Element

// ElementType represents runtime type information for flat tensors.
type ElementType = tensor.ElementType

// Element type constants.
const (
	Int8  ElementType = tensor.Int8
	Uint8 ElementType = tensor.Uint8
	Int16 ElementType = tensor.Int16
)

// Dims describes the extents of a third-order flat tensor.
type Dims = tensor.Dims

// Flat is a third-order tensor backed by a single contiguous slice.
//
// Example:
//
//	f, err := tensor.NewFlat[int8](2, 3, 4)
//	f.Set(1, 2, 3, 7)
//	v := f.At(1, 2, 3)
type Flat[T Element] = tensor.Flat[T]

// Common errors.
var (
	ErrNegativeExtent = tensor.ErrNegativeExtent
	ErrOutOfRange     = tensor.ErrOutOfRange
)

// NewFlat allocates a flat tensor with the given extents.
// All elements start at the zero value of T.
//
// Example:
//
//	f, err := tensor.NewFlat[int8](2, 3, 4)
func NewFlat[T Element](width, height, depth int) (*Flat[T], error) {
	return tensor.NewFlat[T](width, height, depth)
}

// ElementTypeOf infers the ElementType for a generic element type T.
func ElementTypeOf[T Element]() ElementType {
	return tensor.ElementTypeOf[T]()
}
