// Copyright 2026 The TensorGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides flat third-order tensor storage for the TensorGrid
// library.
//
// # Overview
//
// A Flat tensor stores a width x height x depth grid of fixed-width elements
// in one contiguous slice. Indices linearize in row-major order with the
// depth axis varying fastest:
//
//	offset(i, j, k) = k + j*depth + i*depth*height
//
// The linearized layout gives O(1) random access and keeps traversals cache
// coherent, which is the reason grid-heavy callers (game boards, voxel data,
// byte payloads crossing a foreign-function boundary) prefer it over nested
// slices.
//
// # Basic Usage
//
//	import "github.com/tensorgrid-io/tensorgrid/tensor"
//
//	func main() {
//	    f, err := tensor.NewFlat[int8](2, 3, 4)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    f.Set(1, 2, 3, 7)     // unchecked fast path
//	    v := f.At(1, 2, 3)    // v == 7
//
//	    _, err = f.Lookup(5, 0, 0) // checked path: ErrOutOfRange
//	}
//
// # Checked and Unchecked Access
//
// At and Set perform no bounds checking; they exist for hot loops whose
// indices are known to be valid. Lookup and Store validate bounds and return
// ErrOutOfRange, and are the right choice at trust boundaries.
//
// # Lifecycle
//
// Reset replaces a tensor's extents and storage in place. The previous
// storage is released to the garbage collector, so re-initialization never
// leaks.
package tensor
