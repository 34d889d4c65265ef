// Package main builds the TensorGrid native bridge as a shared library:
//
//	go build -buildmode=c-shared -o libtensorgrid.so ./cmd/libtensorgrid
//
// It exports three flat array entry points for managed-runtime callers. All
// arguments and return values are fixed-width integers. The addressing
// contract is offset(i, j, k) = k + j*depth + i*depth*height.
//
// The entry points operate on one process-wide buffer and are single-
// threaded by contract. Invalid accesses are logged and mapped to a zero
// return because the C signatures cannot carry an error.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"log/slog"
	"os"

	"github.com/tensorgrid-io/tensorgrid/internal/bridge"
)

// array is the single process-wide instance addressed by the entry points.
var array = bridge.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
})))

// initNativeFlatArray allocates a width x height x depth byte buffer,
// replacing any previously held buffer.
//
//export initNativeFlatArray
func initNativeFlatArray(width, height, depth C.int32_t) {
	// Errors are already logged by the bridge; the signature is void.
	_ = array.Init(int32(width), int32(height), int32(depth))
}

// getNativeFlatArray returns the byte at (i, j, k), or 0 for an invalid
// access.
//
//export getNativeFlatArray
func getNativeFlatArray(i, j, k C.int32_t) C.int8_t {
	v, err := array.Get(int32(i), int32(j), int32(k))
	if err != nil {
		return 0
	}
	return C.int8_t(v)
}

// setNativeFlatArray stores value at (i, j, k). Invalid accesses are
// dropped.
//
//export setNativeFlatArray
func setNativeFlatArray(i, j, k C.int32_t, value C.int8_t) {
	_ = array.Set(int32(i), int32(j), int32(k), int8(value))
}

func main() {}
