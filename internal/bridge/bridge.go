// Package bridge implements the flat array surface exposed over the C
// boundary. It owns the single process-wide tensor instance the foreign
// caller addresses and validates every access at the boundary, keeping the
// unchecked fast path confined to the tensor package.
package bridge

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

// ErrNotInitialized is returned when Get or Set is called before Init.
var ErrNotInitialized = errors.New("flat array not initialized")

// FlatArray owns the flat byte tensor behind the exported entry points.
// Re-initialization replaces the previous storage, which is then released
// to the garbage collector. Access is single-threaded by contract, matching
// the calling convention of the exported symbols.
type FlatArray struct {
	flat *tensor.Flat[int8]
	log  *slog.Logger
}

// New creates an uninitialized FlatArray. A nil logger falls back to
// slog.Default().
func New(logger *slog.Logger) *FlatArray {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlatArray{log: logger}
}

// Initialized reports whether Init has been called.
func (a *FlatArray) Initialized() bool {
	return a.flat != nil
}

// Init allocates a width x height x depth tensor, replacing any previous
// buffer and its dimensions.
func (a *FlatArray) Init(width, height, depth int32) error {
	if a.flat == nil {
		f, err := tensor.NewFlat[int8](int(width), int(height), int(depth))
		if err != nil {
			a.log.Error("flat array init rejected", slog.Any("error", err))
			return err
		}
		a.flat = f
	} else if err := a.flat.Reset(int(width), int(height), int(depth)); err != nil {
		a.log.Error("flat array re-init rejected", slog.Any("error", err))
		return err
	}

	a.log.Debug("flat array initialized",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Int("depth", int(depth)),
		slog.Int("elements", a.flat.Len()),
	)
	return nil
}

// Get returns the element at (i, j, k).
func (a *FlatArray) Get(i, j, k int32) (int8, error) {
	if a.flat == nil {
		a.log.Warn("get before init", slog.Int("i", int(i)), slog.Int("j", int(j)), slog.Int("k", int(k)))
		return 0, ErrNotInitialized
	}

	v, err := a.flat.Lookup(int(i), int(j), int(k))
	if err != nil {
		a.log.Warn("get out of range",
			slog.Int("i", int(i)), slog.Int("j", int(j)), slog.Int("k", int(k)),
			slog.String("dims", a.flat.Dims().String()),
		)
		return 0, fmt.Errorf("get: %w", err)
	}
	return v, nil
}

// Set stores value at (i, j, k).
func (a *FlatArray) Set(i, j, k int32, value int8) error {
	if a.flat == nil {
		a.log.Warn("set before init", slog.Int("i", int(i)), slog.Int("j", int(j)), slog.Int("k", int(k)))
		return ErrNotInitialized
	}

	if err := a.flat.Store(int(i), int(j), int(k), value); err != nil {
		a.log.Warn("set out of range",
			slog.Int("i", int(i)), slog.Int("j", int(j)), slog.Int("k", int(k)),
			slog.String("dims", a.flat.Dims().String()),
		)
		return fmt.Errorf("set: %w", err)
	}
	return nil
}

// Len returns the number of addressable elements, 0 before Init.
func (a *FlatArray) Len() int {
	if a.flat == nil {
		return 0
	}
	return a.flat.Len()
}
