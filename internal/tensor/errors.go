package tensor

import "errors"

// Common errors.
var (
	ErrNegativeExtent = errors.New("tensor extent must be non-negative")
	ErrOutOfRange     = errors.New("coordinate out of range")
)
