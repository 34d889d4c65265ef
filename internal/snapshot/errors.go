package snapshot

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: container may be corrupted")
	ErrElementMismatch    = errors.New("element type mismatch")
	ErrLengthMismatch     = errors.New("payload length does not match extents")
)
