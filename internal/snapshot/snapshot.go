// Package snapshot persists flat tensors in the .tgrd binary container.
//
// Container layout:
//
//	magic "TGRD" (4 bytes)
//	format version (1 byte)
//	header length (4 bytes, little-endian)
//	CBOR header (extents, element type, SHA-256 payload checksum)
//	payload (elements in linear storage order, little-endian)
package snapshot

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

// Format constants.
const (
	Magic         = "TGRD"
	FormatVersion = 1

	// MaxHeaderSize bounds the declared header length so a corrupted length
	// field cannot trigger a huge allocation.
	MaxHeaderSize = 1 << 20

	// MaxPayloadSize bounds the payload length declared by the header
	// extents, the same defense MaxHeaderSize provides for the header.
	MaxPayloadSize = 1 << 30
)

// Header is the CBOR-encoded metadata block of a .tgrd container.
type Header struct {
	Width    int      `cbor:"width"`
	Height   int      `cbor:"height"`
	Depth    int      `cbor:"depth"`
	Elem     string   `cbor:"elem"`     // element type name ("int8", "uint8", "int16")
	Checksum [32]byte `cbor:"checksum"` // SHA-256 of the payload bytes
}

// Write serializes a flat tensor to w.
func Write[T tensor.Element](w io.Writer, f *tensor.Flat[T]) error {
	payload := encodePayload(f.Data())

	header := Header{
		Width:    f.Dims().Width,
		Height:   f.Dims().Height,
		Depth:    f.Dims().Depth,
		Elem:     f.ElementType().String(),
		Checksum: sha256.Sum256(payload),
	}

	headerBytes, err := cbor.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("failed to write magic: %w", err)
	}
	if _, err := w.Write([]byte{FormatVersion}); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	var headerLen [4]byte
	binary.LittleEndian.PutUint32(headerLen[:], uint32(len(headerBytes)))
	if _, err := w.Write(headerLen[:]); err != nil {
		return fmt.Errorf("failed to write header length: %w", err)
	}
	if _, err := w.Write(headerBytes); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

// Read deserializes a flat tensor from r. The element type T must match the
// element type recorded in the container.
func Read[T tensor.Element](r io.Reader) (*tensor.Flat[T], error) {
	header, payload, err := readContainer(r)
	if err != nil {
		return nil, err
	}

	elem := tensor.ElementTypeOf[T]()
	if header.Elem != elem.String() {
		return nil, fmt.Errorf("%w: container holds %s, requested %s",
			ErrElementMismatch, header.Elem, elem)
	}

	f, err := tensor.NewFlat[T](header.Width, header.Height, header.Depth)
	if err != nil {
		return nil, fmt.Errorf("invalid extents in header: %w", err)
	}

	decodePayload(payload, f.Data())
	return f, nil
}

// readContainer parses the framing, validates the checksum, and returns the
// header together with the raw payload bytes.
func readContainer(r io.Reader) (Header, []byte, error) {
	var header Header

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return header, nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if string(magic) != Magic {
		return header, nil, fmt.Errorf("%w: %q", ErrInvalidMagic, magic)
	}

	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return header, nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version[0] != FormatVersion {
		return header, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version[0])
	}

	var headerLen [4]byte
	if _, err := io.ReadFull(r, headerLen[:]); err != nil {
		return header, nil, fmt.Errorf("failed to read header length: %w", err)
	}
	n := binary.LittleEndian.Uint32(headerLen[:])
	if n > MaxHeaderSize {
		return header, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, n)
	}

	headerBytes := make([]byte, n)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return header, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := cbor.Unmarshal(headerBytes, &header); err != nil {
		return header, nil, fmt.Errorf("failed to decode header: %w", err)
	}

	size, err := payloadSize(header)
	if err != nil {
		return header, nil, err
	}

	// Reading exactly the declared payload keeps the container streamable:
	// several containers can follow each other on the same reader.
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return header, nil, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}

	if sha256.Sum256(payload) != header.Checksum {
		return header, nil, ErrChecksumMismatch
	}

	return header, payload, nil
}

// payloadSize computes the payload byte length declared by a header. The
// extents come straight from the wire, so the product is built up with an
// overflow-safe multiply and capped at MaxPayloadSize.
func payloadSize(h Header) (int, error) {
	elemSize, err := elementSize(h.Elem)
	if err != nil {
		return 0, err
	}
	if h.Width < 0 || h.Height < 0 || h.Depth < 0 {
		return 0, fmt.Errorf("%w: negative extent %dx%dx%d",
			ErrLengthMismatch, h.Width, h.Height, h.Depth)
	}

	n := elemSize
	for _, extent := range [3]int{h.Width, h.Height, h.Depth} {
		if extent != 0 && n > MaxPayloadSize/extent {
			return 0, fmt.Errorf("%w: extents %dx%dx%d exceed %d bytes",
				ErrLengthMismatch, h.Width, h.Height, h.Depth, MaxPayloadSize)
		}
		n *= extent
	}
	return n, nil
}

// elementSize maps an element type name from a header to its byte size.
func elementSize(name string) (int, error) {
	switch name {
	case "int8", "uint8":
		return 1, nil
	case "int16":
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: unknown element type %q", ErrElementMismatch, name)
	}
}

// encodePayload flattens elements to little-endian bytes.
func encodePayload[T tensor.Element](data []T) []byte {
	size := tensor.ElementTypeOf[T]().Size()
	out := make([]byte, len(data)*size)

	switch size {
	case 1:
		for i, v := range data {
			out[i] = byte(v)
		}
	case 2:
		for i, v := range data {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
		}
	}
	return out
}

// decodePayload reads little-endian bytes back into elements.
func decodePayload[T tensor.Element](payload []byte, data []T) {
	size := tensor.ElementTypeOf[T]().Size()

	switch size {
	case 1:
		for i := range data {
			data[i] = T(payload[i])
		}
	case 2:
		for i := range data {
			data[i] = T(binary.LittleEndian.Uint16(payload[i*2:]))
		}
	}
}
