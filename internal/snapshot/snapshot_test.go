package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

func writeSample(t *testing.T) (*tensor.Flat[int8], []byte) {
	t.Helper()

	f, err := tensor.NewFlat[int8](2, 3, 4)
	require.NoError(t, err)
	for i := range f.Data() {
		f.Data()[i] = int8(i - 12) // exercise negative values
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))
	return f, buf.Bytes()
}

func TestWriteReadRoundTrip(t *testing.T) {
	f, raw := writeSample(t)

	got, err := Read[int8](bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, f.Dims(), got.Dims())
	assert.Equal(t, f.Data(), got.Data())
}

func TestWriteReadRoundTripInt16(t *testing.T) {
	f, err := tensor.NewFlat[int16](3, 2, 16)
	require.NoError(t, err)
	for i := range f.Data() {
		f.Data()[i] = int16(i*257 - 5000)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	got, err := Read[int16](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, f.Data(), got.Data())
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, raw := writeSample(t)
	raw[0] = 'X'

	_, err := Read[int8](bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrInvalidMagic), "got %v", err)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	_, raw := writeSample(t)
	raw[4] = 99

	_, err := Read[int8](bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrUnsupportedVersion), "got %v", err)
}

func TestReadRejectsOversizedHeader(t *testing.T) {
	_, raw := writeSample(t)
	raw[5] = 0xFF
	raw[6] = 0xFF
	raw[7] = 0xFF
	raw[8] = 0x7F

	_, err := Read[int8](bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrHeaderTooLarge), "got %v", err)
}

// writeFrame assembles a container frame around an arbitrary header, for
// feeding the reader headers Write would never produce.
func writeFrame(t *testing.T, header Header) []byte {
	t.Helper()

	headerBytes, err := cbor.Marshal(header)
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(FormatVersion)
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(headerBytes)))
	buf.Write(n[:])
	buf.Write(headerBytes)
	return buf.Bytes()
}

func TestReadRejectsOversizedPayload(t *testing.T) {
	tests := []struct {
		name   string
		header Header
	}{
		{"overflowing extent product", Header{Width: math.MaxInt / 2, Height: 4, Depth: 1, Elem: "int8"}},
		{"declared payload too large", Header{Width: MaxPayloadSize, Height: 2, Depth: 1, Elem: "int8"}},
		{"negative extent", Header{Width: 2, Height: -3, Depth: 4, Elem: "int8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read[int8](bytes.NewReader(writeFrame(t, tt.header)))
			assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)
		})
	}
}

func TestReadDetectsCorruptedPayload(t *testing.T) {
	_, raw := writeSample(t)
	raw[len(raw)-1] ^= 0xFF

	_, err := Read[int8](bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrChecksumMismatch), "got %v", err)
}

func TestReadRejectsElementMismatch(t *testing.T) {
	_, raw := writeSample(t)

	_, err := Read[int16](bytes.NewReader(raw))
	assert.True(t, errors.Is(err, ErrElementMismatch), "got %v", err)
}

func TestReadTruncatedPayload(t *testing.T) {
	_, raw := writeSample(t)

	_, err := Read[int8](bytes.NewReader(raw[:len(raw)-5]))
	assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)
}

func TestContainersAreStreamable(t *testing.T) {
	a, err := tensor.NewFlat[int8](1, 1, 3)
	require.NoError(t, err)
	a.Fill(7)
	b, err := tensor.NewFlat[int16](2, 2, 2)
	require.NoError(t, err)
	b.Fill(-1)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	require.NoError(t, Write(&buf, b))

	r := bytes.NewReader(buf.Bytes())
	gotA, err := Read[int8](r)
	require.NoError(t, err)
	gotB, err := Read[int16](r)
	require.NoError(t, err)

	assert.Equal(t, a.Data(), gotA.Data())
	assert.Equal(t, b.Data(), gotB.Data())
}
