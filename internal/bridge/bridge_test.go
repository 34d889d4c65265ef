package bridge

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

func newTestArray() *FlatArray {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetSetBeforeInit(t *testing.T) {
	a := newTestArray()

	assert.False(t, a.Initialized())
	assert.Equal(t, 0, a.Len())

	_, err := a.Get(0, 0, 0)
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)

	err = a.Set(0, 0, 0, 1)
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)
}

func TestInitAllocates(t *testing.T) {
	a := newTestArray()

	require.NoError(t, a.Init(2, 3, 4))
	assert.True(t, a.Initialized())
	assert.Equal(t, 24, a.Len())
}

func TestInitRejectsNegativeExtent(t *testing.T) {
	a := newTestArray()

	err := a.Init(-1, 3, 4)
	assert.True(t, errors.Is(err, tensor.ErrNegativeExtent), "got %v", err)
	assert.False(t, a.Initialized())
}

func TestSetGetRoundTrip(t *testing.T) {
	a := newTestArray()
	require.NoError(t, a.Init(2, 3, 4))

	var v int8 = -128
	for i := int32(0); i < 2; i++ {
		for j := int32(0); j < 3; j++ {
			for k := int32(0); k < 4; k++ {
				require.NoError(t, a.Set(i, j, k, v))
				got, err := a.Get(i, j, k)
				require.NoError(t, err)
				assert.Equal(t, v, got)
				v += 3
			}
		}
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	a := newTestArray()
	require.NoError(t, a.Init(2, 3, 4))

	invalid := [][3]int32{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
		{-1, 0, 0},
	}
	for _, c := range invalid {
		_, err := a.Get(c[0], c[1], c[2])
		assert.True(t, errors.Is(err, tensor.ErrOutOfRange), "Get(%v) = %v", c, err)

		err = a.Set(c[0], c[1], c[2], 1)
		assert.True(t, errors.Is(err, tensor.ErrOutOfRange), "Set(%v) = %v", c, err)
	}
}

// TestReinitReplacesBuffer pins the re-initialization contract: the second
// Init must fully replace both dimensions and contents.
func TestReinitReplacesBuffer(t *testing.T) {
	a := newTestArray()

	require.NoError(t, a.Init(2, 2, 2))
	require.NoError(t, a.Set(1, 1, 1, 42))

	require.NoError(t, a.Init(3, 3, 3))
	assert.Equal(t, 27, a.Len())

	// (2, 2, 2) is valid now, and the old value at (1, 1, 1) is gone.
	_, err := a.Get(2, 2, 2)
	require.NoError(t, err)
	got, err := a.Get(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(0), got)
}

func TestNilLoggerFallsBack(t *testing.T) {
	a := New(nil)
	require.NoError(t, a.Init(1, 1, 1))
	require.NoError(t, a.Set(0, 0, 0, 5))

	got, err := a.Get(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(5), got)
}
