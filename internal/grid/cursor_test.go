package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinkedBoard(t *testing.T, width, height int) *Board {
	t.Helper()
	b, err := NewBoard(width, height, 2, 0)
	require.NoError(t, err)
	b.LinkAdjacent()
	return b
}

func TestCursorWalk(t *testing.T) {
	b := newLinkedBoard(t, 3, 3)
	c := b.Cursor()

	assert.Equal(t, 0, c.X())
	assert.Equal(t, 0, c.Y())

	require.True(t, c.Step(SouthEast))
	assert.Equal(t, 1, c.X())
	assert.Equal(t, 1, c.Y())
	assert.Equal(t, b.Pos(1, 1), c.Pos())

	require.True(t, c.Step(East))
	assert.Equal(t, 2, c.X())
	assert.Equal(t, 1, c.Y())

	// At the east edge the cursor must not move.
	assert.False(t, c.Step(East))
	assert.Equal(t, 2, c.X())
	assert.Equal(t, 1, c.Y())
}

func TestCursorAccessors(t *testing.T) {
	b := newLinkedBoard(t, 3, 3)
	c := b.CursorAt(1, 1)

	c.SetTileType(TileInversion)
	c.SetOccupant(OccupantNone)
	assert.Equal(t, TileInversion, c.TileType())

	c.MoveTo(0, 1)
	c.SetOccupant(3)
	assert.Equal(t, int8(3), c.Occupant())

	// Peek east from (0, 1) onto the inversion tile without moving.
	require.True(t, c.HasNeighbor(East))
	assert.Equal(t, TileInversion, c.PeekTileType(East))
	assert.Equal(t, OccupantNone, c.PeekOccupant(East))
	assert.Equal(t, 0, c.X())
}

func TestCursorClone(t *testing.T) {
	b := newLinkedBoard(t, 3, 3)
	c := b.CursorAt(1, 1)

	clone := c.Clone()
	require.True(t, clone.Step(North))

	assert.Equal(t, 1, c.Y(), "original cursor must not move")
	assert.Equal(t, 0, clone.Y())
}

func TestCursorFollowsCustomTransition(t *testing.T) {
	b := newLinkedBoard(t, 3, 1)

	// Horizontal wrap: leaving (2, 0) east re-enters at (0, 0).
	b.SetNeighbor(b.Pos(2, 0), East, b.Pos(0, 0), West)
	b.SetNeighbor(b.Pos(0, 0), West, b.Pos(2, 0), East)

	c := b.CursorAt(2, 0)
	require.True(t, c.Step(East))
	assert.Equal(t, 0, c.X())
	assert.Equal(t, 0, c.Y())
}
