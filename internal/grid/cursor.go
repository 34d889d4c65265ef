package grid

// Cursor is a random-access walker over a board. It tracks one position and
// navigates via the board's transition structure.
type Cursor struct {
	board *Board
	pos   Pos
}

// Cursor returns a cursor at position (0, 0).
func (b *Board) Cursor() *Cursor {
	return &Cursor{board: b}
}

// CursorAt returns a cursor at position (x, y).
func (b *Board) CursorAt(x, y int) *Cursor {
	return &Cursor{board: b, pos: b.Pos(x, y)}
}

// Pos returns the cursor's current position.
func (c *Cursor) Pos() Pos {
	return c.pos
}

// X returns the x coordinate of the cursor's current position.
func (c *Cursor) X() int {
	x, _ := c.pos.XY(c.board.Width())
	return x
}

// Y returns the y coordinate of the cursor's current position.
func (c *Cursor) Y() int {
	_, y := c.pos.XY(c.board.Width())
	return y
}

// MoveTo relocates the cursor to (x, y).
func (c *Cursor) MoveTo(x, y int) {
	c.pos = c.board.Pos(x, y)
}

// TileType returns the type of the tile under the cursor.
func (c *Cursor) TileType() TileType {
	return c.board.TileTypeAt(c.pos)
}

// SetTileType changes the type of the tile under the cursor.
func (c *Cursor) SetTileType(t TileType) {
	c.board.SetTileType(c.pos, t)
}

// Occupant returns the occupant of the tile under the cursor.
func (c *Cursor) Occupant() int8 {
	return c.board.OccupantAt(c.pos)
}

// SetOccupant changes the occupant of the tile under the cursor.
func (c *Cursor) SetOccupant(occupant int8) {
	c.board.SetOccupant(c.pos, occupant)
}

// HasNeighbor reports whether a transition leaves the cursor's tile in the
// given direction.
func (c *Cursor) HasNeighbor(dir Direction) bool {
	return c.board.HasNeighbor(c.pos, dir)
}

// PeekTileType returns the tile type of the neighbor in the given direction
// without moving. The neighbor must exist.
func (c *Cursor) PeekTileType(dir Direction) TileType {
	return c.board.TileTypeAt(c.board.Neighbor(c.pos, dir))
}

// PeekOccupant returns the occupant of the neighbor in the given direction
// without moving. The neighbor must exist.
func (c *Cursor) PeekOccupant(dir Direction) int8 {
	return c.board.OccupantAt(c.board.Neighbor(c.pos, dir))
}

// Step follows the transition in the given direction. It reports whether a
// transition existed; the cursor does not move when it returns false.
func (c *Cursor) Step(dir Direction) bool {
	dest := c.board.Neighbor(c.pos, dir)
	if dest == NoPos {
		return false
	}
	c.pos = dest
	return true
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{board: c.board, pos: c.pos}
}
