package grid

// Ray casts a ray across the board from an origin tile, following the
// transition structure. When a transition's incoming direction differs from
// the opposite of the travel direction, the ray reflects: the new travel
// direction is the inverse of the stored incoming direction. This is the
// canonical capture-line traversal for boards with custom transitions.
type Ray struct {
	board  *Board
	origin Pos
	pos    Pos
	dir    Direction
}

// Ray returns a ray with its origin at (x, y), casting north.
func (b *Board) Ray(x, y int) *Ray {
	r := &Ray{board: b}
	r.MoveTo(x, y)
	return r
}

// MoveTo relocates the ray's origin to (x, y) and resets the travel
// direction to north.
func (r *Ray) MoveTo(x, y int) {
	r.origin = r.board.Pos(x, y)
	r.pos = r.origin
	r.dir = North
}

// Reset moves the ray back to its origin and starts casting in dir.
func (r *Ray) Reset(dir Direction) {
	r.pos = r.origin
	r.dir = dir
}

// HasNext reports whether there is another tile on the current ray.
func (r *Ray) HasNext() bool {
	return r.board.HasNeighbor(r.pos, r.dir)
}

// Next enters the next tile on the current ray, reflecting the travel
// direction through the transition. Must only be called when HasNext
// reports true.
func (r *Ray) Next() {
	reflected := r.board.NeighborIncoming(r.pos, r.dir).Opposite()
	r.pos = r.board.Neighbor(r.pos, r.dir)
	r.dir = reflected
}

// Pos returns the ray's current position.
func (r *Ray) Pos() Pos {
	return r.pos
}

// X returns the x coordinate of the ray's current position.
func (r *Ray) X() int {
	x, _ := r.pos.XY(r.board.Width())
	return x
}

// Y returns the y coordinate of the ray's current position.
func (r *Ray) Y() int {
	_, y := r.pos.XY(r.board.Width())
	return y
}

// Direction returns the ray's current travel direction.
func (r *Ray) Direction() Direction {
	return r.dir
}

// TileType returns the type of the tile under the ray.
func (r *Ray) TileType() TileType {
	return r.board.TileTypeAt(r.pos)
}

// Occupant returns the occupant of the tile under the ray.
func (r *Ray) Occupant() int8 {
	return r.board.OccupantAt(r.pos)
}

// Clone returns an independent ray with the same origin, position, and
// direction.
func (r *Ray) Clone() *Ray {
	return &Ray{board: r.board, origin: r.origin, pos: r.pos, dir: r.dir}
}
