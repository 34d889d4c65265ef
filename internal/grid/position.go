package grid

// Pos encodes a tile position (x, y) as y*width + x. The int16 range is
// sufficient because board extents are capped at MaxExtent.
type Pos int16

// NoPos marks the absence of a position (board edge, unlinked transition).
const NoPos Pos = -1

// MakePos encodes coordinates into a position.
func MakePos(x, y, width int) Pos {
	return Pos(y*width + x)
}

// XY decodes a position back into coordinates.
func (p Pos) XY(width int) (x, y int) {
	return int(p) % width, int(p) / width
}

// Adjacent returns the position of the next tile from (x, y) in the given
// direction, ignoring custom transitions. It returns NoPos if the step would
// leave a width x height board.
func Adjacent(x, y int, dir Direction, width, height int) Pos {
	if x < 0 || y < 0 || x >= width || y >= height {
		return NoPos
	}

	maxX := width - 1
	maxY := height - 1

	switch dir {
	case North:
		if y > 0 {
			return MakePos(x, y-1, width)
		}
	case NorthEast:
		if x < maxX && y > 0 {
			return MakePos(x+1, y-1, width)
		}
	case East:
		if x < maxX {
			return MakePos(x+1, y, width)
		}
	case SouthEast:
		if x < maxX && y < maxY {
			return MakePos(x+1, y+1, width)
		}
	case South:
		if y < maxY {
			return MakePos(x, y+1, width)
		}
	case SouthWest:
		if x > 0 && y < maxY {
			return MakePos(x-1, y+1, width)
		}
	case West:
		if x > 0 {
			return MakePos(x-1, y, width)
		}
	case NorthWest:
		if x > 0 && y > 0 {
			return MakePos(x-1, y-1, width)
		}
	}
	return NoPos
}
