package grid

import "fmt"

// Direction is one of the eight compass directions a transition can take.
// The numeric values are the storage encoding used in the transition tensor.
type Direction int8

// Direction encodings, clockwise from north.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of outgoing transitions per tile.
const NumDirections = 8

// Directions lists all eight directions in encoding order.
var Directions = [NumDirections]Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// Encode returns the storage encoding of the direction.
func (d Direction) Encode() int8 {
	return int8(d)
}

// DecodeDirection maps a storage encoding back to its direction.
func DecodeDirection(enc int8) (Direction, error) {
	if enc < 0 || enc >= NumDirections {
		return North, fmt.Errorf("invalid direction encoding: %d", enc)
	}
	return Direction(enc), nil
}

// Opposite returns the direction after a 180 degree turn.
func (d Direction) Opposite() Direction {
	return (d + 4) % NumDirections
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "unknown"
	}
}
