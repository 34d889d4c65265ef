package grid

import "fmt"

// TileType is the logical type of a board tile. The numeric values are the
// storage encoding used in the tile tensor.
type TileType int8

// Tile type encodings.
const (
	TileAbsent    TileType = -1 // hole in the board
	TileStandard  TileType = 0
	TileChoice    TileType = 1
	TileInversion TileType = 2
	TileBonus     TileType = 3
)

// Occupant encodings stored alongside the tile type: OccupantNone for an
// empty tile, 1..MaxPlayers for a stone of the corresponding player, and
// OccupantExpansion for an expansion stone.
const (
	OccupantNone      int8 = 0
	OccupantExpansion int8 = 9
)

// MaxPlayers is the highest player number an occupant encoding can carry.
const MaxPlayers = 8

// Encode returns the storage encoding of the tile type.
func (t TileType) Encode() int8 {
	return int8(t)
}

// DecodeTileType maps a storage encoding back to its tile type.
func DecodeTileType(enc int8) (TileType, error) {
	switch t := TileType(enc); t {
	case TileAbsent, TileStandard, TileChoice, TileInversion, TileBonus:
		return t, nil
	default:
		return TileAbsent, fmt.Errorf("invalid tile type encoding: %d", enc)
	}
}

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case TileAbsent:
		return "absent"
	case TileStandard:
		return "standard"
	case TileChoice:
		return "choice"
	case TileInversion:
		return "inversion"
	case TileBonus:
		return "bonus"
	default:
		return "unknown"
	}
}
