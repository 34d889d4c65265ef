package grid

import (
	"fmt"

	"github.com/tensorgrid-io/tensorgrid/internal/tensor"
)

// Tensor layout constants.
const (
	tileDepth       = 2                 // tile type, occupant
	transitionDepth = 2 * NumDirections // (destination, incoming direction) per direction

	idxTileType = 0
	idxOccupant = 1

	idxDestination = 0
	idxIncoming    = 1
)

// Board extent and player limits.
const (
	MaxExtent  = 50
	MinPlayers = 2
)

// Board is a 2D tile board backed by two flat tensors: a tile tensor of
// extents (height, width, 2) and a transition tensor of extents
// (height, width, 16). Tile entries of position p start at linear offset
// p*2, transition entries at p*16; both follow from pos = y*width + x and
// the row-major layout of tensor.Flat.
//
// Accessors use the unchecked fast path of the underlying tensors. Position
// arguments must address tiles on the board; transitions guard navigation by
// returning NoPos at edges and holes.
type Board struct {
	width      int
	height     int
	players    int
	bombRadius int

	tiles *tensor.Flat[int8]
	trans *tensor.Flat[int16]
}

// NewBoard allocates a board with all tiles standard and unoccupied, and no
// transitions linked. Call LinkAdjacent to wire the default transition
// structure.
func NewBoard(width, height, players, bombRadius int) (*Board, error) {
	if width < 1 || width > MaxExtent || height < 1 || height > MaxExtent {
		return nil, fmt.Errorf("board extents must be in [1, %d], got %dx%d", MaxExtent, width, height)
	}
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("player count must be in [%d, %d], got %d", MinPlayers, MaxPlayers, players)
	}
	if bombRadius < 0 {
		return nil, fmt.Errorf("bomb radius must be non-negative, got %d", bombRadius)
	}

	tiles, err := tensor.NewFlat[int8](height, width, tileDepth)
	if err != nil {
		return nil, err
	}
	trans, err := tensor.NewFlat[int16](height, width, transitionDepth)
	if err != nil {
		return nil, err
	}
	trans.Fill(int16(NoPos)) // all transitions start unlinked

	return &Board{
		width:      width,
		height:     height,
		players:    players,
		bombRadius: bombRadius,
		tiles:      tiles,
		trans:      trans,
	}, nil
}

// Width returns the board's width in tiles.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board's height in tiles.
func (b *Board) Height() int {
	return b.height
}

// Players returns the number of players the board was laid out for.
func (b *Board) Players() int {
	return b.players
}

// BombRadius returns the destructive radius of a bomb.
func (b *Board) BombRadius() int {
	return b.bombRadius
}

// NumPositions returns the number of tiles on the board. Valid positions are
// 0..NumPositions()-1 in y-then-x order, which is also the cache coherent
// traversal order of the backing tensors.
func (b *Board) NumPositions() int {
	return b.width * b.height
}

// Pos encodes coordinates into a position on this board.
func (b *Board) Pos(x, y int) Pos {
	return MakePos(x, y, b.width)
}

// HasPosition reports whether (x, y) lies on the board.
func (b *Board) HasPosition(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// TileTypeAt returns the type of the tile at p.
func (b *Board) TileTypeAt(p Pos) TileType {
	return TileType(b.tiles.Data()[int(p)*tileDepth+idxTileType])
}

// SetTileType changes the type of the tile at p. A non-standard tile must
// always be unoccupied; callers changing a tile away from standard are
// expected to clear the occupant first.
func (b *Board) SetTileType(p Pos, t TileType) {
	b.tiles.Data()[int(p)*tileDepth+idxTileType] = t.Encode()
}

// OccupantAt returns the occupant encoding of the tile at p.
func (b *Board) OccupantAt(p Pos) int8 {
	return b.tiles.Data()[int(p)*tileDepth+idxOccupant]
}

// SetOccupant changes the occupant encoding of the tile at p.
func (b *Board) SetOccupant(p Pos, occupant int8) {
	b.tiles.Data()[int(p)*tileDepth+idxOccupant] = occupant
}

// Neighbor returns the destination of the transition leaving p in direction
// dir, or NoPos if the transition is unlinked.
func (b *Board) Neighbor(p Pos, dir Direction) Pos {
	return Pos(b.trans.Data()[int(p)*transitionDepth+2*int(dir)+idxDestination])
}

// NeighborIncoming returns the incoming direction at the destination of the
// transition leaving p in direction dir. Only meaningful when Neighbor
// returns a position other than NoPos.
func (b *Board) NeighborIncoming(p Pos, dir Direction) Direction {
	return Direction(b.trans.Data()[int(p)*transitionDepth+2*int(dir)+idxIncoming])
}

// HasNeighbor reports whether a transition leaves p in direction dir.
func (b *Board) HasNeighbor(p Pos, dir Direction) bool {
	return b.Neighbor(p, dir) != NoPos
}

// SetNeighbor links the transition leaving p in direction dir to dest, with
// the given incoming direction at dest.
func (b *Board) SetNeighbor(p Pos, dir Direction, dest Pos, incoming Direction) {
	base := int(p)*transitionDepth + 2*int(dir)
	data := b.trans.Data()
	data[base+idxDestination] = int16(dest)
	data[base+idxIncoming] = int16(incoming)
}

// ClearNeighbor unlinks the transition leaving p in direction dir.
func (b *Board) ClearNeighbor(p Pos, dir Direction) {
	base := int(p)*transitionDepth + 2*int(dir)
	data := b.trans.Data()
	data[base+idxDestination] = int16(NoPos)
	data[base+idxIncoming] = int16(NoPos)
}

// LinkAdjacent wires the default transition structure: every pair of
// geometrically adjacent non-absent tiles is connected in both directions,
// with the incoming direction being the opposite of the outgoing one.
// Custom transitions can be layered on top with SetNeighbor afterwards.
func (b *Board) LinkAdjacent() {
	for p := Pos(0); int(p) < b.NumPositions(); p++ {
		x, y := p.XY(b.width)

		if b.TileTypeAt(p) == TileAbsent {
			for _, dir := range Directions {
				b.ClearNeighbor(p, dir)
			}
			continue
		}

		for _, dir := range Directions {
			dest := Adjacent(x, y, dir, b.width, b.height)
			if dest != NoPos && b.TileTypeAt(dest) != TileAbsent {
				b.SetNeighbor(p, dir, dest, dir.Opposite())
			} else {
				b.ClearNeighbor(p, dir)
			}
		}
	}
}

// Clone copies the board. The tile tensor is always deep-copied; the
// transition tensor is shared unless cloneTransitions is set, because the
// transition structure normally never changes after layout and sharing it
// makes copies cheap. Changes made through SetNeighbor on a sharing copy are
// visible to all boards sharing the tensor.
func (b *Board) Clone(cloneTransitions bool) *Board {
	clone := &Board{
		width:      b.width,
		height:     b.height,
		players:    b.players,
		bombRadius: b.bombRadius,
		tiles:      b.tiles.Clone(),
		trans:      b.trans,
	}
	if cloneTransitions {
		clone.trans = b.trans.Clone()
	}
	return clone
}

// Tiles exposes the backing tile tensor for persistence and tests.
func (b *Board) Tiles() *tensor.Flat[int8] {
	return b.tiles
}

// Transitions exposes the backing transition tensor for persistence and tests.
func (b *Board) Transitions() *tensor.Flat[int16] {
	return b.trans
}
