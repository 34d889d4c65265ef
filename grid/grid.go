// Copyright 2026 The TensorGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for tile boards backed by flat
// tensor storage.
//
// A Board stores tile types and occupants in one linearized tensor and the
// per-tile transition structure in another, giving O(1) random access plus
// pointer-like navigation. Cursors walk transitions step by step; rays
// implement the reflecting capture-line traversal.
//
// Example:
//
//	layout, err := grid.ParseLayout(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ray := layout.Board.Ray(3, 3)
//	ray.Reset(grid.East)
//	for ray.HasNext() {
//	    ray.Next()
//	    // inspect ray.TileType(), ray.Occupant()
//	}
package grid

import (
	"io"

	"github.com/tensorgrid-io/tensorgrid/internal/grid"
)

// Type aliases for public API

// Board is a 2D tile board backed by flat tensors.
type Board = grid.Board

// TileType is the logical type of a board tile.
type TileType = grid.TileType

// Tile type constants.
const (
	TileAbsent    TileType = grid.TileAbsent
	TileStandard  TileType = grid.TileStandard
	TileChoice    TileType = grid.TileChoice
	TileInversion TileType = grid.TileInversion
	TileBonus     TileType = grid.TileBonus
)

// Occupant encodings.
const (
	OccupantNone      = grid.OccupantNone
	OccupantExpansion = grid.OccupantExpansion
	MaxPlayers        = grid.MaxPlayers
)

// Direction is one of the eight compass directions.
type Direction = grid.Direction

// Direction constants, clockwise from north.
const (
	North     Direction = grid.North
	NorthEast Direction = grid.NorthEast
	East      Direction = grid.East
	SouthEast Direction = grid.SouthEast
	South     Direction = grid.South
	SouthWest Direction = grid.SouthWest
	West      Direction = grid.West
	NorthWest Direction = grid.NorthWest
)

// NumDirections is the number of outgoing transitions per tile.
const NumDirections = grid.NumDirections

// Directions lists all eight directions in encoding order.
var Directions = grid.Directions

// Pos encodes a tile position (x, y) as y*width + x.
type Pos = grid.Pos

// NoPos marks the absence of a position.
const NoPos Pos = grid.NoPos

// Cursor is a random-access walker over a board.
type Cursor = grid.Cursor

// Ray casts a reflecting ray across a board.
type Ray = grid.Ray

// Layout bundles a parsed board with its game parameters.
type Layout = grid.Layout

// SyntaxError reports an invalid board encoding with the offending line.
type SyntaxError = grid.SyntaxError

// NewBoard allocates a board with all tiles standard and unoccupied.
func NewBoard(width, height, players, bombRadius int) (*Board, error) {
	return grid.NewBoard(width, height, players, bombRadius)
}

// MakePos encodes coordinates into a position.
func MakePos(x, y, width int) Pos {
	return grid.MakePos(x, y, width)
}

// Adjacent returns the geometric neighbor position, ignoring transitions.
func Adjacent(x, y int, dir Direction, width, height int) Pos {
	return grid.Adjacent(x, y, dir, width, height)
}

// DecodeTileType maps a storage encoding back to its tile type.
func DecodeTileType(enc int8) (TileType, error) {
	return grid.DecodeTileType(enc)
}

// DecodeDirection maps a storage encoding back to its direction.
func DecodeDirection(enc int8) (Direction, error) {
	return grid.DecodeDirection(enc)
}

// ParseLayout reads the text board encoding.
func ParseLayout(r io.Reader) (*Layout, error) {
	return grid.ParseLayout(r)
}

// FormatLayout writes the canonical text encoding of a layout.
func FormatLayout(w io.Writer, l *Layout) error {
	return grid.FormatLayout(w, l)
}

// WriteBoard persists a board to w.
func WriteBoard(w io.Writer, b *Board) error {
	return grid.WriteBoard(w, b)
}

// ReadBoard restores a board persisted by WriteBoard.
func ReadBoard(r io.Reader) (*Board, error) {
	return grid.ReadBoard(r)
}
