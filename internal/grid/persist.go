package grid

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/tensorgrid-io/tensorgrid/internal/snapshot"
)

// boardParams is the CBOR parameter block preceding the tensor containers in
// a persisted board.
type boardParams struct {
	Width      int `cbor:"width"`
	Height     int `cbor:"height"`
	Players    int `cbor:"players"`
	BombRadius int `cbor:"bomb_radius"`
}

// WriteBoard persists a board as a length-prefixed CBOR parameter block
// followed by the tile and transition tensors as snapshot containers.
func WriteBoard(w io.Writer, b *Board) error {
	params, err := cbor.Marshal(boardParams{
		Width:      b.width,
		Height:     b.height,
		Players:    b.players,
		BombRadius: b.bombRadius,
	})
	if err != nil {
		return fmt.Errorf("failed to encode board parameters: %w", err)
	}

	var paramsLen [4]byte
	binary.LittleEndian.PutUint32(paramsLen[:], uint32(len(params)))
	if _, err := w.Write(paramsLen[:]); err != nil {
		return fmt.Errorf("failed to write parameter length: %w", err)
	}
	if _, err := w.Write(params); err != nil {
		return fmt.Errorf("failed to write board parameters: %w", err)
	}

	if err := snapshot.Write(w, b.tiles); err != nil {
		return fmt.Errorf("failed to write tile tensor: %w", err)
	}
	if err := snapshot.Write(w, b.trans); err != nil {
		return fmt.Errorf("failed to write transition tensor: %w", err)
	}
	return nil
}

// ReadBoard restores a board persisted by WriteBoard.
func ReadBoard(r io.Reader) (*Board, error) {
	var paramsLen [4]byte
	if _, err := io.ReadFull(r, paramsLen[:]); err != nil {
		return nil, fmt.Errorf("failed to read parameter length: %w", err)
	}
	n := binary.LittleEndian.Uint32(paramsLen[:])
	if n > snapshot.MaxHeaderSize {
		return nil, fmt.Errorf("parameter block too large: %d bytes", n)
	}

	paramsBytes := make([]byte, n)
	if _, err := io.ReadFull(r, paramsBytes); err != nil {
		return nil, fmt.Errorf("failed to read board parameters: %w", err)
	}
	var params boardParams
	if err := cbor.Unmarshal(paramsBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to decode board parameters: %w", err)
	}

	tiles, err := snapshot.Read[int8](r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile tensor: %w", err)
	}
	trans, err := snapshot.Read[int16](r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transition tensor: %w", err)
	}

	board, err := NewBoard(params.Width, params.Height, params.Players, params.BombRadius)
	if err != nil {
		return nil, fmt.Errorf("invalid board parameters: %w", err)
	}
	if tiles.Dims() != board.tiles.Dims() {
		return nil, fmt.Errorf("tile tensor extents %s do not match board %dx%d", tiles.Dims(), params.Width, params.Height)
	}
	if trans.Dims() != board.trans.Dims() {
		return nil, fmt.Errorf("transition tensor extents %s do not match board %dx%d", trans.Dims(), params.Width, params.Height)
	}

	board.tiles = tiles
	board.trans = trans
	return board, nil
}
