package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Layout bundles a parsed board with the game parameters that accompany it
// in the text encoding but do not live on the board itself.
type Layout struct {
	Players        int
	OverrideStones int
	Bombs          int
	BombRadius     int
	Board          *Board
}

// SyntaxError reports an invalid board encoding with the offending line.
type SyntaxError struct {
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("board encoding line %d: %s", e.Line, e.Msg)
}

// ParseLayout reads the text board encoding:
//
//	<players>
//	<override stones>
//	<bombs> <bomb radius>
//	<height> <width>
//	<height rows of width tile tokens>
//	<zero or more transition lines "x1 y1 d1 <-> x2 y2 d2">
//
// Tile tokens are 0-8 (standard tile with the given occupant), x (standard
// tile with an expansion stone), - (hole), c (choice), i (inversion) and
// b (bonus). Transition lines link non-adjacent tiles; both endpoints are
// specified with their outgoing direction.
func ParseLayout(r io.Reader) (*Layout, error) {
	p := &layoutParser{scanner: bufio.NewScanner(r)}

	layout, err := p.parse()
	if err != nil {
		return nil, err
	}
	return layout, nil
}

type layoutParser struct {
	scanner *bufio.Scanner
	line    int
}

// nextLine returns the next input line, tracking line numbers.
func (p *layoutParser) nextLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", &SyntaxError{Line: p.line + 1, Msg: "unexpected end of input"}
	}
	p.line++
	return p.scanner.Text(), nil
}

// ints parses a line of exactly n non-negative integers.
func (p *layoutParser) ints(n int) ([]int, error) {
	line, err := p.nextLine()
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &SyntaxError{Line: p.line, Msg: fmt.Sprintf("expected %d values, got %d", n, len(fields))}
	}

	values := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, &SyntaxError{Line: p.line, Msg: fmt.Sprintf("invalid value %q", f)}
		}
		values[i] = v
	}
	return values, nil
}

func (p *layoutParser) parse() (*Layout, error) {
	players, err := p.ints(1)
	if err != nil {
		return nil, err
	}
	overrides, err := p.ints(1)
	if err != nil {
		return nil, err
	}
	bombLine, err := p.ints(2)
	if err != nil {
		return nil, err
	}
	extents, err := p.ints(2)
	if err != nil {
		return nil, err
	}
	height, width := extents[0], extents[1]

	board, err := NewBoard(width, height, players[0], bombLine[1])
	if err != nil {
		return nil, &SyntaxError{Line: p.line, Msg: err.Error()}
	}

	for y := 0; y < height; y++ {
		if err := p.parseRow(board, y); err != nil {
			return nil, err
		}
	}

	board.LinkAdjacent()

	if err := p.parseTransitions(board); err != nil {
		return nil, err
	}

	return &Layout{
		Players:        players[0],
		OverrideStones: overrides[0],
		Bombs:          bombLine[0],
		BombRadius:     bombLine[1],
		Board:          board,
	}, nil
}

func (p *layoutParser) parseRow(board *Board, y int) error {
	line, err := p.nextLine()
	if err != nil {
		return err
	}

	fields := strings.Fields(line)
	if len(fields) != board.Width() {
		return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("expected %d tiles, got %d", board.Width(), len(fields))}
	}

	for x, token := range fields {
		pos := board.Pos(x, y)
		if err := applyTileToken(board, pos, token); err != nil {
			return &SyntaxError{Line: p.line, Msg: err.Error()}
		}
	}
	return nil
}

// applyTileToken decodes one tile token onto the board.
func applyTileToken(board *Board, pos Pos, token string) error {
	switch token {
	case "-":
		board.SetTileType(pos, TileAbsent)
	case "c":
		board.SetTileType(pos, TileChoice)
	case "i":
		board.SetTileType(pos, TileInversion)
	case "b":
		board.SetTileType(pos, TileBonus)
	case "x":
		board.SetTileType(pos, TileStandard)
		board.SetOccupant(pos, OccupantExpansion)
	default:
		occupant, err := strconv.Atoi(token)
		if err != nil || occupant < 0 || occupant > MaxPlayers {
			return fmt.Errorf("invalid tile token %q", token)
		}
		board.SetTileType(pos, TileStandard)
		board.SetOccupant(pos, int8(occupant))
	}
	return nil
}

// parseTransitions reads the optional trailing transition lines and layers
// them over the default adjacency structure.
func (p *layoutParser) parseTransitions(board *Board) error {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 || fields[3] != "<->" {
			return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("invalid transition %q", line)}
		}

		var v [6]int
		for i, f := range append(fields[:3:3], fields[4:]...) {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("invalid transition value %q", f)}
			}
			v[i] = n
		}

		if err := p.linkTransition(board, v); err != nil {
			return err
		}
	}
	return p.scanner.Err()
}

// linkTransition validates one parsed transition and links it symmetrically.
func (p *layoutParser) linkTransition(board *Board, v [6]int) error {
	x1, y1, x2, y2 := v[0], v[1], v[3], v[4]

	d1, err := DecodeDirection(int8(v[2]))
	if err != nil {
		return &SyntaxError{Line: p.line, Msg: err.Error()}
	}
	d2, err := DecodeDirection(int8(v[5]))
	if err != nil {
		return &SyntaxError{Line: p.line, Msg: err.Error()}
	}

	if !board.HasPosition(x1, y1) || !board.HasPosition(x2, y2) {
		return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("transition endpoint off the board: (%d, %d) <-> (%d, %d)", x1, y1, x2, y2)}
	}

	p1 := board.Pos(x1, y1)
	p2 := board.Pos(x2, y2)
	if board.TileTypeAt(p1) == TileAbsent || board.TileTypeAt(p2) == TileAbsent {
		return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("transition endpoint on a hole: (%d, %d) <-> (%d, %d)", x1, y1, x2, y2)}
	}

	// Traversing p1 -> p2 via d1 continues in the inverse of d2, so d2 is
	// stored as the incoming direction, and symmetrically for p2 -> p1.
	board.SetNeighbor(p1, d1, p2, d2)
	board.SetNeighbor(p2, d2, p1, d1)
	return nil
}

// FormatLayout writes the canonical text encoding of a layout, including
// custom transition lines for every linked transition that deviates from
// plain geometric adjacency.
func FormatLayout(w io.Writer, l *Layout) error {
	bw := bufio.NewWriter(w)
	board := l.Board

	fmt.Fprintf(bw, "%d\n", l.Players)
	fmt.Fprintf(bw, "%d\n", l.OverrideStones)
	fmt.Fprintf(bw, "%d %d\n", l.Bombs, l.BombRadius)
	fmt.Fprintf(bw, "%d %d\n", board.Height(), board.Width())

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(tileToken(board, board.Pos(x, y)))
		}
		bw.WriteByte('\n')
	}

	for p := Pos(0); int(p) < board.NumPositions(); p++ {
		x, y := p.XY(board.Width())
		for _, dir := range Directions {
			dest := board.Neighbor(p, dir)
			if dest == NoPos {
				continue
			}

			incoming := board.NeighborIncoming(p, dir)
			if dest == Adjacent(x, y, dir, board.Width(), board.Height()) && incoming == dir.Opposite() {
				continue // default adjacency
			}
			// Each custom transition is stored symmetrically; emit it once.
			if p > dest || (p == dest && dir > incoming) {
				continue
			}

			dx, dy := dest.XY(board.Width())
			fmt.Fprintf(bw, "%d %d %d <-> %d %d %d\n", x, y, dir.Encode(), dx, dy, incoming.Encode())
		}
	}

	return bw.Flush()
}

// tileToken encodes one tile back into its token.
func tileToken(board *Board, pos Pos) string {
	switch board.TileTypeAt(pos) {
	case TileAbsent:
		return "-"
	case TileChoice:
		return "c"
	case TileInversion:
		return "i"
	case TileBonus:
		return "b"
	default:
		occ := board.OccupantAt(pos)
		if occ == OccupantExpansion {
			return "x"
		}
		return strconv.Itoa(int(occ))
	}
}
