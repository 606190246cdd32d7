package chess

import "fmt"

// Coord addresses a board square by (row, column), each in [0,7].
// Row 0 is rank 8; column 0 is file a.
type Coord struct {
	Row, Col int
}

// NoCoord is the sentinel for "no square" (en passant target cleared,
// no rook relocation, and so on).
var NoCoord = Coord{-1, -1}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

// Step returns the coordinate n steps away along d. The result may be out of
// bounds; Board reads of such coordinates yield NoPiece.
func (c Coord) Step(d Direction, n int) Coord {
	return Coord{c.Row + d.DRow*n, c.Col + d.DCol*n}
}

// String converts the coordinate to algebraic notation (e.g. "e4").
// Off-board coordinates render as "-".
func (c Coord) String() string {
	if !c.InBounds() {
		return "-"
	}
	return string([]byte{'a' + byte(c.Col), '8' - byte(c.Row)})
}

// ParseCoord parses algebraic notation ("e4") into a Coord. Malformed input
// is rejected with a descriptive error and never reaches board logic.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, fmt.Errorf("invalid square %q: want file and rank, e.g. \"e4\"", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return NoCoord, fmt.Errorf("invalid square %q: file must be a-h", s)
	}
	if rank < '1' || rank > '8' {
		return NoCoord, fmt.Errorf("invalid square %q: rank must be 1-8", s)
	}
	return Coord{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
