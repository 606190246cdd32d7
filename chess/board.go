package chess

import "strings"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for dispatch
// and table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsEnemy reports whether p is a piece of the opposite side to c.
func (p Piece) IsEnemy(c Color) bool { return p != NoPiece && p.Color() != c }

// IsAlly reports whether p is a piece of side c.
func (p Piece) IsAlly(c Color) bool { return p != NoPiece && p.Color() == c }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Direction is a (row, column) step applied repeatedly while ray-casting.
type Direction struct {
	DRow, DCol int
}

// Neg returns the direction pointing the opposite way.
func (d Direction) Neg() Direction { return Direction{-d.DRow, -d.DCol} }

// Direction sets shared by the detector and the move generator.
// Row 0 is rank 8, so "up" from White's point of view is a negative row step.
var (
	straightDirs = [4]Direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	diagonalDirs = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightDirs   = [8]Direction{{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}}
	kingDirs     = [8]Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
)

// Board is an 8x8 mailbox grid. Row 0 holds rank 8 (Black's back rank) and
// row 7 holds rank 1, matching the usual reading order of a printed diagram.
// Reads and writes are bounds-checked: an out-of-range coordinate reads as
// NoPiece and out-of-range writes are ignored, which keeps ray-casting code
// free of boundary branches.
type Board [8][8]Piece

// PieceAt returns the piece on c, or NoPiece when c is off the board.
func (b *Board) PieceAt(c Coord) Piece {
	if !c.InBounds() {
		return NoPiece
	}
	return b[c.Row][c.Col]
}

// SetPiece places p on c. Off-board coordinates are ignored.
func (b *Board) SetPiece(c Coord, p Piece) {
	if !c.InBounds() {
		return
	}
	b[c.Row][c.Col] = p
}

// ClearSquare removes any piece from c.
func (b *Board) ClearSquare(c Coord) { b.SetPiece(c, NoPiece) }

// IsEmpty reports whether c holds no piece. Off-board squares read as empty.
func (b *Board) IsEmpty(c Coord) bool { return b.PieceAt(c) == NoPiece }

// StartingBoard returns a board set up for a new game.
func StartingBoard() Board {
	var b Board
	back := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for col := 0; col < 8; col++ {
		b[0][col] = PieceFromType(Black, back[col])
		b[1][col] = BlackPawn
		b[6][col] = WhitePawn
		b[7][col] = PieceFromType(White, back[col])
	}
	return b
}

// String renders the board as an ASCII diagram with rank and file labels,
// suitable for a text interface.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(" +-----------------+\n")
	for row := 0; row < 8; row++ {
		rank := byte('8' - row)
		sb.WriteByte(rank)
		sb.WriteByte('|')
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p == NoPiece {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteRune(charFromPiece(p))
			}
		}
		sb.WriteString(" |")
		sb.WriteByte(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(" +-----------------+\n")
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
